package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	gen := NewGenerator()

	tok := gen.Generate()

	require.Len(t, tok, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", tok)
}

func TestGenerate_FixedWidth(t *testing.T) {
	gen := NewGenerator()

	// Leading zero bytes must not shorten the encoding.
	for i := 0; i < 256; i++ {
		assert.Len(t, gen.Generate(), 16)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := gen.Generate()
		require.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}
