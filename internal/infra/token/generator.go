// Package token generates opaque credential strings from a cryptographically
// secure source.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"wlsd/internal/domain/service"
)

// tokenBytes is the raw entropy per token. 8 bytes gives 64 bits, encoded as
// 16 lowercase hex digits.
const tokenBytes = 8

type generator struct{}

// NewGenerator returns the crypto/rand backed token generator.
func NewGenerator() service.TokenGenerator {
	return &generator{}
}

// Generate returns a fixed-width, lowercase-hex random token.
func (g *generator) Generate() string {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; if the kernel
		// source is broken there is nothing sensible to fall back to.
		panic(fmt.Sprintf("token: reading random source: %v", err))
	}

	return hex.EncodeToString(buf)
}
