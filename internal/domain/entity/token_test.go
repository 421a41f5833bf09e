package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginTokenExpired(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token := &LoginToken{Token: "deadbeefdeadbeef", Email: "a@example.com", CreatedAt: issued}
	ttl := 30 * time.Minute

	assert.False(t, token.Expired(ttl, issued.Add(29*time.Minute)))
	assert.False(t, token.Expired(ttl, issued.Add(30*time.Minute)))
	assert.True(t, token.Expired(ttl, issued.Add(30*time.Minute+time.Second)))
}

func TestSessionTokenExpired(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token := &SessionToken{Token: "cafecafecafecafe", CreatedAt: issued}
	ttl := 24 * time.Hour

	assert.False(t, token.Expired(ttl, issued.Add(23*time.Hour)))
	assert.True(t, token.Expired(ttl, issued.Add(25*time.Hour)))
}
