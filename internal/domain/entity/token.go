package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoginToken is a one-time credential mailed to an address. Holding it proves
// control of the mailbox at issuance time. It is bound to an email, not to a
// user: a token may be issued for an address that has no account yet, which is
// what drives the registration branch.
//
// A login token on its own never grants access to anything; it is only ever
// exchanged for a SessionToken.
type LoginToken struct {
	Token     string    // The opaque token value. Unique.
	Email     string    // The normalized email the token was issued for.
	CreatedAt time.Time // Issuance timestamp; expiry is measured from here.
}

// Expired reports whether the token is past its time-to-live.
func (t *LoginToken) Expired(ttl time.Duration, now time.Time) bool {
	return now.After(t.CreatedAt.Add(ttl))
}

// SessionToken is an opaque bearer credential carried as a cookie,
// representing an authenticated browser session. A user may hold many
// concurrent session tokens (one per device).
type SessionToken struct {
	Token     string    // The opaque token value. Unique.
	UserID    uuid.UUID // The user this session belongs to. Always references an existing user.
	CreatedAt time.Time // Session start; expiry is measured from here.
}

// Expired reports whether the session is past its time-to-live.
func (t *SessionToken) Expired(ttl time.Duration, now time.Time) bool {
	return now.After(t.CreatedAt.Add(ttl))
}
