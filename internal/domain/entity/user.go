// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. It is created exactly once, on the first
// successful registration, and is immutable afterwards as far as the auth
// subsystem is concerned.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	FirstName string    // The user's given name, collected at registration.
	LastName  string    // The user's family name, collected at registration.
	Email     string    // The normalized (lowercased) email address. Unique across users.
	CreatedAt time.Time // Timestamp of when this account was created.
}
