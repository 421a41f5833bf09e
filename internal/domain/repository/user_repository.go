// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wlsd/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// Callers treat it as an expected absence, not a fault: "no such email" and
// "no match" are deliberately the same signal.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create collides with the unique index
// on the normalized email. Concurrent registrations race safely on it:
// exactly one insert wins.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by normalized email address.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Returns ErrDuplicateEmail when the
	// normalized email is already taken.
	Create(ctx context.Context, user *entity.User) error
}
