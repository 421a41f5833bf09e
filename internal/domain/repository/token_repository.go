package repository

import (
	"context"

	"wlsd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence.
var (
	// ErrTokenNotFound is returned when a token is unknown, already consumed
	// or expired. The three cases are intentionally indistinguishable.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenCollision is returned when a freshly generated token value hits
	// the unique constraint. Astronomically unlikely with 64-bit tokens, and
	// retryable when it happens.
	ErrTokenCollision = errors.New("token value collision")

	// ErrUnknownUser is returned when a session insert references a user id
	// with no user row behind it.
	ErrUnknownUser = errors.New("unknown user")
)

// LoginTokenRepository persists one-time login tokens. Tokens are issued
// against an email, which need not belong to an account, and are only ever
// inserted, looked up and deleted, never mutated. Multiple outstanding tokens
// per email are allowed; issuing a new one does not invalidate the others.
type LoginTokenRepository interface {
	// Create persists a freshly issued login token.
	Create(ctx context.Context, token *entity.LoginToken) error

	// FindUserByToken resolves a live login token to the account owning its
	// bound email, joining through the email. Returns ErrUserNotFound when
	// the token is unknown, expired, or its email has no account; callers
	// cannot tell those apart.
	FindUserByToken(ctx context.Context, token string) (*entity.User, error)

	// FindEmailByToken resolves a live login token to its bound email
	// regardless of whether an account exists. Registration path only.
	// Returns ErrTokenNotFound for unknown or expired tokens.
	FindEmailByToken(ctx context.Context, token string) (string, error)

	// Consume deletes a login token after successful promotion, making it
	// single-use. Returns ErrTokenNotFound when there was nothing to delete.
	Consume(ctx context.Context, token string) error

	// DeleteExpired removes login tokens past their time-to-live.
	DeleteExpired(ctx context.Context) error
}

// SessionTokenRepository persists long-lived session tokens. One user may
// hold many concurrent sessions; a session row always references an existing
// user (engine-enforced foreign key).
type SessionTokenRepository interface {
	// Create persists a freshly issued session token. Returns ErrUnknownUser
	// when the referenced user does not exist.
	Create(ctx context.Context, token *entity.SessionToken) error

	// FindUserByToken resolves a live session token to its user. Returns
	// ErrUserNotFound for unknown or expired tokens.
	FindUserByToken(ctx context.Context, token string) (*entity.User, error)

	// DeleteByToken revokes a single session.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByUserID revokes every session of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes session tokens past their time-to-live.
	DeleteExpired(ctx context.Context) error
}
