// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wlsd/internal/domain/entity"
)

// RequestLoginInput carries the login form submission.
type RequestLoginInput struct {
	Email string `form:"email" json:"email" validate:"required,email"`
}

// RegisterInput carries the registration form submission, bound to the login
// token that proved mailbox control.
type RegisterInput struct {
	Token     string `form:"token" json:"token" validate:"required"`
	FirstName string `form:"first_name" json:"first_name" validate:"required"`
	LastName  string `form:"last_name" json:"last_name" validate:"required"`
}

// AuthUsecase orchestrates the passwordless login flow: one-time login tokens
// mailed out, then promoted to long-lived session tokens.
type AuthUsecase interface {
	// RequestLogin issues a login token for the address and mails the
	// matching link. It deliberately reveals nothing about whether the
	// address has an account; the caller always answers with the same
	// acknowledgment.
	RequestLogin(ctx context.Context, input *RequestLoginInput) error

	// PromoteLoginToken exchanges a login token for a new session token when
	// the token resolves to an existing account. The login token is consumed.
	PromoteLoginToken(ctx context.Context, token string) (string, error)

	// Register creates the account bound to a login token's email and then
	// performs the same token-to-session promotion.
	Register(ctx context.Context, input *RegisterInput) (string, error)

	// Authenticate resolves a session token to its user. Called on every
	// protected request.
	Authenticate(ctx context.Context, sessionToken string) (*entity.User, error)
}
