// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"wlsd/config"
	"wlsd/internal/domain/entity"
	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/domain/repository"
	"wlsd/internal/domain/service"
	"wlsd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenInsertAttempts bounds retries when a generated token value collides
// with an existing row. One retry would already be overkill for 64-bit tokens.
const tokenInsertAttempts = 3

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo    repository.UserRepository
	loginRepo   repository.LoginTokenRepository
	sessionRepo repository.SessionTokenRepository
	generator   service.TokenGenerator
	mailSender  service.MailSender
	baseURL     string
	serviceName string
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	LoginRepo   repository.LoginTokenRepository
	SessionRepo repository.SessionTokenRepository
	Generator   service.TokenGenerator
	MailSender  service.MailSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:    params.UserRepo,
		loginRepo:   params.LoginRepo,
		sessionRepo: params.SessionRepo,
		generator:   params.Generator,
		mailSender:  params.MailSender,
		baseURL:     strings.TrimRight(params.Config.App.BaseURL, "/"),
		serviceName: params.Config.Env.ServiceName,
		logger:      params.Logger,
	}
}

// RequestLogin issues a login token for the address and mails the matching
// link. The response to the caller is identical whether or not an account
// exists; only the link target inside the email differs.
func (srv *authService) RequestLogin(ctx context.Context, input *usecase.RequestLoginInput) error {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid email address")
	}

	loginToken, err := srv.issueLoginToken(ctx, email)
	if err != nil {
		return err
	}

	// The branch is decided again at presentation time; the link target is
	// only a hint so the user lands on the right form.
	var link string
	_, err = srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		link = fmt.Sprintf("%s/login?token=%s", srv.baseURL, loginToken)
	case errors.Is(err, repository.ErrUserNotFound):
		link = fmt.Sprintf("%s/register?token=%s", srv.baseURL, loginToken)
	default:
		return errors.Wrap(err, "failed to look up account")
	}

	subject := fmt.Sprintf("Log in to %s", srv.serviceName)
	if err := srv.mailSender.Send(ctx, email, subject, link); err != nil {
		srv.logger.Error("Login mail delivery failed", slog.Any("error", err))

		// The token already written stays valid, but without the link the
		// user cannot use it. No retry at this level.
		return domainerrors.ErrMailDelivery.WrapMessage("failed to deliver login link")
	}

	srv.logger.Info("Login link dispatched")

	return nil
}

// PromoteLoginToken exchanges a login token for a session token. The branch
// between login and registration is decided here, by whether the token
// resolves to an account right now, not by anything recorded at issuance.
func (srv *authService) PromoteLoginToken(ctx context.Context, token string) (string, error) {
	user, err := srv.loginRepo.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrTokenForbidden.WrapMessage("login token did not resolve")
		}

		return "", errors.Wrap(err, "failed to resolve login token")
	}

	sessionToken, err := srv.issueSessionToken(ctx, user)
	if err != nil {
		return "", err
	}

	srv.consumeLoginToken(ctx, token)

	srv.logger.Info("Login token promoted", slog.Any("user_id", user.ID))

	return sessionToken, nil
}

// Register creates the account bound to a login token's email, then performs
// the same token-to-session promotion.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (string, error) {
	email, err := srv.loginRepo.FindEmailByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return "", domainerrors.ErrTokenForbidden.WrapMessage("login token did not resolve")
		}

		return "", errors.Wrap(err, "failed to resolve login token")
	}

	user := &entity.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost a race with another registration for the same address, or
			// the token was replayed after the account appeared.
			return "", domainerrors.ErrEmailAlreadyRegistered.WrapMessage("account already exists")
		}

		return "", errors.Wrap(err, "failed to create user")
	}

	sessionToken, err := srv.issueSessionToken(ctx, user)
	if err != nil {
		return "", err
	}

	srv.consumeLoginToken(ctx, input.Token)

	srv.logger.Info("User registered", slog.Any("user_id", user.ID))

	return sessionToken, nil
}

// Authenticate resolves a session token to its user.
func (srv *authService) Authenticate(ctx context.Context, sessionToken string) (*entity.User, error) {
	user, err := srv.sessionRepo.FindUserByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenForbidden.WrapMessage("session token did not resolve")
		}

		return nil, errors.Wrap(err, "failed to resolve session token")
	}

	return user, nil
}

// issueLoginToken generates and persists a login token, retrying the
// generate-insert pair if the unique constraint reports a collision.
func (srv *authService) issueLoginToken(ctx context.Context, email string) (string, error) {
	for attempt := 0; attempt < tokenInsertAttempts; attempt++ {
		loginToken := &entity.LoginToken{
			Token: srv.generator.Generate(),
			Email: email,
		}

		err := srv.loginRepo.Create(ctx, loginToken)
		if err == nil {
			return loginToken.Token, nil
		}
		if errors.Is(err, repository.ErrTokenCollision) {
			srv.logger.Warn("Login token collision, regenerating")

			continue
		}

		return "", errors.Wrap(err, "failed to persist login token")
	}

	return "", errors.New("token generation kept colliding")
}

// issueSessionToken generates and persists a session token for the user.
func (srv *authService) issueSessionToken(ctx context.Context, user *entity.User) (string, error) {
	for attempt := 0; attempt < tokenInsertAttempts; attempt++ {
		sessionToken := &entity.SessionToken{
			Token:  srv.generator.Generate(),
			UserID: user.ID,
		}

		err := srv.sessionRepo.Create(ctx, sessionToken)
		if err == nil {
			return sessionToken.Token, nil
		}
		if errors.Is(err, repository.ErrTokenCollision) {
			srv.logger.Warn("Session token collision, regenerating")

			continue
		}
		if errors.Is(err, repository.ErrUnknownUser) {
			// The user row vanished between resolution and insert. Treated as
			// a bug, not a user-facing state.
			return "", domainerrors.ErrUnknownUser.WrapMessage("session insert referenced missing user")
		}

		return "", errors.Wrap(err, "failed to persist session token")
	}

	return "", errors.New("token generation kept colliding")
}

// consumeLoginToken deletes a promoted login token, making it single-use. A
// token that is already gone means a concurrent promotion beat us to it;
// either way it can no longer be replayed.
func (srv *authService) consumeLoginToken(ctx context.Context, token string) {
	if err := srv.loginRepo.Consume(ctx, token); err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		srv.logger.Warn("Failed to consume login token", slog.Any("error", err))
	}
}

// normalizeEmail validates and canonicalizes an address for lookups and
// storage. Uniqueness applies to this form.
func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.Wrap(err, "invalid email")
	}

	return strings.ToLower(addr.Address), nil
}
