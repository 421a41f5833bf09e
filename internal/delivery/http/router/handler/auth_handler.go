// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"wlsd/config"
	"wlsd/internal/delivery/http/middleware"
	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the passwordless login handlers.
type AuthHandler struct {
	uc            usecase.AuthUsecase
	logger        *slog.Logger
	redirectTo    string
	cookieMaxAge  int
	secureCookies bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	redirectTo := strings.TrimRight(cfg.App.BaseURL, "/")
	if redirectTo == "" {
		redirectTo = "/"
	}

	return &AuthHandler{
		uc:            uc,
		logger:        logger,
		redirectTo:    redirectTo,
		cookieMaxAge:  int(cfg.Auth.SessionTokenTTL.Seconds()),
		secureCookies: cfg.Auth.SecureCookies,
	}
}

// LoginForm processes the login form. The acknowledgment is the same whether
// or not the address has an account, so the response cannot be used to probe
// for registered emails.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	var input usecase.RequestLoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.RequestLogin(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, "Check your email!")
}

// Login handles the mailed login link: the login token is exchanged for a
// session cookie and the browser is sent back to the front page.
func (h *AuthHandler) Login(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return domainerrors.ErrTokenForbidden.WrapMessage("missing token")
	}

	sessionToken, err := h.uc.PromoteLoginToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(middleware.NewSessionCookie(sessionToken, h.cookieMaxAge, h.secureCookies))

	return c.Redirect(http.StatusSeeOther, h.redirectTo)
}

// RegisterPage displays the registration form, carrying the login token
// through a hidden field.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", map[string]any{
		"Token": c.QueryParam("token"),
	})
}

// RegisterForm processes the registration form: the account is created for
// the email bound to the login token, then the same token-to-session
// promotion runs.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	sessionToken, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(middleware.NewSessionCookie(sessionToken, h.cookieMaxAge, h.secureCookies))

	return c.Redirect(http.StatusSeeOther, h.redirectTo)
}
