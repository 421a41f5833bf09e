package middleware

import (
	"net/http"

	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session"

// userContextKey is where RequireSession stores the resolved user.
const userContextKey = "user"

// SessionMiddleware authenticates requests via the session cookie.
type SessionMiddleware struct {
	auth usecase.AuthUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(auth usecase.AuthUsecase) *SessionMiddleware {
	return &SessionMiddleware{auth: auth}
}

// RequireSession resolves the session cookie to a user on every request it
// guards. A missing or unresolvable token is a 403; malformed, expired and
// never-issued tokens are indistinguishable from the outside.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrTokenForbidden.WrapMessage("no session cookie")
		}

		user, err := m.auth.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// NewSessionCookie builds the session cookie with its hardening attributes.
func NewSessionCookie(token string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
