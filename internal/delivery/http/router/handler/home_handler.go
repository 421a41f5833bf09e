package handler

import (
	"net/http"

	"wlsd/internal/delivery/http/middleware"
	"wlsd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HomeHandler renders the front page.
type HomeHandler struct {
	auth usecase.AuthUsecase
}

// NewHomeHandler is the constructor for HomeHandler, injected by Fx.
func NewHomeHandler(auth usecase.AuthUsecase) *HomeHandler {
	return &HomeHandler{auth: auth}
}

// Home displays the front page. A session cookie is optional here, but when
// one is presented it has to resolve.
func (h *HomeHandler) Home(c echo.Context) error {
	data := map[string]any{
		"Message": "Hello, world!",
	}

	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		user, err := h.auth.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return errors.WithStack(err)
		}
		data["User"] = user
	}

	return c.Render(http.StatusOK, "home.html", data)
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
