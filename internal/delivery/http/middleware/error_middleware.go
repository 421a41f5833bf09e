// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"log/slog"
	"net/http"

	"wlsd/config"
	domainerrors "wlsd/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates application errors into HTTP responses. Internal
// error detail never reaches the response body outside of debug mode; it only
// goes to the log.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		m.respond(c, appErr.HTTPCode(), appErr.Message(), err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.respond(c, httpErr.Code, http.StatusText(httpErr.Code), err)

		return
	}

	// Everything unexpected collapses to a generic 500.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.respond(c, http.StatusInternalServerError, "Internal server error", err)
}

func (m *ErrorMiddleware) respond(c echo.Context, code int, message string, err error) {
	if m.debug {
		message = message + "\n\n" + err.Error()
	}

	if writeErr := c.String(code, message); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
