// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes.
package errors

import (
	"net/http"

	"wlsd/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrEmailAlreadyRegistered is returned when registration collides with an
	// existing account. Surfaced as a 409, never folded into a generic 500.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"This email is already registered",
		"",
	)

	// ErrTokenForbidden covers every way a presented token can fail to
	// resolve: unknown, expired, consumed or malformed. A single 403 keeps
	// those cases externally indistinguishable.
	ErrTokenForbidden = NewBaseError(
		http.StatusForbidden,
		"TOKEN_FORBIDDEN",
		"Forbidden",
		"",
	)

	// ErrUnknownUser signals a session insert referencing a user that does not
	// exist. This is an internal invariant violation, not a user-facing state.
	ErrUnknownUser = NewBaseError(
		http.StatusInternalServerError,
		"UNKNOWN_USER",
		"Internal server error",
		"",
	)

	// ErrMailDelivery is returned when the login email cannot be handed to the
	// mail transport. The login token already written stays valid, but the
	// user never receives a link.
	ErrMailDelivery = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_DELIVERY_FAILED",
		"Internal server error",
		"",
	)

	// ErrBadRequest covers malformed externally supplied input, such as an
	// unparseable identifier in a path.
	ErrBadRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Bad request",
		"",
	)

	// ErrNotFound is returned for absent content resources (events, posts).
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)

	// ErrInternalError is the catch-all for unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StorageError represents an I/O fault against the store, implementing the
// AppError interface. It always maps to a generic 500; the underlying cause
// is kept for logs only.
type StorageError struct {
	err     error
	details string
}

// NewStorageError wraps a storage-layer failure.
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_ERROR"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
