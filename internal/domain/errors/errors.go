// Package errors defines the application error taxonomy. Every failure a
// caller can observe is one of the BaseError values below; the delivery
// layer maps them onto the uniform response envelope.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorName() string // Business error name, e.g. "DUPLICATE_IDENTITY"
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorName string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorName, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorName: errorName,
		message:   message,
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

// ErrorName returns the business error name
func (e *BaseError) ErrorName() string {
	return e.errorName
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// ErrDuplicateIdentity is returned when registration collides with an
	// existing email or username.
	ErrDuplicateIdentity = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_IDENTITY",
		"email or username already registered",
	)

	// ErrInvalidRoleAssignment is returned when registration requests a role
	// that cannot be self-assigned.
	ErrInvalidRoleAssignment = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE_ASSIGNMENT",
		"requested role cannot be assigned at registration",
	)

	// ErrIdentityNotFound is returned when a user record no longer exists.
	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_FOUND",
		"user not found",
	)

	// ErrInvalidCredential covers both unknown identifier and wrong password
	// so the two are indistinguishable to the caller.
	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"identifier or password is incorrect",
	)

	// ErrInvalidRefreshToken is returned when the presented refresh token has
	// no session entry or does not match the stored one.
	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REFRESH_TOKEN",
		"invalid or expired refresh token",
	)

	// ErrInvalidToken is returned on access-token signature or expiry failure.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"invalid or expired access token",
	)

	// ErrForbidden is returned when an authenticated identity lacks every
	// role a route requires.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"insufficient role permissions",
	)

	// ErrConcurrentRefreshConflict is returned to the losing racer when two
	// refresh calls rotate the same session concurrently.
	ErrConcurrentRefreshConflict = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_REFRESH_CONFLICT",
		"session was rotated by a concurrent request",
	)

	// ErrUnavailable covers credential-store and session-store connectivity
	// failures.
	ErrUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UNAVAILABLE",
		"a backing store is temporarily unavailable",
	)

	// ErrValidationFailed is returned when a request body fails shape checks.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
	)

	// ErrInternal is the catch-all for unexpected failures. Store-specific
	// error text never reaches the caller.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"an unexpected error occurred",
	)
)
