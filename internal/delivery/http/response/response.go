// Package response defines the uniform API envelope. Success and failure
// share one shape so clients can parse either without branching.
package response

import (
	"net/http"
	"time"

	deliverycontext "estate/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success    bool      `json:"success"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	ErrorName  string    `json:"errorName,omitempty"` // Business error name, e.g. "INVALID_CREDENTIAL"
	Data       any       `json:"data,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"requestId,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorName string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		ErrorName:  errorName,
		Timestamp:  time.Now().UTC(),
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorName string, message string) error {
	return Error(c, http.StatusUnauthorized, errorName, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorName string, message string) error {
	return Error(c, http.StatusForbidden, errorName, message)
}
