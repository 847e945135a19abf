package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/delivery/http/response"
	domainerrors "estate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status and name
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorName(), appErr.Message())

		return
	}

	// Echo's own errors (404, 405, body limits)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		_ = response.Error(c, httpErr.Code, http.StatusText(httpErr.Code), message)

		return
	}

	// Anything else is unexpected; log it with the stack and return a
	// generic envelope. Store error text never reaches the caller.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c,
		domainerrors.ErrInternal.HTTPCode(),
		domainerrors.ErrInternal.ErrorName(),
		domainerrors.ErrInternal.Message(),
	)
}
