package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate/internal/delivery/http/response"
	domainerrors "estate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body := runErrorHandler(t, domainerrors.ErrInvalidCredential.WrapMessage("login failed"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "INVALID_CREDENTIAL", body.ErrorName)
	assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
	assert.NotZero(t, body.Timestamp)
}

func TestHandleHTTPError_ConflictMapsTo409(t *testing.T) {
	rec, body := runErrorHandler(t, domainerrors.ErrConcurrentRefreshConflict.WrapMessage("lost race"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONCURRENT_REFRESH_CONFLICT", body.ErrorName)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body := runErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
}

func TestHandleHTTPError_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := runErrorHandler(t, errors.New("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.ErrorName)
	// Store error text must not leak to the caller
	assert.NotContains(t, body.Message, "pq:")
	assert.NotContains(t, body.Message, "10.0.0.5")
}
