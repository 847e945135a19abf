package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	mockSvc "estate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *mockSvc.MockTokenSigner) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), mockSvc.NewMockTokenSigner(t)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	c, signer := newAuthTestContext(t, "Bearer good-token")
	userID := uuid.New()
	signer.EXPECT().Verify("good-token").Return(&entity.AccessClaims{
		UserID: userID,
		Roles:  entity.Roles{entity.RoleBuyer},
	}, nil)

	m := NewAuthMiddleware(signer)
	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	identity := deliverycontext.GetIdentity(c)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	c, signer := newAuthTestContext(t, "")

	m := NewAuthMiddleware(signer)
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	c, signer := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	m := NewAuthMiddleware(signer)
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_BadToken(t *testing.T) {
	c, signer := newAuthTestContext(t, "Bearer expired-token")
	signer.EXPECT().Verify("expired-token").Return(nil, assert.AnError)

	m := NewAuthMiddleware(signer)
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestRequireAnyRole_OneMatchingRoleSuffices(t *testing.T) {
	c, signer := newAuthTestContext(t, "")
	deliverycontext.SetIdentity(c, &entity.Identity{
		UserID: uuid.New(),
		Roles:  entity.Roles{entity.RoleSeller},
	})

	m := NewAuthMiddleware(signer)
	// Route requires ADMIN or SELLER; the identity holds just SELLER
	err := m.RequireAnyRole(entity.RoleAdmin, entity.RoleSeller)(okHandler)(c)

	assert.NoError(t, err)
}

func TestRequireAnyRole_NoMatchingRole(t *testing.T) {
	c, signer := newAuthTestContext(t, "")
	deliverycontext.SetIdentity(c, &entity.Identity{
		UserID: uuid.New(),
		Roles:  entity.Roles{entity.RoleBuyer},
	})

	m := NewAuthMiddleware(signer)
	err := m.RequireAnyRole(entity.RoleAdmin)(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequireAnyRole_NoIdentity(t *testing.T) {
	c, signer := newAuthTestContext(t, "")

	m := NewAuthMiddleware(signer)
	err := m.RequireAnyRole(entity.RoleBuyer)(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
