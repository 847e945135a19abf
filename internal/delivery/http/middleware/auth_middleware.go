package middleware

import (
	"strings"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies access tokens at the edge and enforces role
// requirements. Verification is purely cryptographic; no store is consulted,
// so a token stays usable until its expiry even after logout.
type AuthMiddleware struct {
	signer service.TokenSigner
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(signer service.TokenSigner) *AuthMiddleware {
	return &AuthMiddleware{signer: signer}
}

// Authenticate validates the bearer access token and attaches the verified
// identity to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.signer.Verify(token)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
		}

		deliverycontext.SetIdentity(c, claims.Identity())

		return next(c)
	}
}

// RequireAnyRole is a middleware factory that passes requests whose identity
// holds at least one of the given roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireAnyRole(roles ...entity.Role) echo.MiddlewareFunc {
	required := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.ErrInvalidToken.WrapMessage("no identity on request")
			}

			if !identity.Roles.Intersects(required) {
				return domainerrors.ErrForbidden.WrapMessage("missing required role")
			}

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrInvalidToken.WrapMessage("missing authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", domainerrors.ErrInvalidToken.WrapMessage("malformed bearer token")
	}

	return token, nil
}
