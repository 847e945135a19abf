// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"estate/config"
	"estate/internal/delivery/http/response"
	"estate/internal/domain/entity"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the credential and session endpoints.
type AuthHandler struct {
	uc  usecase.IdentityUsecase
	cfg *config.Config
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.IdentityUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg}
}

// userView is the caller-facing projection of a user record.
type userView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	Roles       []string   `json:"roles"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// sessionView carries the access token; the refresh token travels only in
// the cookie.
type sessionView struct {
	User        *userView `json:"user,omitempty"`
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int64     `json:"expiresIn"` // seconds
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:          user.ID.String(),
		Email:       user.Email,
		Username:    user.Username,
		Roles:       user.Roles.ToStrings(),
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// Register handles account creation. A successful registration also opens
// the first session, so the caller is logged in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusCreated, &sessionView{
		User:        toUserView(output.User),
		AccessToken: output.Tokens.AccessToken,
		ExpiresIn:   int64(h.cfg.Auth.AccessTokenTTL.Seconds()),
	}, "User registered successfully")
}

// Login handles credential verification and session replacement.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusOK, &sessionView{
		User:        toUserView(output.User),
		AccessToken: output.Tokens.AccessToken,
		ExpiresIn:   int64(h.cfg.Auth.AccessTokenTTL.Seconds()),
	}, "Login successful")
}

// Refresh rotates the refresh token carried by the session cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: h.refreshTokenFromRequest(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusOK, &sessionView{
		AccessToken: output.Tokens.AccessToken,
		ExpiresIn:   int64(h.cfg.Auth.AccessTokenTTL.Seconds()),
	}, "Token refreshed successfully")
}

// Logout validates the presented refresh token, revokes its session, and
// clears the cookie. An empty or already-revoked token fails.
func (h *AuthHandler) Logout(c echo.Context) error {
	err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: h.refreshTokenFromRequest(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Verify checks a bearer access token and returns the live user it belongs
// to. Used by services that need a store-backed identity lookup rather than
// the in-process edge check; a token for a deleted account fails here.
func (h *AuthHandler) Verify(c echo.Context) error {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := cutBearer(authHeader)
	if !found {
		return response.Unauthorized(c, "INVALID_TOKEN", "missing or malformed bearer token")
	}

	user, err := h.uc.VerifyAccessToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Token is valid")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// refreshTokenFromRequest prefers the session cookie and falls back to a
// JSON body for non-browser clients.
func (h *AuthHandler) refreshTokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(h.cfg.Auth.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&body); err == nil {
		return body.RefreshToken
	}

	return ""
}

func (h *AuthHandler) setSessionCookie(c echo.Context, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.cfg.Auth.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// cutBearer splits "Bearer <token>" and reports whether the scheme matched.
func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}

	return header[len(prefix):], true
}
