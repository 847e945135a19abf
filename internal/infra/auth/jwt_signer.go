// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"estate/config"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"
)

// jwtSigner is a concrete implementation of the TokenSigner interface using
// HMAC-signed JWTs. It is stateless: anyone holding the same secret can
// verify a token without a store lookup.
type jwtSigner struct {
	secret    []byte
	accessTTL time.Duration
}

// accessClaims is the JWT claim layout of an access token. Roles, email and
// username ride in the token so the edge can authorize without calling back.
type accessClaims struct {
	Roles    []string `json:"roles,omitempty"`
	Email    string   `json:"email,omitempty"`
	Username string   `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTSigner is the constructor for jwtSigner.
func NewJWTSigner(cfg *config.Config) (service.TokenSigner, error) {
	if cfg.Auth == nil || cfg.Auth.SigningSecret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtSigner{
		secret:    []byte(cfg.Auth.SigningSecret),
		accessTTL: cfg.Auth.AccessTokenTTL,
	}, nil
}

// Sign creates a new access token for the given user.
func (s *jwtSigner) Sign(user *entity.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Roles:    user.Roles.ToStrings(),
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// Verify checks the signature and expiry of a token string and decodes its
// claims. Expiry is enforced by the parser from the exp claim alone.
func (s *jwtSigner) Verify(tokenString string) (*entity.AccessClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	decoded := &entity.AccessClaims{
		UserID:   userID,
		Roles:    entity.RolesFromStrings(claims.Roles),
		Email:    claims.Email,
		Username: claims.Username,
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}

	return decoded, nil
}
