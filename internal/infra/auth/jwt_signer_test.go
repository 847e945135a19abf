package auth

import (
	"testing"
	"time"

	"estate/config"
	"estate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig(accessTTL time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			SigningSecret:  "test-secret",
			AccessTokenTTL: accessTTL,
		},
	}
}

func TestNewJWTSigner_RequiresSecret(t *testing.T) {
	_, err := NewJWTSigner(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTSigner(&config.Config{})
	assert.Error(t, err)
}

func TestJWTSigner_SignAndVerify(t *testing.T) {
	signer, err := NewJWTSigner(testAuthConfig(15 * time.Minute))
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "seller@example.com",
		Username: "seller",
		Roles:    entity.Roles{entity.RoleSeller, entity.RoleBuyer},
	}

	token, err := signer.Sign(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, entity.Roles{entity.RoleSeller, entity.RoleBuyer}, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTSigner_VerifyRejectsExpiredToken(t *testing.T) {
	signer, err := NewJWTSigner(testAuthConfig(-time.Minute))
	require.NoError(t, err)

	token, err := signer.Sign(&entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleBuyer}})
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.Error(t, err)
}

func TestJWTSigner_VerifyRejectsWrongSecret(t *testing.T) {
	signer, err := NewJWTSigner(testAuthConfig(15 * time.Minute))
	require.NoError(t, err)

	other, err := NewJWTSigner(&config.Config{
		Auth: &config.AuthConfig{SigningSecret: "different-secret", AccessTokenTTL: 15 * time.Minute},
	})
	require.NoError(t, err)

	token, err := signer.Sign(&entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleBuyer}})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTSigner_VerifyRejectsGarbage(t *testing.T) {
	signer, err := NewJWTSigner(testAuthConfig(15 * time.Minute))
	require.NoError(t, err)

	_, err = signer.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTSigner_VerifyRejectsTamperedToken(t *testing.T) {
	signer, err := NewJWTSigner(testAuthConfig(15 * time.Minute))
	require.NoError(t, err)

	token, err := signer.Sign(&entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleBuyer}})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = signer.Verify(tampered)
	assert.Error(t, err)
}
