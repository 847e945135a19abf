// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"estate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string   `json:"email" validate:"required,email"`
	Username string   `json:"username" validate:"required,min=3,max=64"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=BUYER SELLER"`
}

// LoginInput defines the data required to log in. Identifier matches either
// the email or the username.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RefreshInput carries the opaque refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session being revoked.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account and its first session.
type RegisterOutput struct {
	User   *entity.User
	Tokens entity.TokenPair
}

// LoginOutput returns the authenticated account and a fresh session.
type LoginOutput struct {
	User   *entity.User
	Tokens entity.TokenPair
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	Tokens entity.TokenPair
}

// IdentityUsecase defines the interface for credential and session
// operations. This is the contract the delivery layer depends on.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	// VerifyAccessToken checks signature and expiry, then confirms the token
	// subject still exists in the credential store. Unlike the gateway's
	// in-process check, this returns the live user record.
	VerifyAccessToken(ctx context.Context, token string) (*entity.User, error)

	// SeedAdmin bootstraps the configured administrator account if it does
	// not exist yet. Invoked once at identity-service startup.
	SeedAdmin(ctx context.Context) error
}
