// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

import (
	"estate/internal/domain/entity"
)

// TokenSigner mints and verifies the signed, self-contained access tokens.
// Both the identity service and the edge gateway hold the same shared secret,
// so verification never needs a store lookup; rotating the secret invalidates
// every outstanding access token at once.
type TokenSigner interface {
	// Sign creates an access token embedding the user's identity and roles
	// with an expiry claim.
	Sign(user *entity.User) (string, error)

	// Verify checks signature and expiry and returns the decoded claims.
	Verify(token string) (*entity.AccessClaims, error)
}
