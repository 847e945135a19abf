// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair is the result of a successful login or refresh: a short-lived
// signed access token plus the opaque refresh token that replaces any
// previously issued one for the same user.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Identity is the per-request identity context the edge attaches after a
// successful access-token verification. It is never persisted; its lifetime
// is one request.
type Identity struct {
	UserID   uuid.UUID
	Roles    Roles
	Email    string
	Username string
}

// AccessClaims is the decoded claim set of an access token. Everything the
// edge needs to authorize a request rides inside the token so that no store
// lookup is required.
type AccessClaims struct {
	UserID    uuid.UUID
	Roles     Roles
	Email     string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity converts the claims into the request identity context.
func (c *AccessClaims) Identity() *Identity {
	return &Identity{
		UserID:   c.UserID,
		Roles:    c.Roles,
		Email:    c.Email,
		Username: c.Username,
	}
}
