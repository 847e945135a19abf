package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors returned by session store implementations.
var (
	// ErrSessionNotFound indicates no live session exists for the key.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionConflict indicates a compare-and-swap lost against a
	// concurrent rotation: the stored token no longer matched the expected
	// one at swap time.
	ErrSessionConflict = errors.New("session rotated concurrently")
)

// SessionStore holds, per user, the single currently-valid refresh token.
// The key space is partitioned by user ID, so there is no cross-user
// contention; writing a new token for a user always invalidates the old one.
type SessionStore interface {
	// Put unconditionally stores token as the user's current refresh token
	// with the given time-to-live, overwriting any existing one. Used by
	// login, where any prior session is invalidated by design.
	Put(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error

	// Get returns the user's current refresh token, or ErrSessionNotFound.
	Get(ctx context.Context, userID uuid.UUID) (string, error)

	// Lookup resolves an opaque refresh token back to the user it belongs
	// to, or ErrSessionNotFound. The user ID is never taken from the caller.
	Lookup(ctx context.Context, token string) (uuid.UUID, error)

	// CompareAndSwap atomically replaces the user's refresh token with
	// newToken, but only if the stored token still equals oldToken. Returns
	// ErrSessionConflict when the stored token changed underneath, which is
	// how the losing side of two concurrent refresh calls is detected.
	CompareAndSwap(ctx context.Context, userID uuid.UUID, oldToken, newToken string, ttl time.Duration) error

	// Delete removes the user's session entirely. Idempotent: deleting a
	// missing session is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}
