// Package repository defines the persistence contracts the usecase layer
// depends on. Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors returned by repository implementations. The usecase layer
// translates these into domain errors.
var (
	// ErrUserNotFound indicates no user matched the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates the unique index on email or username
	// rejected an insert. Uniqueness is enforced by the store itself, not by
	// an application-level existence check, so concurrent registrations
	// cannot race past each other.
	ErrDuplicateUser = errors.New("email or username already exists")
)

// UserRepository is the credential store: persisted user records with their
// salted password hashes and assigned roles.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateUser when email or
	// username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIdentifier retrieves a user whose email or username equals the
	// given identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// TouchLastLogin records a successful login timestamp.
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
