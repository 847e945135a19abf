// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. Either Email or Username (or both) is
// set; each is unique across the system and usable as a login identifier.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // Primary contact email, unique, usable as a login identifier.
	Username     string     // Display handle, unique, usable as a login identifier.
	PasswordHash string     // bcrypt hash of the password. Never serialized to callers.
	Roles        Roles      // Assigned roles. Never empty; defaults to the lowest-privilege role.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	LastLoginAt  *time.Time // Timestamp of the last successful login. Nil until the first login.
}

// Sanitized returns a copy of the user with the password hash stripped.
// Every value that leaves the usecase layer goes through this.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""

	return &clone
}
