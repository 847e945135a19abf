// Package model contains the GORM persistence models. They mirror the domain
// entities but carry the database tags and column mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model backing the users table. Email and username
// each carry a unique index; uniqueness is enforced by the database, not by
// application-level existence checks, so concurrent registrations cannot
// race past each other.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string     `gorm:"uniqueIndex;size:255"`
	Username     string     `gorm:"uniqueIndex;size:64"`
	PasswordHash string     `gorm:"size:255;not null"`
	Roles        string     `gorm:"size:128;not null"` // comma-joined role names
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName overrides the GORM table name.
func (UserModel) TableName() string {
	return "users"
}
