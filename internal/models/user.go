package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// OAuthPasswordSentinel is stored as the password hash of accounts
// created through OAuth. It is not a valid bcrypt hash, so password
// login can never succeed against it.
const OAuthPasswordSentinel = "*"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                 // Primary key
	Email        string    `json:"email" db:"email"`                // Unique email, natural lookup key
	PasswordHash string    `json:"-" db:"password_hash"`            // One-way password hash
	FirstName    string    `json:"first_name" db:"first_name"`      // Given name
	LastName     string    `json:"last_name" db:"last_name"`        // Family name
	Role         string    `json:"role" db:"role"`                  // USER or ADMIN
	CreatedAt    time.Time `json:"created_at" db:"created_at"`      // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`      // Last update timestamp
}
