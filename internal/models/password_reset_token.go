package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTokenDB represents a one-time password reset token.
// A token is valid iff it has not been used and has not expired.
type PasswordResetTokenDB struct {
	TokenID   uuid.UUID `json:"id" db:"token_id"`           // Primary key
	Token     string    `json:"-" db:"token"`               // Random URL-safe token value
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Expiry (issue time + 1h)
	Used      bool      `json:"used" db:"used"`             // Consumed flag, set exactly once
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Issue timestamp
}

// IsValid reports whether the token can still be consumed.
func (t *PasswordResetTokenDB) IsValid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
