package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential is a registered console user. Only the bcrypt hash of the password is kept.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RevokedSession marks an access token id that was signed out before it expired.
type RevokedSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt time.Time
}

// IsExpired returns true once the underlying token could no longer be used anyway.
func (s *RevokedSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
