package auth

import (
	"time"

	"github.com/google/uuid"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
}

// LookupResult tells the sign-in screen whether to ask for login or registration.
type LookupResult struct {
	Email      string `json:"email"`
	Registered bool   `json:"registered"`
}
