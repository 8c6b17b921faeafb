package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is the signed-in user's local profile
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DevTokenRequest asks for a locally signed session token. Only served
// outside production.
type DevTokenRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	Name    string `json:"name" validate:"max=100,single_line"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type DevTokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SeedResponse reports the demo data written to an account
type SeedResponse struct {
	AccountID    uuid.UUID `json:"accountId"`
	Transactions int       `json:"transactions"`
	Balance      string    `json:"balance"`
	Views        []string  `json:"views"`
}
