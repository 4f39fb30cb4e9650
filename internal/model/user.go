package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    *string   `json:"firstname,omitempty"`
	LastName     *string   `json:"lastname,omitempty"`
	Username     *string   `json:"username,omitempty"`
	Email        string    `json:"email"`
	IsDeleted    bool      `json:"is_deleted"`
	AuthProvider string    `json:"auth_provider,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
