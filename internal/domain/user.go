package domain

import (
	"context"
	"strings"
	"time"
)

// User represents a registered account
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Credentials represents signup and login input
type Credentials struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Normalize trims both fields and lowercases the email
func (c Credentials) Normalize() Credentials {
	return Credentials{
		Email:    NormalizeEmail(c.Email),
		Password: strings.TrimSpace(c.Password),
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TokenResponse is returned by signup and login
type TokenResponse struct {
	Token string `json:"token"`
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	// Create stores a user, returning ErrDuplicateUser if the email is taken
	Create(ctx context.Context, user *User) error
	// GetByEmail returns nil, nil when no user matches
	GetByEmail(ctx context.Context, email string) (*User, error)
}
