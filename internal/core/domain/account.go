package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrRateLimited        = errors.New("too many requests")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrForbidden          = errors.New("access forbidden")
)

// Account models an identity owned by the session store.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session is an authenticated sign-in. TokenID is the jti claim used for revocation.
type Session struct {
	AccessToken string    `json:"accessToken"`
	TokenID     string    `json:"-"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Account     *Account  `json:"account"`
}
