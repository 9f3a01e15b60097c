package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of roles recognised by the permission policy.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RolePartner  Role = "PARTNER"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole validates a raw role string against the closed enumeration
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RolePartner, RoleCustomer:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role: %q", raw)
	}
}

// GuestFullName is the full name of the canonical guest user, used when a
// booking is made without an authenticated account.
const GuestFullName = "guest"

// User represents an account in the system
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsGuest reports whether this user is the canonical guest placeholder
func (u *User) IsGuest() bool {
	return u.FullName == GuestFullName
}

// RegisterRequest represents the account creation payload. New accounts are
// always customers; partner and admin roles are assigned out of band.
type RegisterRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
