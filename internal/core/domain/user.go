package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrAccountDisabled = errors.New("account disabled")
var ErrInvalidRole = errors.New("invalid role")

// User models a registered account.
type User struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
