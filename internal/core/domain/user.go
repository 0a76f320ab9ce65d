package domain

import (
	"errors"
	"time"
)

const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// ValidRole reports whether role is one of the two account roles.
// Roles are fixed at registration and never change afterwards.
func ValidRole(role string) bool {
	return role == RoleTenant || role == RoleLandlord
}

// User models a registered account. Email is stored lowercased and is
// unique across the collection.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
