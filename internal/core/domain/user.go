package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrForbidden = errors.New("access forbidden")
var ErrTokenInvalid = errors.New("invalid token signature")
var ErrTokenExpired = errors.New("token expired")

// User models an account in the admin dashboard.
// HashedPassword is never serialized; callers always receive the public
// projection of the record.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	IsAdmin        bool      `json:"is_admin"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
