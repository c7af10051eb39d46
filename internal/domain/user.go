package domain

import (
	"errors"
	"time"
)

// User is the identity cached by the browser after login. It is the JSON blob
// stored under the session key.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ErrEmailTaken is returned by user stores when an address is already
// registered, ignoring case.
var ErrEmailTaken = errors.New("email already registered")

// Account is a registered user row, including the password hash.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

// User returns the public identity of the account.
func (a *Account) User() User {
	return User{ID: a.ID, Email: a.Email, FullName: a.FullName}
}

// Auth actions accepted by POST /api/auth.
const (
	ActionRegister = "register"
	ActionLogin    = "login"
)

// AuthRequest is the body of POST /api/auth.
type AuthRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest is the validated input for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest is the validated input for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"max=200"`
}

// AuthResponse is returned by the auth API after register or login.
type AuthResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// JWTClaims represents the JWT payload.
type JWTClaims struct {
	Sub   int64  `json:"sub"`
	Email string `json:"email"`
}
