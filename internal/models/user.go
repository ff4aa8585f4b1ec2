package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Role determines the post-login landing page on the client.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Primary key
	Email        string    `json:"email" db:"email"`                 // User email
	Username     string    `json:"username" db:"username"`           // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password, never serialized
	FirstName    string    `json:"first_name" db:"first_name"`       // First name
	LastName     string    `json:"last_name" db:"last_name"`         // Last name
	Age          int       `json:"age" db:"age"`                     // Age in years
	Country      string    `json:"country" db:"country"`             // Country of residence
	Gender       string    `json:"gender" db:"gender"`               // Free-form gender string
	Role         string    `json:"role" db:"role"`                   // "user" or "admin"
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}
