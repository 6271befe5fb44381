package models

import "time"

// User represents an account entity used for authentication and authorization.
// The password hash is a server-side secret and is never serialized.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID).
	UserID string `json:"id"`

	// Email is the unique login identifier, compared case-sensitively as stored.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body accepted by the register and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
