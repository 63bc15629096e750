package models

import "time"

// User represents an account entity used for authentication and ownership
// of posts.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned by the store (UUIDv7).
	UserID string `json:"_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, lower-cased login identifier.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is only loaded by credential lookups and never serialized.
	Password string `json:"-"`

	// IsVerified reports whether the email address was confirmed.
	IsVerified bool `json:"isVerified"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
