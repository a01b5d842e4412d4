package models

import "time"

// User represents a registered account of the site.
// Username and Email are each unique across all users.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password is the plaintext password received from a form.
	// It only lives for the duration of a request and is never persisted or logged.
	Password string `json:"-"`

	// PasswordHash stores the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
