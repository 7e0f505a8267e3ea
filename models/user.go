package models

import "time"

// User is an account that owns landing pages.
type User struct {
	// UserID is the internal identifier assigned by the database.
	UserID int64 `json:"-"`

	// Login is the unique sign-in name.
	Login string `json:"login"`

	// Password is the plain-text password received from the client. It is
	// never persisted and never sent back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
