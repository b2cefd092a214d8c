// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id,omitempty"`

	// Email is the unique sign-in identifier. Share grants address users by it.
	Email string `json:"email"`

	// Password is the plaintext password as received from the client.
	// It is only present on register/login requests and never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted by the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the signed-in identity persisted by the client between runs.
type Session struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// Caller is the authenticated identity a request is made on behalf of.
// Share grants are matched against Email.
type Caller struct {
	UserID int64
	Email  string
}
