// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side proof of authentication tied to a user.
//
// The client only holds the opaque Token (inside a signed cookie); the store
// keeps TokenHash, so a leaked sessions table never yields usable tokens.
type Session struct {
	// Token is the opaque session identifier handed to the client.
	// It is populated only right after creation and is never persisted.
	Token string `json:"-"`

	// TokenHash is the keyed hash of Token used as the storage key.
	TokenHash string `json:"-"`

	// UserID references the owner of the session.
	UserID int64 `json:"user_id"`

	// Username is denormalized from the user record for page rendering.
	Username string `json:"username"`

	// CreatedAt is the moment of the login that created the session.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the moment after which the session is treated as absent.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
