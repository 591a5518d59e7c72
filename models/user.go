// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account of the messaging service.
// The username is the identity key: it is unique and never changes after
// registration.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique, immutable identity of the user.
	Username string `json:"username"`

	// Password carries the raw secret on its way in (registration, login).
	// It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// HashedPassword is the bcrypt hash stored in the database.
	// It is never exposed via JSON.
	HashedPassword string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	// JoinAt is set by the database when the account is created.
	JoinAt time.Time `json:"join_at"`

	// LastLoginAt stays nil until the first successful authentication.
	LastLoginAt *time.Time `json:"last_login_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// UserSummary is the public part of a user shown in listings and embedded
// into message views.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserProfile is the full public profile of a user, including activity
// timestamps. It never carries the password hash.
type UserProfile struct {
	UserSummary

	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}
