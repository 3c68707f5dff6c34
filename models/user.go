// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account record held by the user directory.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the identity key of the record. It is assigned once at
	// registration and embedded as the subject of every issued token.
	UserID string `json:"user_id"`

	// Email is the unique login identifier. Lookups are exact-match.
	Email string `json:"email"`

	// PasswordDigest stores the output of the credential hasher.
	// It MUST never hold the plaintext password and is never serialised.
	PasswordDigest string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Age is optional; nil means the user did not provide it.
	Age *int `json:"age,omitempty"`

	// Address is optional; an empty string means it was not provided.
	Address string `json:"address"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table (or document
// collection) associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the record with defaults
// substituted for absent optional fields.
func (u User) Profile() Profile {
	profile := Profile{
		UserID:  u.UserID,
		Email:   u.Email,
		Name:    u.Name,
		Address: u.Address,
	}
	if u.Age != nil {
		profile.Age = *u.Age
	}

	return profile
}

// RegisterRequest is the payload accepted by the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      *int   `json:"age,omitempty"`
	Address  string `json:"address"`
}

// Credentials is the payload accepted by the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the view of a user returned to an authenticated caller.
type Profile struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Address string `json:"address"`
}
