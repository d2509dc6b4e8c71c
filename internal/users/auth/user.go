// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements sign-up, sign-in and bearer token verification.

Two providers satisfy [Provider]. The mock provider accepts a single fixed
token and needs no backing services. The token provider issues HS256 JWTs
and keeps accounts and revocations in whichever stores were configured.
The server picks one at startup; nothing downstream knows which.
*/
package auth

import (
	"time"

	"github.com/taibuivan/lister/internal/platform/apperr"
)

// # Domain Entities

// User is a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is the bearer token handed to a client after sign-up or sign-in.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthResult pairs the signed-in user with their session.
type AuthResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

// Credentials carries sign-up and sign-in input. Username is sign-up only.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// DefaultUsername derives the public handle shown for users without one.
func DefaultUsername(userID string) string {
	if len(userID) > 8 {
		userID = userID[:8]
	}
	return "user_" + userID
}

// # Domain Errors

var (
	ErrUserNotFound       = apperr.NotFound("User")
	ErrEmailTaken         = apperr.Conflict("Email is already registered")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid login credentials")
	ErrInvalidToken       = apperr.Unauthorized("Invalid token")
)

// # Field Identifiers

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUsername = "username"
)
