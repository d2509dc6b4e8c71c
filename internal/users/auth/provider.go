// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"strings"

	"github.com/taibuivan/lister/internal/platform/sec"
	"github.com/taibuivan/lister/internal/platform/validate"
)

// Provider is the narrow authentication contract the HTTP layer and the
// bearer middleware depend on.
type Provider interface {

	/*
		SignUp registers an account and opens a session for it.

		Parameters:
		  - context: context.Context
		  - credentials: Credentials

		Returns:
		  - *AuthResult: The new user and their session
		  - error: ValidationError, ErrEmailTaken
	*/
	SignUp(context context.Context, credentials Credentials) (*AuthResult, error)

	/*
		SignIn checks credentials and opens a session.

		Returns:
		  - *AuthResult: The user and a fresh session
		  - error: ValidationError, ErrInvalidCredentials
	*/
	SignIn(context context.Context, credentials Credentials) (*AuthResult, error)

	// SignOut ends the session the identity was resolved from.
	SignOut(context context.Context, identity *sec.Identity) error

	// VerifyToken resolves a bearer token to its caller, or ErrInvalidToken.
	VerifyToken(context context.Context, token string) (*sec.Identity, error)

	// FindUser returns the account with the given id.
	FindUser(context context.Context, userID string) (*User, error)
}

// checkCredentials normalises the email and rejects missing fields.
func checkCredentials(credentials *Credentials) error {
	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	if credentials.Email == "" || credentials.Password == "" {
		return validate.FieldError(FieldEmail, "Email and password are required")
	}
	return nil
}
