// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # Account Data Access

// AccountStore persists registered accounts. Emails are stored lower-cased
// and are unique.
type AccountStore interface {

	/*
		Create persists a brand-new account.

		Parameters:
		  - context: context.Context
		  - user: *User (PasswordHash already set)

		Returns:
		  - error: ErrEmailTaken, or persistence failures
	*/
	Create(context context.Context, user *User) error

	// FindByID returns the account with the given id, or ErrUserNotFound.
	FindByID(context context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email, or ErrUserNotFound.
	FindByEmail(context context.Context, email string) (*User, error)
}

// # Revocation Data Access

// RevocationStore remembers signed-out token ids until they would expire.
type RevocationStore interface {

	/*
		Revoke marks a token id as signed out.

		Parameters:
		  - context: context.Context
		  - tokenID: string (jti claim)
		  - ttl: time.Duration (Remaining token lifetime)

		Returns:
		  - error: Storage failures
	*/
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether the token id was signed out.
	IsRevoked(context context.Context, tokenID string) (bool, error)
}
