// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// TokenType is reported in every session payload.
	TokenType = "Bearer"

	// MockTokenTTL is the lifetime advertised for the fixed mock token.
	MockTokenTTL = time.Hour

	// MockUsername is the handle of the mock identity on its own profile.
	MockUsername = "testuser"

	// MaxUsernameLength bounds user-chosen handles.
	MaxUsernameLength = 50
)
