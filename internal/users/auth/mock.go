// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/sec"
)

// MockProvider accepts any credentials and exactly one bearer token,
// [constants.MockAccessToken], which always resolves to the mock user.
type MockProvider struct {
	now func() time.Time
}

func NewMockProvider() *MockProvider {
	return &MockProvider{now: time.Now}
}

func (provider *MockProvider) SignUp(context context.Context, credentials Credentials) (*AuthResult, error) {
	return provider.SignIn(context, credentials)
}

func (provider *MockProvider) SignIn(_ context.Context, credentials Credentials) (*AuthResult, error) {
	if err := checkCredentials(&credentials); err != nil {
		return nil, err
	}

	now := provider.now().UTC()
	user := &User{
		ID:        constants.MockUserID,
		Email:     credentials.Email,
		Username:  MockUsername,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return &AuthResult{
		User: user,
		Session: &Session{
			AccessToken: constants.MockAccessToken,
			TokenType:   TokenType,
			ExpiresIn:   int(MockTokenTTL.Seconds()),
			ExpiresAt:   now.Add(MockTokenTTL),
		},
	}, nil
}

func (provider *MockProvider) SignOut(context.Context, *sec.Identity) error {
	return nil
}

func (provider *MockProvider) VerifyToken(_ context.Context, token string) (*sec.Identity, error) {
	if token != constants.MockAccessToken {
		return nil, ErrInvalidToken
	}
	return &sec.Identity{
		UserID:    constants.MockUserID,
		Email:     constants.MockUserEmail,
		TokenID:   constants.MockAccessToken,
		ExpiresAt: provider.now().Add(MockTokenTTL),
	}, nil
}

// FindUser knows every id. Ids other than the mock user get a synthesised
// account with a derived username and no email.
func (provider *MockProvider) FindUser(_ context.Context, userID string) (*User, error) {
	now := provider.now().UTC()
	if userID == constants.MockUserID {
		return &User{ID: userID, Email: constants.MockUserEmail, Username: MockUsername, CreatedAt: now, UpdatedAt: now}, nil
	}
	return &User{ID: userID, Username: DefaultUsername(userID), CreatedAt: now, UpdatedAt: now}, nil
}
