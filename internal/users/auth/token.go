// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/sec"
	"github.com/taibuivan/lister/internal/platform/validate"
	"github.com/taibuivan/lister/pkg/uuid"
)

// TokenProvider issues signed bearer tokens for stored accounts.
type TokenProvider struct {
	accounts    AccountStore
	revocations RevocationStore
	tokens      *sec.TokenService
	logger      *slog.Logger
	now         func() time.Time
}

func NewTokenProvider(accounts AccountStore, revocations RevocationStore, tokens *sec.TokenService, logger *slog.Logger) *TokenProvider {
	return &TokenProvider{
		accounts:    accounts,
		revocations: revocations,
		tokens:      tokens,
		logger:      logger,
		now:         time.Now,
	}
}

/*
SignUp validates and stores a new account, then signs it in.

Parameters:
  - context: context.Context
  - credentials: Credentials (Username optional)

Returns:
  - *AuthResult: The created user and a session
  - error: ValidationError, ErrEmailTaken
*/
func (provider *TokenProvider) SignUp(context context.Context, credentials Credentials) (*AuthResult, error) {
	if err := checkCredentials(&credentials); err != nil {
		return nil, err
	}
	credentials.Username = strings.TrimSpace(credentials.Username)

	v := &validate.Validator{}
	v.Email(FieldEmail, credentials.Email).
		MinLen(FieldPassword, credentials.Password, constants.MinPasswordLength).
		MaxLen(FieldUsername, credentials.Username, MaxUsernameLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(credentials.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_hash_password_failed: %w", err)
	}

	now := provider.now().UTC()
	user := &User{
		ID:           uuid.New(),
		Email:        credentials.Email,
		Username:     credentials.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Username == "" {
		user.Username = DefaultUsername(user.ID)
	}

	if err := provider.accounts.Create(context, user); err != nil {
		return nil, err
	}

	provider.logger.Info("user_signed_up", slog.String("user_id", user.ID))
	return provider.session(user)
}

func (provider *TokenProvider) SignIn(context context.Context, credentials Credentials) (*AuthResult, error) {
	if err := checkCredentials(&credentials); err != nil {
		return nil, err
	}

	user, err := provider.accounts.FindByEmail(context, credentials.Email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !sec.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		provider.logger.Warn("sign_in_rejected", slog.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	return provider.session(user)
}

// SignOut revokes the token id until the token would have expired anyway.
func (provider *TokenProvider) SignOut(context context.Context, identity *sec.Identity) error {
	ttl := identity.ExpiresAt.Sub(provider.now())
	if ttl <= 0 {
		return nil
	}
	return provider.revocations.Revoke(context, identity.TokenID, ttl)
}

func (provider *TokenProvider) VerifyToken(context context.Context, token string) (*sec.Identity, error) {
	identity, err := provider.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	revoked, err := provider.revocations.IsRevoked(context, identity.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return identity, nil
}

func (provider *TokenProvider) FindUser(context context.Context, userID string) (*User, error) {
	return provider.accounts.FindByID(context, userID)
}

func (provider *TokenProvider) session(user *User) (*AuthResult, error) {
	token, identity, err := provider.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_issue_token_failed: %w", err)
	}

	return &AuthResult{
		User: user,
		Session: &Session{
			AccessToken: token,
			TokenType:   TokenType,
			ExpiresIn:   int(identity.ExpiresAt.Sub(provider.now()).Round(time.Second).Seconds()),
			ExpiresAt:   identity.ExpiresAt,
		},
	}, nil
}
