// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := sec.NewTokenService("short", "lister.app", time.Hour)
	assert.Error(t, err)
}

/*
TestTokenService_IssueVerify verifies a freshly issued token resolves to the same identity.
*/
func TestTokenService_IssueVerify(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "lister.app", time.Hour)
	require.NoError(t, err)

	token, issued, err := service.Issue("user-1", "user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, issued.TokenID)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, issued.TokenID, identity.TokenID)
}

/*
TestTokenService_Verify_Rejects covers tampered, foreign and expired tokens.
*/
func TestTokenService_Verify_Rejects(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "lister.app", time.Hour)
	require.NoError(t, err)

	other, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "lister.app", time.Hour)
	require.NoError(t, err)

	foreignIssuer, err := sec.NewTokenService(testSecret, "elsewhere", time.Hour)
	require.NoError(t, err)

	expired, err := sec.NewTokenService(testSecret, "lister.app", -time.Minute)
	require.NoError(t, err)

	good, _, err := service.Issue("user-1", "")
	require.NoError(t, err)

	wrongKey, _, _ := other.Issue("user-1", "")
	wrongIssuer, _, _ := foreignIssuer.Issue("user-1", "")
	stale, _, _ := expired.Issue("user-1", "")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"tampered", good + "x"},
		{"wrong_key", wrongKey},
		{"wrong_issuer", wrongIssuer},
		{"expired", stale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("correct horse", hash))
	assert.False(t, sec.CheckPasswordHash("wrong horse", hash))
}

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, sec.HashToken("abc"), sec.HashToken("abc"))
	assert.NotEqual(t, sec.HashToken("abc"), sec.HashToken("abd"))

	token, err := sec.GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, token, 32)
}
