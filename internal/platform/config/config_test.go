// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/platform/config"
)

/*
TestLoad_Defaults verifies that an empty environment boots in mock mode.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("AUTH_MODE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.StoreMemory, cfg.StoreDriver)
	assert.Equal(t, config.AuthMock, cfg.AuthMode)
	assert.True(t, cfg.IsMock())
	assert.False(t, cfg.UsesDatabase())
	assert.False(t, cfg.UsesRedis())
}

/*
TestConfig_Validate checks backend selections against their requirements.
*/
func TestConfig_Validate(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"memory_mock", config.Config{StoreDriver: config.StoreMemory, AuthMode: config.AuthMock}, false},
		{"sqlite", config.Config{StoreDriver: config.StoreSQLite, AuthMode: config.AuthMock}, false},
		{"redis_without_url", config.Config{StoreDriver: config.StoreRedis, AuthMode: config.AuthMock}, true},
		{"redis_with_url", config.Config{StoreDriver: config.StoreRedis, RedisURL: "redis://localhost:6379", AuthMode: config.AuthMock}, false},
		{"postgres_without_dsn", config.Config{StoreDriver: config.StorePostgres, AuthMode: config.AuthMock}, true},
		{"unknown_driver", config.Config{StoreDriver: "etcd", AuthMode: config.AuthMock}, true},
		{"token_short_secret", config.Config{StoreDriver: config.StoreMemory, AuthMode: config.AuthToken, AuthJWTSecret: "short"}, true},
		{"token_with_secret", config.Config{StoreDriver: config.StoreMemory, AuthMode: config.AuthToken, AuthJWTSecret: secret}, false},
		{"unknown_auth", config.Config{StoreDriver: config.StoreMemory, AuthMode: "oauth"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
