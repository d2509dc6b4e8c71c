// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Nothing is required: with an empty environment the server boots in mock mode
(in-memory lists, fixed mock bearer token). Backends are chosen once here and
injected; no handler re-checks what is configured.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Backend Selectors

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"

	AuthMock  = "mock"
	AuthToken = "token"
)

// # Configuration Schema

// Config holds all runtime configuration for the Lister API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StoreDriver selects the list persistence backend.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`

	// Embedded SQLite file used when StoreDriver is "sqlite".
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./lister.db"`

	// Key-Value store (Redis)
	RedisURL string `env:"REDIS_URL"`

	// AuthMode selects the bearer token provider.
	AuthMode      string `env:"AUTH_MODE"       envDefault:"mock"`
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`
	AuthIssuer    string `env:"AUTH_ISSUER"     envDefault:"lister.app"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://*.lister.app"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and checks that
// the selected backends have what they need.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports inconsistent backend selections.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: STORE_DRIVER=redis requires REDIS_URL")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: STORE_DRIVER=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.AuthMode {
	case AuthMock:
	case AuthToken:
		if len(c.AuthJWTSecret) < 32 {
			return fmt.Errorf("config: AUTH_MODE=token requires AUTH_JWT_SECRET of at least 32 bytes")
		}
	default:
		return fmt.Errorf("config: unknown AUTH_MODE %q", c.AuthMode)
	}

	return nil
}

// UsesDatabase reports whether a PostgreSQL connection should be opened.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// UsesRedis reports whether a Redis connection should be opened.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}

// IsMock reports whether both storage and auth run without external services.
func (c *Config) IsMock() bool {
	return c.StoreDriver == StoreMemory && c.AuthMode == AuthMock
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
