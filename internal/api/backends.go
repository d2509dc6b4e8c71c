// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/config"
	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/migration"
	pgstore "github.com/taibuivan/lister/internal/platform/postgres"
	redisstore "github.com/taibuivan/lister/internal/platform/redis"
	"github.com/taibuivan/lister/internal/platform/sec"
	"github.com/taibuivan/lister/internal/platform/sqlite"
	"github.com/taibuivan/lister/internal/users/auth"
)

// Backends holds every storage connection and the implementations chosen
// from them. It is built once at startup; nothing else inspects the config
// to decide between mock and real backends.
type Backends struct {
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	SQLite *sql.DB

	Lists      list.Store
	Categories category.Repository
	Provider   auth.Provider

	logger *slog.Logger
}

/*
OpenBackends connects to the configured services and selects implementations.

Description: PostgreSQL is opened (and migrated) whenever DATABASE_URL is set,
Redis whenever REDIS_URL is set, SQLite only for STORE_DRIVER=sqlite.
Categories and accounts live in PostgreSQL when it is available, in memory
otherwise. Token revocations live in Redis when it is available.

Parameters:
  - context: context.Context (Bounds connection attempts)
  - cfg: *config.Config
  - logger: *slog.Logger

Returns:
  - *Backends: Ready to wire; call Close on shutdown
  - error: Connection, migration or configuration failures
*/
func OpenBackends(context context.Context, cfg *config.Config, logger *slog.Logger) (*Backends, error) {
	backends := &Backends{logger: logger}

	if cfg.UsesDatabase() {
		if err := migration.RunPostgres(cfg.DatabaseURL, logger); err != nil {
			return nil, err
		}
		pool, err := pgstore.NewPool(context, cfg.DatabaseURL, cfg.DBMaxConns, logger)
		if err != nil {
			return nil, err
		}
		backends.Pool = pool
	}

	if cfg.UsesRedis() {
		client, err := redisstore.NewClient(context, cfg.RedisURL, logger)
		if err != nil {
			backends.Close()
			return nil, err
		}
		backends.Redis = client
	}

	if cfg.StoreDriver == config.StoreSQLite {
		db, err := sqlite.Open(context, cfg.SQLitePath, logger)
		if err != nil {
			backends.Close()
			return nil, err
		}
		backends.SQLite = db
	}

	switch cfg.StoreDriver {
	case config.StoreMemory:
		backends.Lists = list.NewMemoryStore()
	case config.StoreSQLite:
		backends.Lists = list.NewSQLiteStore(backends.SQLite)
	case config.StoreRedis:
		backends.Lists = list.NewRedisStore(backends.Redis)
	case config.StorePostgres:
		backends.Lists = list.NewPostgresStore(backends.Pool)
	default:
		backends.Close()
		return nil, fmt.Errorf("api: unknown store driver %q", cfg.StoreDriver)
	}

	if backends.Pool != nil {
		backends.Categories = category.NewPostgresRepository(backends.Pool)
	} else {
		backends.Categories = category.NewMemoryRepository(category.Defaults())
	}

	provider, err := backends.provider(cfg)
	if err != nil {
		backends.Close()
		return nil, err
	}
	backends.Provider = provider

	logger.Info("backends_selected",
		slog.String("store", cfg.StoreDriver),
		slog.String("auth", cfg.AuthMode),
		slog.Bool("postgres", backends.Pool != nil),
		slog.Bool("redis", backends.Redis != nil),
	)
	return backends, nil
}

func (backends *Backends) provider(cfg *config.Config) (auth.Provider, error) {
	if cfg.AuthMode == config.AuthMock {
		return auth.NewMockProvider(), nil
	}

	tokens, err := sec.NewTokenService(cfg.AuthJWTSecret, cfg.AuthIssuer, constants.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	var accounts auth.AccountStore = auth.NewMemoryAccountStore()
	if backends.Pool != nil {
		accounts = auth.NewPostgresAccountStore(backends.Pool)
	}

	var revocations auth.RevocationStore = auth.NewMemoryRevocationStore()
	if backends.Redis != nil {
		revocations = auth.NewRedisRevocationStore(backends.Redis)
	}

	return auth.NewTokenProvider(accounts, revocations, tokens, backends.logger), nil
}

// Health returns readiness checkers for the open connections.
func (backends *Backends) Health(cfg *config.Config) HealthDependencies {
	deps := HealthDependencies{StoreDriver: cfg.StoreDriver, AuthMode: cfg.AuthMode}

	if backends.Pool != nil {
		deps.CheckDatabase = func() error { return pgstore.Ping(context.Background(), backends.Pool) }
	}
	if backends.Redis != nil {
		deps.CheckCache = func() error { return redisstore.Ping(context.Background(), backends.Redis) }
	}
	if backends.SQLite != nil {
		deps.CheckSQLite = func() error { return backends.SQLite.PingContext(context.Background()) }
	}
	return deps
}

// Close releases every open connection.
func (backends *Backends) Close() error {
	var errs []error

	if backends.Pool != nil {
		backends.Pool.Close()
	}
	if backends.Redis != nil {
		errs = append(errs, backends.Redis.Close())
	}
	if backends.SQLite != nil {
		errs = append(errs, backends.SQLite.Close())
	}
	return errors.Join(errs...)
}
