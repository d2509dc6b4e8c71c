// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration provides a thin wrapper around golang-migrate for
// running database schema migrations.
//
// # Architecture
//
// This package belongs to the Infrastructure layer. Scripts are embedded in
// the binary (see package data) so the server and listerctl never depend on
// a migrations directory being present on disk.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"

	"github.com/taibuivan/lister/data"
)

// RunPostgres applies all pending UP migrations to a PostgreSQL database.
//
// # Parameters
//   - dsn: A postgres:// URL.
//   - logger: Structured logger for migration events.
func RunPostgres(dsn string, logger *slog.Logger) error {
	source, err := iofs.New(data.Migrations, data.PostgresMigrations)
	if err != nil {
		return fmt.Errorf("migration: failed to open embedded scripts: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, toPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceError, dbError := migrator.Close()
		if sourceError != nil {
			logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
		}
		if dbError != nil {
			logger.Error("migration_db_close_failed", slog.Any("error", dbError))
		}
	}()

	return up(migrator, "postgres", logger)
}

// RunSQLite applies all pending UP migrations to an open SQLite handle.
//
// The handle stays open; closing it remains the caller's job.
func RunSQLite(db *sql.DB, logger *slog.Logger) error {
	source, err := iofs.New(data.Migrations, data.SQLiteMigrations)
	if err != nil {
		return fmt.Errorf("migration: failed to open embedded scripts: %w", err)
	}
	defer source.Close()

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("migration: failed to wrap sqlite handle: %w", err)
	}

	// Closing the migrator would close db, so only the source is released.
	migrator, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}

	return up(migrator, "sqlite", logger)
}

func up(migrator *migrate.Migrate, backend string, logger *slog.Logger) error {
	migrator.Log = &migrateLogger{logger: logger}

	currentVersion, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}

	if isDirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", currentVersion)
	}

	logger.Info("migration_started",
		slog.String("backend", backend),
		slog.Int("current_version", int(currentVersion)),
	)

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date", slog.String("backend", backend))
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	newVersion, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.String("backend", backend),
		slog.Int("from_version", int(currentVersion)),
		slog.Int("to_version", int(newVersion)),
	)

	return nil
}

// toPgx5DSN rewrites postgres:// URLs to the pgx5:// scheme golang-migrate expects.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
