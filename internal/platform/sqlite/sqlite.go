// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite opens the embedded SQLite database backing STORE_DRIVER=sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	// registers the "sqlite3" database/sql driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/taibuivan/lister/internal/platform/migration"
)

// Memory is the path of a private in-process database, used by tests.
const Memory = ":memory:"

// Open opens (creating if needed) the database at path and migrates it.
//
// # Parameters
//   - ctx: Context for the initial ping.
//   - path: File path, or [Memory].
//   - logger: Structured logger for migration events.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}

	// SQLite serialises writers anyway; one connection also keeps a :memory:
	// database alive and shared for the handle's lifetime.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping failed: %w", err)
	}

	if err := migration.RunSQLite(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func dsn(path string) string {
	if path == Memory || strings.HasPrefix(path, "file:") {
		return path
	}
	return path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
}
