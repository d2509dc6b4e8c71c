// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/lister/internal/platform/apperr"
)

// SQLSTATE codes we translate explicitly.
const (
	pgUniqueViolation = "23505"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a storage error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Errors that already are an [apperr.AppError] pass through untouched.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.As(err) != nil {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) || errors.Is(err, redis.Nil) {
		return ErrNotFound
	}

	// 2. Unique violations become conflicts
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgUniqueViolation {
		return apperr.Conflict("Resource already exists")
	}

	var sqliteError sqlite3.Error
	if errors.As(err, &sqliteError) && sqliteError.ExtendedCode == sqlite3.ErrConstraintUnique {
		return apperr.Conflict("Resource already exists")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a unique-constraint failure from
// any supported driver.
func IsUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code == pgUniqueViolation
	}
	var sqliteError sqlite3.Error
	if errors.As(err, &sqliteError) {
		return sqliteError.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// ViolatesConstraint reports whether err is a PostgreSQL unique violation of
// the named constraint or unique index.
func ViolatesConstraint(err error, constraint string) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) &&
		pgError.Code == pgUniqueViolation &&
		pgError.ConstraintName == constraint
}
