// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"pgx_no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"redis_nil", redis.Nil, apperr.CodeNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperr.CodeNotFound},
		{"unique_violation", &pgconn.PgError{Code: "23505"}, apperr.CodeConflict},
		{"other_pg_error", &pgconn.PgError{Code: "42P01"}, apperr.CodeInternal},
		{"unknown", errors.New("boom"), apperr.CodeInternal},
		{"app_error_passthrough", apperr.NotFound("List"), apperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			assert.True(t, apperr.HasCode(wrapped, tt.wantCode))
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, dberr.IsUniqueViolation(errors.New("boom")))
}

func TestViolatesConstraint(t *testing.T) {
	slot := &pgconn.PgError{Code: "23505", ConstraintName: "uq_list_owner_slot"}
	position := &pgconn.PgError{Code: "23505", ConstraintName: "uq_listitem_position"}

	assert.True(t, dberr.ViolatesConstraint(fmt.Errorf("commit: %w", slot), "uq_list_owner_slot"))
	assert.False(t, dberr.ViolatesConstraint(position, "uq_list_owner_slot"))
	assert.False(t, dberr.ViolatesConstraint(&pgconn.PgError{Code: "23503", ConstraintName: "uq_list_owner_slot"}, "uq_list_owner_slot"))
	assert.False(t, dberr.ViolatesConstraint(errors.New("boom"), "uq_list_owner_slot"))
}
