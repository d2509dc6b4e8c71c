// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/lister/internal/platform/database/schema"
	"github.com/taibuivan/lister/internal/platform/dberr"
)

// PostgresAccountStore implements [AccountStore] on users.account.
type PostgresAccountStore struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountStore(pool *pgxpool.Pool) *PostgresAccountStore {
	return &PostgresAccountStore{pool: pool}
}

/*
Create persists a new account into the users.account table.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: ErrEmailTaken on a duplicate email, otherwise database errors
*/
func (repository *PostgresAccountStore) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Username,
		schema.UserAccount.Password, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt)

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if dberr.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	return dberr.Wrap(err, "create_account")
}

func (repository *PostgresAccountStore) FindByID(context context.Context, id string) (*User, error) {
	return repository.findOne(context, schema.UserAccount.ID, id)
}

func (repository *PostgresAccountStore) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findOne(context, "lower("+schema.UserAccount.Email+")", email)
}

func (repository *PostgresAccountStore) findOne(context context.Context, column, value string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Username,
		schema.UserAccount.Password, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table, column)

	user := &User{}
	err := repository.pool.QueryRow(context, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_account")
	}
	return user, nil
}
