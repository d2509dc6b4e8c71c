// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/taibuivan/lister/internal/platform/dberr"
)

// SQLiteStore keeps one row per list in the embedded database. The aggregate
// is stored as a JSON document; user_id and created_at are lifted into
// columns for lookup and ordering.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (store *SQLiteStore) Get(context context.Context, userID string) ([]*List, error) {
	rows, err := store.db.QueryContext(context,
		`SELECT document FROM lists WHERE user_id = ? ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "sqlite_get_lists")
	}
	defer rows.Close()

	lists := make([]*List, 0)
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, dberr.Wrap(err, "sqlite_scan_list")
		}

		list := &List{}
		if err := json.Unmarshal(document, list); err != nil {
			return nil, dberr.Wrap(fmt.Errorf("decode list: %w", err), "sqlite_scan_list")
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "sqlite_get_lists")
	}
	return lists, nil
}

func (store *SQLiteStore) Put(context context.Context, list *List) error {
	document, err := json.Marshal(list)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("encode list: %w", err), "sqlite_put_list")
	}

	_, err = store.db.ExecContext(context, `
		INSERT INTO lists (id, user_id, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		list.ID, list.UserID, string(document), list.CreatedAt.UTC(), list.UpdatedAt.UTC())
	return dberr.Wrap(err, "sqlite_put_list")
}

func (store *SQLiteStore) Delete(context context.Context, listID string) error {
	_, err := store.db.ExecContext(context, `DELETE FROM lists WHERE id = ?`, listID)
	return dberr.Wrap(err, "sqlite_delete_list")
}
