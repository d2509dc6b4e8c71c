// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/lister/internal/platform/database/schema"
	"github.com/taibuivan/lister/internal/platform/dberr"
	"github.com/taibuivan/lister/internal/platform/postgres"
	"github.com/taibuivan/lister/pkg/slice"
)

// PostgresStore keeps lists in lister.list and their items in lister.listitem.
// The database itself enforces one list per slot.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) Get(context context.Context, userID string) ([]*List, error) {
	listQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, COALESCE(%s, ''), %s, COALESCE(%s, ''), %s, %s
		FROM %s WHERE %s = $1
		ORDER BY %s ASC, %s ASC`,
		schema.ListerList.ID, schema.ListerList.UserID, schema.ListerList.CategoryID,
		schema.ListerList.SubGenreID, schema.ListerList.Year, schema.ListerList.Title,
		schema.ListerList.CreatedAt, schema.ListerList.UpdatedAt,
		schema.ListerList.Table, schema.ListerList.UserID,
		schema.ListerList.CreatedAt, schema.ListerList.ID,
	)

	rows, err := store.db.Query(context, listQuery, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_user_lists")
	}

	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*List, error) {
		l := &List{Items: make([]Item, 0)}
		err := row.Scan(&l.ID, &l.UserID, &l.CategoryID, &l.SubGenreID, &l.Year, &l.Title, &l.CreatedAt, &l.UpdatedAt)
		return l, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_list")
	}
	if len(lists) == 0 {
		return lists, nil
	}

	listIDs := slice.Map(lists, func(l *List) string { return l.ID })
	byID := slice.Index(lists, func(l *List) string { return l.ID })

	itemQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, %s, %s
		FROM %s WHERE %s = ANY($1)
		ORDER BY %s ASC, %s ASC`,
		schema.ListerListItem.ID, schema.ListerListItem.ListID, schema.ListerListItem.Title,
		schema.ListerListItem.Description, schema.ListerListItem.ImageURL, schema.ListerListItem.Position,
		schema.ListerListItem.CreatedAt, schema.ListerListItem.UpdatedAt,
		schema.ListerListItem.Table, schema.ListerListItem.ListID,
		schema.ListerListItem.ListID, schema.ListerListItem.Position,
	)

	itemRows, err := store.db.Query(context, itemQuery, listIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_items")
	}

	items, err := pgx.CollectRows(itemRows, func(row pgx.CollectableRow) (Item, error) {
		var it Item
		err := row.Scan(&it.ID, &it.ListID, &it.Title, &it.Description, &it.ImageURL, &it.Position, &it.CreatedAt, &it.UpdatedAt)
		return it, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_list_item")
	}

	for _, it := range items {
		if parent, ok := byID[it.ListID]; ok {
			parent.Items = append(parent.Items, it)
		}
	}

	return lists, nil
}

func (store *PostgresStore) Put(context context.Context, list *List) error {
	upsertList := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		schema.ListerList.Table,
		schema.ListerList.ID, schema.ListerList.UserID, schema.ListerList.CategoryID,
		schema.ListerList.SubGenreID, schema.ListerList.Year, schema.ListerList.Title,
		schema.ListerList.CreatedAt, schema.ListerList.UpdatedAt,
		schema.ListerList.ID,
		schema.ListerList.UserID, schema.ListerList.UserID,
		schema.ListerList.CategoryID, schema.ListerList.CategoryID,
		schema.ListerList.SubGenreID, schema.ListerList.SubGenreID,
		schema.ListerList.Year, schema.ListerList.Year,
		schema.ListerList.Title, schema.ListerList.Title,
		schema.ListerList.UpdatedAt, schema.ListerList.UpdatedAt,
	)
	deleteItems := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ListerListItem.Table, schema.ListerListItem.ListID)
	insertItem := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`,
		schema.ListerListItem.Table,
		schema.ListerListItem.ID, schema.ListerListItem.ListID, schema.ListerListItem.Title,
		schema.ListerListItem.Description, schema.ListerListItem.ImageURL, schema.ListerListItem.Position,
		schema.ListerListItem.CreatedAt, schema.ListerListItem.UpdatedAt,
	)

	err := postgres.InTx(context, store.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(upsertList, list.ID, list.UserID, list.CategoryID, list.SubGenreID,
			list.Year, list.Title, list.CreatedAt, list.UpdatedAt)
		batch.Queue(deleteItems, list.ID)
		for _, it := range list.Items {
			batch.Queue(insertItem, it.ID, list.ID, it.Title, it.Description, it.ImageURL,
				it.Position, it.CreatedAt, it.UpdatedAt)
		}
		return tx.SendBatch(context, batch).Close()
	})
	return putError(err)
}

// slotConstraint is the unique index over (userid, categoryid, subgenreid, year).
const slotConstraint = "uq_list_owner_slot"

// putError maps a failed Put. Only the slot index means a duplicate list;
// item key and position clashes are storage faults.
func putError(err error) error {
	if dberr.ViolatesConstraint(err, slotConstraint) {
		return ErrDuplicateList
	}
	return dberr.Wrap(err, "put_list")
}

func (store *PostgresStore) Delete(context context.Context, listID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ListerList.Table, schema.ListerList.ID)
	_, err := store.db.Exec(context, query, listID)
	return dberr.Wrap(err, "delete_list")
}
