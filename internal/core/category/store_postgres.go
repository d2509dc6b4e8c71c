// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/lister/internal/platform/database/schema"
	"github.com/taibuivan/lister/internal/platform/dberr"
	"github.com/taibuivan/lister/internal/platform/postgres"
)

// PostgresRepository reads the catalogue from lister.category and lister.subgenre.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]*Category, error) {
	cQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.ListerCategory.ID, schema.ListerCategory.Name, schema.ListerCategory.DisplayName,
		schema.ListerCategory.Description, schema.ListerCategory.Icon,
		schema.ListerCategory.Table, schema.ListerCategory.SortOrder, schema.ListerCategory.ID)

	cRows, err := repository.db.Query(context, cQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer cRows.Close()

	categories := make([]*Category, 0)
	categoryMap := make(map[string]*Category)

	for cRows.Next() {
		c := &Category{SubGenres: make([]SubGenre, 0)}
		if err := cRows.Scan(&c.ID, &c.Name, &c.DisplayName, &c.Description, &c.Icon); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
		categoryMap[c.ID] = c
	}
	if err := cRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	cRows.Close()

	subGenres, err := repository.subGenres(context, "")
	if err != nil {
		return nil, err
	}
	for _, sub := range subGenres {
		if parent, ok := categoryMap[sub.CategoryID]; ok {
			parent.SubGenres = append(parent.SubGenres, sub)
		}
	}

	return categories, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ListerCategory.ID, schema.ListerCategory.Name, schema.ListerCategory.DisplayName,
		schema.ListerCategory.Description, schema.ListerCategory.Icon,
		schema.ListerCategory.Table, schema.ListerCategory.ID)

	c := &Category{}
	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.DisplayName, &c.Description, &c.Icon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_category_by_id")
	}

	c.SubGenres, err = repository.subGenres(context, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// subGenres loads sub-genres of one category, or of all when categoryID is empty.
func (repository *PostgresRepository) subGenres(context context.Context, categoryID string) ([]SubGenre, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE ($1 = '' OR %s = $1) ORDER BY %s ASC, %s ASC`,
		schema.ListerSubGenre.ID, schema.ListerSubGenre.CategoryID, schema.ListerSubGenre.Name,
		schema.ListerSubGenre.DisplayName, schema.ListerSubGenre.Icon,
		schema.ListerSubGenre.Table, schema.ListerSubGenre.CategoryID,
		schema.ListerSubGenre.SortOrder, schema.ListerSubGenre.ID)

	rows, err := repository.db.Query(context, query, categoryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_subgenres")
	}

	subGenres, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SubGenre, error) {
		var sub SubGenre
		err := row.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.DisplayName, &sub.Icon)
		return sub, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_subgenre")
	}
	return subGenres, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, categories []*Category) error {
	cQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		schema.ListerCategory.Table,
		schema.ListerCategory.ID, schema.ListerCategory.Name, schema.ListerCategory.DisplayName,
		schema.ListerCategory.Description, schema.ListerCategory.Icon, schema.ListerCategory.SortOrder,
		schema.ListerCategory.ID,
		schema.ListerCategory.Name, schema.ListerCategory.Name,
		schema.ListerCategory.DisplayName, schema.ListerCategory.DisplayName,
		schema.ListerCategory.Description, schema.ListerCategory.Description,
		schema.ListerCategory.Icon, schema.ListerCategory.Icon,
		schema.ListerCategory.SortOrder, schema.ListerCategory.SortOrder,
	)
	deleteSubs := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ListerSubGenre.Table, schema.ListerSubGenre.CategoryID)
	insertSub := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.ListerSubGenre.Table,
		schema.ListerSubGenre.ID, schema.ListerSubGenre.CategoryID, schema.ListerSubGenre.Name,
		schema.ListerSubGenre.DisplayName, schema.ListerSubGenre.Icon, schema.ListerSubGenre.SortOrder)

	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for order, c := range categories {
			batch.Queue(cQuery, c.ID, c.Name, c.DisplayName, c.Description, c.Icon, order+1)
			batch.Queue(deleteSubs, c.ID)
			for subOrder, sub := range c.SubGenres {
				batch.Queue(insertSub, sub.ID, c.ID, sub.Name, sub.DisplayName, sub.Icon, subOrder+1)
			}
		}
		return tx.SendBatch(context, batch).Close()
	})
	return dberr.Wrap(err, "upsert_categories")
}
