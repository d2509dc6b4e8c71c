// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/config"
)

func migrateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "migrate",
		Usage:  "Apply pending migrations to the configured PostgreSQL and SQLite databases",
		Action: r.Migrate,
	}
}

func seedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load reference data",
		Commands: []*cli.Command{
			{
				Name:  "categories",
				Usage: "Upsert categories and sub-genres from a TOML catalogue",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Path to the catalogue file (defaults to the built-in catalogue)",
					},
				},
				Action: r.SeedCategories,
			},
		},
	}
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a user's lists as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Aliases:  []string{"u"},
				Usage:    "Owner user id",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "year",
				Usage: "Only export lists for this year",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only export lists in this category",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Export,
	}
}

// Migrate runs the embedded migrations. Opening the backends applies them.
func (r *Runner) Migrate(ctx context.Context, cmd *cli.Command) error {
	if !r.config.UsesDatabase() && r.config.StoreDriver != config.StoreSQLite {
		r.writePlainln("Nothing to migrate: set DATABASE_URL or STORE_DRIVER=sqlite.")
		return nil
	}

	started := time.Now()
	backends, err := r.backends(ctx)
	if err != nil {
		return err
	}
	defer r.close(backends)

	if backends.Pool != nil {
		r.writePlainln("✓ PostgreSQL migrated")
	}
	if backends.SQLite != nil {
		r.writePlainln("✓ SQLite migrated (%s)", r.config.SQLitePath)
	}
	r.logger.Infof("migrations finished in %s", time.Since(started).Round(time.Millisecond))
	return nil
}

// SeedCategories upserts a TOML catalogue into the category repository.
//
// Without DATABASE_URL the repository is in memory, so the run only validates the file.
func (r *Runner) SeedCategories(ctx context.Context, cmd *cli.Command) error {
	categories := category.Defaults()
	if path := cmd.String("file"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open catalogue: %w", err)
		}
		defer file.Close()

		categories, err = category.Decode(file)
		if err != nil {
			return fmt.Errorf("invalid catalogue %s: %w", path, err)
		}
	}

	backends, err := r.backends(ctx)
	if err != nil {
		return err
	}
	defer r.close(backends)

	service := category.NewService(backends.Categories, r.slog())
	count, err := service.Seed(ctx, categories)
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if backends.Pool == nil {
		r.logger.Warn("DATABASE_URL not set; catalogue validated but not persisted")
	}
	r.writePlainln("✓ Seeded %d categories", count)
	return nil
}

// Export writes every list owned by --user to the output as JSON.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.String("user")
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	filter := list.Filter{CategoryID: cmd.String("category")}
	if cmd.IsSet("year") {
		year := int(cmd.Int("year"))
		filter.Year = &year
	}

	backends, err := r.backends(ctx)
	if err != nil {
		return err
	}
	defer r.close(backends)

	categories := category.NewService(backends.Categories, r.slog())
	service := list.NewService(backends.Lists, categories, r.slog())

	lists, err := service.ListLists(ctx, userID, filter)
	if err != nil {
		return fmt.Errorf("failed to load lists: %w", err)
	}

	r.logger.Infof("exporting %d lists for %s", len(lists), userID)
	return r.writeJSON(map[string]any{"user_id": userID, "lists": lists}, cmd.Bool("pretty"))
}
