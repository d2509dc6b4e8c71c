// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package data embeds the SQL migrations shipped with the binary.
package data

import "embed"

// Migrations holds one directory of numbered up/down scripts per SQL backend.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS

const (
	PostgresMigrations = "migrations/postgres"
	SQLiteMigrations   = "migrations/sqlite"
)
