// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/mediapager/internal/database/query"
)

const mediaColumnsDDL = `
	creator_id BIGINT NOT NULL,
	creator_name TEXT NOT NULL,
	platform TEXT NOT NULL,
	status TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	duration_seconds BIGINT,
	view_count BIGINT,
	file_size BIGINT,
	thumbnail_path TEXT,
	video_path TEXT,
	created_at BIGINT,
	updated_at BIGINT`

// schemaStatements returns the DDL for the dialect's identity column style.
func schemaStatements(d query.Dialect) []string {
	switch d {
	case query.DialectPostgres:
		return []string{
			`CREATE TABLE IF NOT EXISTS media_items (
	id BIGSERIAL PRIMARY KEY,` + mediaColumnsDDL + `
)`,
		}
	case query.DialectSQLite:
		return []string{
			`CREATE TABLE IF NOT EXISTS media_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,` + mediaColumnsDDL + `
)`,
		}
	default:
		return []string{
			`CREATE SEQUENCE IF NOT EXISTS media_items_id_seq START 1`,
			`CREATE TABLE IF NOT EXISTS media_items (
	id BIGINT PRIMARY KEY DEFAULT nextval('media_items_id_seq'),` + mediaColumnsDDL + `
)`,
		}
	}
}

// keysetIndexes back each sortable column with a (column, id) index so
// continuation predicates become range scans.
var keysetIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_media_creator ON media_items (creator_id, id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_created ON media_items (created_at, id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_updated ON media_items (updated_at, id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_title ON media_items (LOWER(title), id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_creator_name ON media_items (LOWER(creator_name), id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_duration ON media_items (duration_seconds, id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_views ON media_items (view_count, id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_size ON media_items (file_size, id)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements(db.dialect) {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// createIndexes is a no-op on DuckDB, whose min/max zone maps already prune
// range scans and whose ART indexes slow down updates.
func (db *DB) createIndexes(ctx context.Context) error {
	if db.dialect == query.DialectDuckDB {
		return nil
	}
	for _, stmt := range keysetIndexes {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
