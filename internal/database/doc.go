// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

// Package database is the storage layer for the media catalogue.
//
// # Overview
//
// DB wraps a database/sql pool for one of three drivers:
//
//   - duckdb (default): embedded, github.com/duckdb/duckdb-go/v2
//   - postgres: github.com/jackc/pgx/v5/stdlib, "?" placeholders rebound to "$n"
//   - sqlite: github.com/mattn/go-sqlite3
//
// The schema is a single media_items table created on startup. Listing
// reads go through FetchRows and CountRows, which acquire a dedicated
// connection for the statement and release it before returning. Both run
// behind a circuit breaker (sony/gobreaker) so a failing store is rejected
// fast instead of piling up requests.
//
// # Files
//
//   - database.go: lifecycle, driver selection, pool configuration
//   - database_schema.go: per-dialect DDL
//   - rows.go: generic row reads used by the pagination service
//   - breaker.go: circuit breaker wiring and metrics
//   - crud_media.go: catalogue mutations and point reads
//   - seed.go: demo data
//
// # Usage
//
//	db, err := database.New(&cfg.Database, cfg.Breaker)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	stmt, args := query.BuildPage(pq)
//	rows, err := db.FetchRows(ctx, stmt, args...)
package database
