// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

// Package testinfra starts throwaway database containers for integration
// tests using testcontainers-go.
//
// The embedded DuckDB and SQLite stores are covered by the regular unit
// tests. Postgres needs a real server, so its tests live behind the
// integration build tag:
//
//	go test -tags integration ./internal/pagination/...
//
// Tests are skipped when Docker is not reachable.
//
//	func TestPostgresScroll(t *testing.T) {
//	    ctx := context.Background()
//	    testinfra.SkipIfNoDocker(t)
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//	    // open database.New with Driver "postgres" and DSN pg.DSN
//	}
package testinfra
