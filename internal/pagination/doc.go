// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

// Package pagination serves keyset-paginated media listings and applies
// catalogue mutations with targeted cache invalidation.
//
// # Fetch
//
// Service.Fetch resolves the request against the sort registry, decodes the
// cursor, and then either returns a cached page or reads limit+1 rows from
// the store:
//
//	request -> cache lookup -> (miss) predicate builder -> store
//	        -> derive cursors -> cache store -> monitor record
//
// Degraded inputs never fail a request. An unknown sort field falls back to
// the identifier sort and an undecodable cursor is treated as absent, which
// also forces the direction to next. Store failures are returned as
// *StorageError and are not retried.
//
// The first page also carries a total estimate from a COUNT query run
// alongside the row query (golang.org/x/sync/errgroup) and cached under its
// own key. Identical concurrent misses share one store round trip
// (golang.org/x/sync/singleflight). The shared query is detached from the
// caller that started it, so one canceled caller does not fail the others.
//
// # Cursors
//
// Moving forward, next_cursor is taken from the last row when more rows
// exist and prev_cursor from the first row whenever a cursor was supplied.
// Moving backward the rows are read in reverse, flipped back into display
// order, prev_cursor comes from the first row when more rows exist and
// next_cursor from the last row. An empty page reached from a cursor returns
// that cursor in the opposite slot.
//
// # Catalog
//
// Catalog wraps create, update and delete. After a successful write it
// invalidates every cached page scoped to the affected creator and every
// page not scoped to a creator, leaving other creators' pages intact.
package pagination
