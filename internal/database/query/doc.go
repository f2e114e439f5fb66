// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

// Package query builds the parameterized SQL used to page through the media
// catalogue.
//
// # Overview
//
// WhereBuilder collects conjunctive WHERE fragments and their arguments.
// Filters translates the typed listing filters into those fragments, and the
// keyset helpers add the continuation predicate and ORDER BY clause derived
// from a decoded cursor:
//
//	stmt, args := query.BuildPage(query.PageQuery{
//	    Filters:   filters,
//	    Position:  pos,
//	    Direction: cursor.DirectionNext,
//	    Sort:      cursor.Spec{Field: field, Order: cursor.OrderDesc},
//	    Limit:     20,
//	})
//	// SELECT ... FROM media_items WHERE creator_id = ? AND
//	//   ((created_at, id) < (?, ?) OR created_at IS NULL)
//	//   ORDER BY created_at DESC NULLS LAST, id DESC LIMIT ?
//
// # Keyset Rules
//
// The identifier is always the final ORDER BY key and runs in the same
// direction as the primary sort, so (primary, id) is a strict total order.
// Continuations use row-value comparison rather than a chain of OR clauses.
// NULL primaries sort last in the caller-visible order; backward scans read
// the exact reverse order and therefore see them first. Fields not declared
// Nullable get a plain row-value comparison with no NULL branches.
//
// Text sorts wrap both the column and the bound value in LOWER() so ordering
// and comparison share one collation.
//
// # Placeholders
//
// Statements are written with "?" placeholders. Rebind rewrites them for
// dialects that number their parameters.
//
// # Thread Safety
//
// WhereBuilder is not safe for concurrent use. All other functions are pure.
package query
