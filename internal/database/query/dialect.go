// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package query

import (
	"strconv"
	"strings"
)

// Dialect identifies the SQL flavour of a store.
type Dialect string

const (
	DialectDuckDB   Dialect = "duckdb"
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Valid reports whether d is a supported dialect.
func (d Dialect) Valid() bool {
	switch d {
	case DialectDuckDB, DialectPostgres, DialectSQLite:
		return true
	}
	return false
}

// Rebind rewrites "?" placeholders to "$1", "$2", ... for Postgres.
// Question marks inside single-quoted literals are left alone.
func Rebind(d Dialect, stmt string) string {
	if d != DialectPostgres || !strings.Contains(stmt, "?") {
		return stmt
	}

	var b strings.Builder
	b.Grow(len(stmt) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(stmt); i++ {
		c := stmt[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
