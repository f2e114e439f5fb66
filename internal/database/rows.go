// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/mediapager/internal/metrics"
)

// Row is one result row keyed by column name. Integers are int64, text is
// string and SQL NULL is nil regardless of driver.
type Row map[string]any

// FetchRows runs a SELECT on a dedicated connection and returns every row.
// Placeholders are written as "?" and rebound for the store's dialect.
func (db *DB) FetchRows(ctx context.Context, stmt string, args ...interface{}) ([]Row, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	result, err := db.guard(func() (interface{}, error) {
		return db.fetchRows(ctx, stmt, args)
	})
	metrics.RecordDBQuery("fetch_rows", string(db.dialect), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	rows, ok := result.([]Row)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return rows, nil
}

func (db *DB) fetchRows(ctx context.Context, stmt string, args []interface{}) ([]Row, error) {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	metrics.DBConnectionsInUse.Inc()
	defer func() {
		closeWithLog(conn, "connection")
		metrics.DBConnectionsInUse.Dec()
	}()

	rows, err := conn.QueryContext(ctx, db.rebind(stmt), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer closeQuietly(rows)

	return scanRows(rows)
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	out := make([]Row, 0, 32)
	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalize(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

// normalize maps driver-specific scan types onto the Row contract.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	default:
		return v
	}
}

// CountRows runs a single-value COUNT statement.
func (db *DB) CountRows(ctx context.Context, stmt string, args ...interface{}) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	result, err := db.guard(func() (interface{}, error) {
		var n int64
		if err := db.conn.QueryRowContext(ctx, db.rebind(stmt), args...).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
		return n, nil
	})
	metrics.RecordDBQuery("count_rows", string(db.dialect), time.Since(start), err)
	if err != nil {
		return 0, err
	}
	n, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return n, nil
}
