// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/mediapager/internal/config"
	"github.com/tomtom215/mediapager/internal/database/query"
	"github.com/tomtom215/mediapager/internal/logging"
)

const memoryPath = ":memory:"

// DB wraps the catalogue connection pool and provides data access methods
type DB struct {
	conn        *sql.DB
	cfg         *config.DatabaseConfig
	dialect     query.Dialect
	breaker     *gobreaker.CircuitBreaker[interface{}]
	breakerName string
}

// New opens the configured store and creates the schema.
func New(cfg *config.DatabaseConfig, breakerCfg config.BreakerConfig) (*DB, error) {
	dialect := query.Dialect(cfg.Driver)
	if cfg.Driver == "" {
		dialect = query.DialectDuckDB
	}
	if !dialect.Valid() {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	conn, err := open(dialect, cfg)
	if err != nil {
		return nil, err
	}

	db := &DB{
		conn:    conn,
		cfg:     cfg,
		dialect: dialect,
	}
	db.configureConnectionPool()
	db.breakerName = "store-" + string(dialect)
	db.breaker = newBreaker(db.breakerName, breakerCfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.createTables(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if !cfg.SkipIndexes {
		if err := db.createIndexes(ctx); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to create indexes: %w", err)
		}
	}

	logging.Info().
		Str("driver", string(dialect)).
		Str("path", cfg.Path).
		Msg("Catalogue store ready")

	return db, nil
}

func open(dialect query.Dialect, cfg *config.DatabaseConfig) (*sql.DB, error) {
	var (
		driverName string
		dsn        string
	)

	switch dialect {
	case query.DialectDuckDB:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		threads := cfg.Threads
		if threads <= 0 {
			threads = runtime.NumCPU()
		}
		driverName = "duckdb"
		dsn = fmt.Sprintf("%s?access_mode=read_write&threads=%d", cfg.Path, threads)
		if cfg.MaxMemory != "" {
			dsn += "&max_memory=" + cfg.MaxMemory
		}
	case query.DialectSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		driverName = "sqlite3"
		dsn = cfg.Path
		if cfg.Path != memoryPath {
			dsn = "file:" + cfg.Path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
		}
	case query.DialectPostgres:
		driverName = "pgx"
		dsn = cfg.DSN
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}
	return conn, nil
}

// ensureDir creates the parent directory of a database file.
func ensureDir(path string) error {
	if path == "" || path == memoryPath {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}

func (db *DB) configureConnectionPool() {
	maxOpen := db.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
	}
	// Every connection to an in-memory SQLite database sees its own database.
	if db.dialect == query.DialectSQLite && db.cfg.Path == memoryPath {
		maxOpen = 1
	}
	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Conn returns the underlying SQL connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Dialect returns the SQL dialect of the store.
func (db *DB) Dialect() query.Dialect {
	return db.dialect
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// ensureContext applies the configured query timeout when ctx has no deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}

func (db *DB) rebind(stmt string) string {
	return query.Rebind(db.dialect, stmt)
}
