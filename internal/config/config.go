// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package config

import (
	"net"
	"strconv"
	"time"
)

// HardMaxPageSize caps max_page_size regardless of configuration.
const HardMaxPageSize = 100

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig   `koanf:"database"`
	Server     ServerConfig     `koanf:"server"`
	Pagination PaginationConfig `koanf:"pagination"`
	Cache      CacheConfig      `koanf:"cache"`
	Monitor    MonitorConfig    `koanf:"monitor"`
	Breaker    BreakerConfig    `koanf:"breaker"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// DatabaseConfig selects and tunes the catalogue store.
type DatabaseConfig struct {
	Driver       string        `koanf:"driver"`         // duckdb, postgres, sqlite
	Path         string        `koanf:"path"`           // duckdb/sqlite file, or :memory:
	DSN          string        `koanf:"dsn"`            // postgres only
	MaxMemory    string        `koanf:"max_memory"`     // duckdb only
	Threads      int           `koanf:"threads"`        // duckdb only, 0 = NumCPU
	MaxOpenConns int           `koanf:"max_open_conns"` // 0 = NumCPU
	QueryTimeout time.Duration `koanf:"query_timeout"`
	SkipIndexes  bool          `koanf:"skip_indexes"`
	SeedItems    int           `koanf:"seed_items"` // demo rows inserted into an empty catalogue
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// PaginationConfig holds listing defaults.
type PaginationConfig struct {
	DefaultPageSize int    `koanf:"default_page_size"`
	MaxPageSize     int    `koanf:"max_page_size"`
	DefaultSort     string `koanf:"default_sort"`
	DefaultOrder    string `koanf:"default_order"`
}

// CacheConfig sizes the page result cache.
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Capacity int           `koanf:"capacity"`
	PageTTL  time.Duration `koanf:"page_ttl"`
	CountTTL time.Duration `koanf:"count_ttl"`
}

// MonitorConfig sizes the query metric ring buffer.
type MonitorConfig struct {
	Capacity           int           `koanf:"capacity"`
	Window             time.Duration `koanf:"window"`
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// BreakerConfig configures the circuit breaker around store reads.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"` // probes allowed while half-open
	Interval     time.Duration `koanf:"interval"`     // closed-state count reset period
	Timeout      time.Duration `koanf:"timeout"`      // open-state duration
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
