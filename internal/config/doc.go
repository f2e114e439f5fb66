// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package config provides centralized configuration management for Mediapager.

# Configuration Sources

LoadWithKoanf layers three sources, later ones overriding earlier ones:

 1. Struct defaults from defaultConfig()
 2. An optional YAML file (CONFIG_PATH, or the first of DefaultConfigPaths)
 3. Environment variables listed in envMappings

Environment variables that are not listed are ignored.

# Environment Variables

Database:
  - DB_DRIVER: duckdb, postgres or sqlite (default: duckdb)
  - DB_PATH: file path for duckdb/sqlite, ":memory:" allowed (default: /data/mediapager.duckdb)
  - DB_DSN: Postgres connection string (required for postgres)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS: DuckDB tuning
  - DB_MAX_OPEN_CONNS, DB_QUERY_TIMEOUT, DB_SEED_ITEMS

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT, ENVIRONMENT

Pagination:
  - PAGE_SIZE_DEFAULT (default: 20), PAGE_SIZE_MAX (default: 100, hard limit 100)
  - PAGE_SORT_DEFAULT (default: id), PAGE_ORDER_DEFAULT (default: desc)

Cache:
  - CACHE_ENABLED, CACHE_CAPACITY, CACHE_PAGE_TTL, CACHE_COUNT_TTL

Monitor:
  - MONITOR_CAPACITY, MONITOR_WINDOW, MONITOR_SLOW_QUERY_THRESHOLD

Circuit breaker:
  - BREAKER_MAX_REQUESTS, BREAKER_INTERVAL, BREAKER_TIMEOUT
  - BREAKER_MIN_REQUESTS, BREAKER_FAILURE_RATIO

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatalf("config: %v", err)
	}
	db, err := database.New(&cfg.Database, cfg.Breaker)
*/
package config
