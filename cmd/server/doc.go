// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Command server runs the mediapager HTTP API.

Startup order:

 1. Configuration: koanf v2 (defaults, then config.yaml, then environment)
 2. Logging: zerolog, level and format from LOG_LEVEL / LOG_FORMAT
 3. Store: DuckDB by default, or Postgres / SQLite via DB_DRIVER
 4. Optional demo seeding (DB_SEED_ITEMS)
 5. Performance monitor, page cache (CACHE_ENABLED) and pagination service
 6. chi router on the API layer of the supervisor tree

	Root ("mediapager")
	├── telemetry-layer
	│   └── performance-grader
	└── api-layer
	    └── http-server

SIGINT and SIGTERM cancel the tree; the HTTP server drains in-flight
requests for up to HTTP_SHUTDOWN_TIMEOUT before the store is closed.

Example:

	DB_SEED_ITEMS=5000 LOG_FORMAT=console ./mediapager
	curl 'localhost:8080/api/v1/media?sort_by=title&sort_order=asc&limit=20'
*/
package main
