// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API router at /metrics.

# Available Metrics

Pagination:
  - pagination_requests_total: page reads (counter)
    Labels: sort_field, direction, cache
  - pagination_duration_seconds: page read latency (histogram)
    Labels: sort_field, cache
  - pagination_rows_returned: rows per page (histogram)
  - pagination_invalid_cursors_total: tokens that failed to decode (counter)
  - pagination_invalid_sort_fields_total: unknown sort_by values (counter)
  - pagination_performance_grade: latest monitor grade rank, 0=poor..3=excellent (gauge)
    Labels: metric

Store:
  - store_query_duration_seconds: statement latency (histogram)
    Labels: operation, dialect
  - store_query_errors_total: failed statements (counter)
    Labels: operation, dialect, error_type
  - store_connections_in_use: connections checked out of the pool (gauge)

Cache:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counters)
  - cache_invalidations_total: entries removed by pattern (counter)
  - cache_entries, cache_bytes (gauges)
    Labels: cache_type

Circuit breaker:
  - circuit_breaker_state (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total, circuit_breaker_state_transitions_total
  - circuit_breaker_consecutive_failures

HTTP:
  - api_requests_total, api_request_duration_seconds, api_active_requests
  - api_rate_limit_hits_total

# Usage Example

	start := time.Now()
	rows, err := fetch(ctx)
	metrics.RecordDBQuery("fetch_rows", "duckdb", time.Since(start), err)
*/
package metrics
