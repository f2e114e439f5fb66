// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package metrics

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pagination Metrics
	PageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_requests_total",
			Help: "Total number of page reads",
		},
		[]string{"sort_field", "direction", "cache"}, // cache: "hit", "miss"
	)

	PageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagination_duration_seconds",
			Help:    "Page read latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"sort_field", "cache"},
	)

	PageRowsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagination_rows_returned",
			Help:    "Number of rows returned per page",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	InvalidCursors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_invalid_cursors_total",
			Help: "Total number of cursor tokens that failed to decode",
		},
	)

	InvalidSortFields = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_invalid_sort_fields_total",
			Help: "Total number of unknown sort fields replaced by the identifier sort",
		},
	)

	PerformanceGrade = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pagination_performance_grade",
			Help: "Latest performance grade rank (0=poor, 1=fair, 2=good, 3=excellent)",
		},
		[]string{"metric"}, // "overall", "latency", "cache_hit_rate", "error_rate"
	)

	// Store Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "dialect"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_query_errors_total",
			Help: "Total number of store query errors",
		},
		[]string{"operation", "dialect", "error_type"},
	)

	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_connections_in_use",
			Help: "Current number of store connections checked out",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_bytes",
			Help: "Estimated size of cached payloads in bytes",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (capacity and TTL expiry)",
		},
		[]string{"cache_type"},
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_invalidations_total",
			Help: "Total number of entries removed by pattern invalidation",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// ErrorType buckets an error into a low-cardinality label value.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "circuit breaker"), strings.Contains(msg, "too many requests"):
		return "circuit_open"
	case strings.Contains(msg, "connection"):
		return "connection"
	case strings.Contains(msg, "syntax"), strings.Contains(msg, "parser"):
		return "syntax"
	default:
		return "other"
	}
}

// RecordDBQuery records a store query metric
func RecordDBQuery(operation, dialect string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, dialect).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, dialect, ErrorType(err)).Inc()
	}
}

// RecordPage records a completed page read.
func RecordPage(sortField, direction string, cacheHit bool, rows int, duration time.Duration) {
	cache := "miss"
	if cacheHit {
		cache = "hit"
	}
	PageRequests.WithLabelValues(sortField, direction, cache).Inc()
	PageDuration.WithLabelValues(sortField, cache).Observe(duration.Seconds())
	PageRowsReturned.Observe(float64(rows))
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// UpdateCacheGauges publishes the current cache occupancy.
func UpdateCacheGauges(cacheType string, entries int, bytes int64) {
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
	CacheBytes.WithLabelValues(cacheType).Set(float64(bytes))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
