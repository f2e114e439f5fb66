// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package middleware provides the HTTP middleware shared by every route.

Components:

  - RequestID: accepts a sane upstream X-Request-ID or generates a UUID,
    echoes it on the response and stores it in the logging context
  - PrometheusMetrics: request counters and latency histograms labelled by
    the chi route pattern, so path parameters do not explode cardinality
  - AccessLog: one debug line per request with status and duration

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

Handlers read the ID back with GetRequestID or implicitly through
logging.Ctx(r.Context()).
*/
package middleware
