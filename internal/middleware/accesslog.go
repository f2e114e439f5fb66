// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/mediapager/internal/logging"
)

// AccessLog writes one debug entry per request. Server errors are logged at
// warn so they show up under the default level.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		log := logging.Ctx(r.Context())
		event := log.Debug()
		if ww.status >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Str("remote_addr", r.RemoteAddr).
			Int("status", ww.status).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	})
}
