// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"context"
	"net/http"
	"time"
)

// readyTimeout bounds the store ping of the readiness probe.
const readyTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 while the store does not answer a ping or its circuit breaker
// is open.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.db == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeNotReady, "Store not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	breaker := h.db.BreakerState()
	if err := h.db.Ping(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeNotReady, "Store ping failed", err)
		return
	}
	if breaker == "open" {
		respondError(w, r, http.StatusServiceUnavailable, CodeNotReady, "Store circuit breaker is open", nil)
		return
	}

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"ready":           true,
		"database":        "connected",
		"circuit_breaker": breaker,
	}, start)
}
