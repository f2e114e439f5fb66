// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mediapager/internal/cache"
	"github.com/tomtom215/mediapager/internal/logging"
	"github.com/tomtom215/mediapager/internal/monitor"
)

// maxReportWindow bounds the window query parameter of the report.
const maxReportWindow = 24 * time.Hour

// InvalidateCacheResponse is returned by InvalidateCache.
type InvalidateCacheResponse struct {
	Pattern     string `json:"pattern"`
	Invalidated int    `json:"invalidated"`
}

// CacheReport is the cache section of the performance report.
type CacheReport struct {
	cache.Stats
	HitRate float64 `json:"hit_rate"`
}

// PerformanceResponse is returned by Performance.
type PerformanceResponse struct {
	monitor.Report
	Cache *CacheReport `json:"cache,omitempty"`
}

// InvalidateCache serves POST /api/v1/admin/cache/invalidate.
//
// The pattern is a glob over cache keys, for example "*|creator_id=42|*"
// for every page scoped to one creator.
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.cache == nil {
		respondError(w, r, http.StatusConflict, CodeCacheDisabled, "Page cache is disabled", nil)
		return
	}

	var req InvalidateCacheRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidBody, `Request body must be {"pattern": "<glob>"}`, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	n, err := h.cache.InvalidatePattern(req.Pattern)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "pattern must be a valid glob pattern", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("pattern", sanitizeLogValue(req.Pattern)).
		Int("invalidated", n).
		Msg("Cache invalidated")
	respondSuccess(w, r, http.StatusOK, InvalidateCacheResponse{Pattern: req.Pattern, Invalidated: n}, start)
}

// Performance serves GET /api/v1/admin/performance. The optional window
// parameter is a Go duration such as 30s or 15m.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var window time.Duration
	if raw := r.URL.Query().Get("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 || d > maxReportWindow {
			respondAPIError(w, r, http.StatusBadRequest, paramErrors{"window": "must be a positive duration of at most 24h"}.apiError())
			return
		}
		window = d
	}

	resp := PerformanceResponse{Report: h.monitor.Report(window)}
	if h.cache != nil {
		stats := h.cache.Stats()
		resp.Cache = &CacheReport{Stats: stats, HitRate: stats.HitRate()}
	}
	respondSuccess(w, r, http.StatusOK, resp, start)
}
