// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/tomtom215/mediapager/internal/models"
	"github.com/tomtom215/mediapager/internal/monitor"
)

type envelope[T any] struct {
	Status string           `json:"status"`
	Data   T                `json:"data"`
	Error  *models.APIError `json:"error"`
}

func TestInvalidateCache(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, 16)

	s.list(t, url.Values{"creator_id": {"1"}})
	s.list(t, url.Values{"creator_id": {"1"}, "limit": {"3"}})
	s.list(t, url.Values{"creator_id": {"2"}})

	rec := s.do(t, http.MethodPost, "/api/v1/admin/cache/invalidate", map[string]string{"pattern": "*|creator_id=1|*"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[envelope[InvalidateCacheResponse]](t, rec)
	// Two pages plus the shared count entry for creator 1.
	if resp.Data.Invalidated != 3 {
		t.Errorf("invalidated = %d, want 3", resp.Data.Invalidated)
	}

	if page := s.list(t, url.Values{"creator_id": {"2"}}); !page.CacheHit {
		t.Error("creator 2 page should survive")
	}
	if page := s.list(t, url.Values{"creator_id": {"1"}}); page.CacheHit {
		t.Error("creator 1 page should be gone")
	}
}

func TestInvalidateCache_BadRequests(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, 0)

	tests := []struct {
		name string
		body interface{}
		code string
	}{
		{"missing pattern", map[string]string{}, CodeValidation},
		{"bad glob", map[string]string{"pattern": "[unclosed"}, CodeValidation},
		{"not json", "pattern=*", CodeInvalidBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/v1/admin/cache/invalidate", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if resp := decode[models.APIResponse](t, rec); resp.Error == nil || resp.Error.Code != tt.code {
				t.Errorf("error = %+v, want %s", resp.Error, tt.code)
			}
		})
	}
}

func TestInvalidateCache_Disabled(t *testing.T) {
	t.Parallel()
	h := NewHandler(stubLister{}, nil, nil, monitor.New(1), nil)
	router := NewRouter(h, noRateLimit()).SetupChi()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/invalidate", strings.NewReader(`{"pattern":"*"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestPerformance(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, 10)

	for i := 0; i < 3; i++ {
		s.list(t, url.Values{"sort_by": {"title"}, "limit": {"4"}})
	}
	s.list(t, url.Values{"sort_by": {"duration"}})

	rec := s.do(t, http.MethodGet, "/api/v1/admin/performance?window=1m", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[envelope[PerformanceResponse]](t, rec)
	report := resp.Data

	if report.Count != 4 || report.WindowSeconds != 60 {
		t.Errorf("count=%d window=%v, want 4 and 60", report.Count, report.WindowSeconds)
	}
	if report.CacheHitRate != 0.5 {
		t.Errorf("cache_hit_rate = %v, want 0.5", report.CacheHitRate)
	}
	if len(report.Operations) != 2 || report.Operations[0].Operation != "media_list:title" {
		t.Errorf("operations = %+v", report.Operations)
	}
	// Two page hits plus the shared count for the second sort.
	if report.Cache == nil || report.Cache.Hits != 3 || report.Cache.Entries == 0 {
		t.Errorf("cache = %+v", report.Cache)
	}
	for _, dim := range []string{monitor.DimensionLatency, monitor.DimensionCacheHit, monitor.DimensionErrors} {
		if _, ok := report.Grade.PerMetric[dim]; !ok {
			t.Errorf("grade missing %s", dim)
		}
	}
	if !strings.Contains(rec.Body.String(), `"overall":"`) {
		t.Errorf("grade levels should serialize as names: %s", rec.Body.String())
	}
}

func TestPerformance_BadWindow(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, 0)

	for _, window := range []string{"soon", "-1m", "48h"} {
		rec := s.do(t, http.MethodGet, "/api/v1/admin/performance?window="+window, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("window=%s status = %d, want 400", window, rec.Code)
		}
	}
}
