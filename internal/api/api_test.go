// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediapager/internal/cache"
	"github.com/tomtom215/mediapager/internal/config"
	"github.com/tomtom215/mediapager/internal/cursor"
	"github.com/tomtom215/mediapager/internal/database"
	"github.com/tomtom215/mediapager/internal/models"
	"github.com/tomtom215/mediapager/internal/monitor"
	"github.com/tomtom215/mediapager/internal/pagination"
)

type testServer struct {
	handler http.Handler
	db      *database.DB
	pages   *cache.Cache
	monitor *monitor.Monitor
}

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(&config.DatabaseConfig{
		Path:         ":memory:",
		MaxMemory:    "512MB",
		QueryTimeout: 10 * time.Second,
	}, config.BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  1000,
		FailureRatio: 1,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func noRateLimit() *ChiMiddleware {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewChiMiddleware(cfg)
}

func newTestServer(t *testing.T, seed int) *testServer {
	t.Helper()
	db := setupTestDB(t)
	if seed > 0 {
		if _, err := db.SeedDemoData(context.Background(), seed); err != nil {
			t.Fatalf("SeedDemoData() error = %v", err)
		}
	}

	pages := cache.New(100, time.Minute, cache.WithName("api_test"))
	mon := monitor.New(1000)
	svc := pagination.NewService(db, cursor.NewMediaRegistry(), pagination.DefaultConfig(),
		pagination.WithCache(pages), pagination.WithRecorder(mon))
	catalog := pagination.NewCatalog(db, pages)

	h := NewHandler(svc, catalog, pages, mon, db)
	return &testServer{
		handler: NewRouter(h, noRateLimit()).SetupChi(),
		db:      db,
		pages:   pages,
		monitor: mon,
	}
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func (s *testServer) list(t *testing.T, params url.Values) models.MediaListResponse {
	t.Helper()
	rec := s.do(t, http.MethodGet, "/api/v1/media?"+params.Encode(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/media?%s = %d: %s", params.Encode(), rec.Code, rec.Body.String())
	}
	return decode[models.MediaListResponse](t, rec)
}

func itemIDs(resp models.MediaListResponse) []int64 {
	ids := make([]int64, len(resp.Data))
	for i, row := range resp.Data {
		ids[i] = int64(row["id"].(float64))
	}
	return ids
}

func sampleItem(creator int64, title string) *models.MediaItem {
	return &models.MediaItem{
		CreatorID:   creator,
		CreatorName: "Grace Hopper",
		Platform:    "vimeo",
		Status:      models.StatusPublished,
		Title:       title,
	}
}
