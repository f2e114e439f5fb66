// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"context"
	"time"

	"github.com/tomtom215/mediapager/internal/cache"
	"github.com/tomtom215/mediapager/internal/models"
	"github.com/tomtom215/mediapager/internal/monitor"
	"github.com/tomtom215/mediapager/internal/pagination"
)

// Lister serves listing pages.
type Lister interface {
	Fetch(ctx context.Context, req pagination.Request) (*pagination.Page, error)
}

// Catalog applies media mutations.
type Catalog interface {
	Create(ctx context.Context, item *models.MediaItem) (int64, error)
	Update(ctx context.Context, item *models.MediaItem) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*models.MediaItem, error)
}

// PageCache is the administrative view of the page cache.
type PageCache interface {
	InvalidatePattern(pattern string) (int, error)
	Stats() cache.Stats
}

// Reporter produces performance reports.
type Reporter interface {
	Report(window time.Duration) monitor.Report
}

// HealthChecker reports store health.
type HealthChecker interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_media.go: listing and media CRUD
//   - handlers_admin.go: cache invalidation and performance report
//   - handlers_health.go: liveness and readiness
type Handler struct {
	pages     Lister
	catalog   Catalog
	cache     PageCache
	monitor   Reporter
	db        HealthChecker
	startTime time.Time
}

// NewHandler creates the API handler. pageCache may be nil when caching is
// disabled.
func NewHandler(pages Lister, catalog Catalog, pageCache PageCache, reporter Reporter, db HealthChecker) *Handler {
	return &Handler{
		pages:     pages,
		catalog:   catalog,
		cache:     pageCache,
		monitor:   reporter,
		db:        db,
		startTime: time.Now(),
	}
}
