// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package pagination

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/mediapager/internal/cache"
	"github.com/tomtom215/mediapager/internal/cursor"
	"github.com/tomtom215/mediapager/internal/database"
	"github.com/tomtom215/mediapager/internal/database/query"
	"github.com/tomtom215/mediapager/internal/models"
)

type catalogFixture struct {
	db      *database.DB
	pages   *cache.Cache
	svc     *Service
	catalog *Catalog
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	db := setupTestDB(t)
	if _, err := db.SeedDemoData(context.Background(), 24); err != nil {
		t.Fatalf("SeedDemoData() error = %v", err)
	}
	pages := cache.New(100, time.Minute, cache.WithName("test"))
	return &catalogFixture{
		db:      db,
		pages:   pages,
		svc:     NewService(db, cursor.NewMediaRegistry(), DefaultConfig(), WithCache(pages)),
		catalog: NewCatalog(db, pages),
	}
}

// warm caches one listing scoped to each creator and one unscoped listing.
func (f *catalogFixture) warm(t *testing.T, creators ...int64) {
	t.Helper()
	reqs := []Request{{Limit: 5}}
	for _, id := range creators {
		reqs = append(reqs, Request{Filters: query.Filters{CreatorID: ptr(id)}, Limit: 5})
	}
	for _, req := range reqs {
		if _, err := f.svc.Fetch(context.Background(), req); err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
	}
}

func (f *catalogFixture) hit(t *testing.T, req Request) bool {
	t.Helper()
	page, err := f.svc.Fetch(context.Background(), req)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	return page.CacheHit
}

func scoped(id int64) Request {
	return Request{Filters: query.Filters{CreatorID: ptr(id)}, Limit: 5}
}

func TestCatalog_CreateInvalidatesCreatorAndUnscoped(t *testing.T) {
	t.Parallel()
	f := newCatalogFixture(t)
	f.warm(t, 1, 2)

	item := &models.MediaItem{
		CreatorID:   1,
		CreatorName: "Ada Lovelace",
		Platform:    "youtube",
		Status:      models.StatusPublished,
		Title:       "Fresh upload",
	}
	id, err := f.catalog.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 25 || item.ID != 25 {
		t.Errorf("id = %d (item %d), want 25", id, item.ID)
	}

	if f.hit(t, scoped(2)) != true {
		t.Error("other creator's page should stay cached")
	}
	if f.hit(t, scoped(1)) {
		t.Error("creator 1 page should be invalidated")
	}
	page, err := f.svc.Fetch(context.Background(), Request{Limit: 5})
	if err != nil {
		t.Fatal(err)
	}
	if page.CacheHit {
		t.Error("unscoped page should be invalidated")
	}
	if got := ids(t, page.Rows); got[0] != 25 {
		t.Errorf("newest id = %d, want the created item", got[0])
	}
	if page.TotalEstimate == nil || *page.TotalEstimate != 25 {
		t.Errorf("total = %v, want 25 after invalidation", page.TotalEstimate)
	}
}

func TestCatalog_UpdateInvalidatesBothCreators(t *testing.T) {
	t.Parallel()
	f := newCatalogFixture(t)
	f.warm(t, 1, 2, 3)

	item, err := f.catalog.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if item.CreatorID != 1 {
		t.Fatalf("seed item 1 creator = %d", item.CreatorID)
	}
	item.CreatorID = 3
	item.Title = "Moved"
	if err := f.catalog.Update(context.Background(), item); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if f.hit(t, scoped(1)) {
		t.Error("previous creator page should be invalidated")
	}
	if f.hit(t, scoped(3)) {
		t.Error("new creator page should be invalidated")
	}
	if !f.hit(t, scoped(2)) {
		t.Error("unrelated creator page should stay cached")
	}
}

func TestCatalog_DeleteInvalidates(t *testing.T) {
	t.Parallel()
	f := newCatalogFixture(t)
	f.warm(t, 2, 4)

	// Seed item 4 belongs to creator 4.
	if err := f.catalog.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if f.hit(t, scoped(4)) {
		t.Error("creator 4 page should be invalidated")
	}
	if !f.hit(t, scoped(2)) {
		t.Error("creator 2 page should stay cached")
	}
	if _, err := f.catalog.Get(context.Background(), 4); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestCatalog_NotFoundPassesThrough(t *testing.T) {
	t.Parallel()
	f := newCatalogFixture(t)
	f.warm(t)

	err := f.catalog.Delete(context.Background(), 9999)
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
	var serr *StorageError
	if errors.As(err, &serr) {
		t.Error("ErrNotFound must not be wrapped in StorageError")
	}

	err = f.catalog.Update(context.Background(), &models.MediaItem{ID: 9999, CreatorID: 1})
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}

	if !f.hit(t, Request{Limit: 5}) {
		t.Error("failed mutations must not invalidate")
	}
}

type failingCatalogStore struct {
	CatalogStore
	err error
}

func (s failingCatalogStore) CreateMediaItem(context.Context, *models.MediaItem) (int64, error) {
	return 0, s.err
}

func TestCatalog_StorageError(t *testing.T) {
	t.Parallel()
	boom := errors.New("constraint violated")
	catalog := NewCatalog(failingCatalogStore{err: boom}, nil)

	_, err := catalog.Create(context.Background(), &models.MediaItem{CreatorID: 1})
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want *StorageError", err)
	}
	if serr.Op != "create media item" || !errors.Is(err, boom) {
		t.Errorf("StorageError = %+v", serr)
	}
}

func TestCatalog_InvalidateWithoutCache(t *testing.T) {
	t.Parallel()
	catalog := NewCatalog(nil, nil)
	if n := catalog.invalidate(context.Background(), 1, 2); n != 0 {
		t.Errorf("invalidate() = %d, want 0", n)
	}
}
