// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package pagination

import (
	"context"
	"errors"
	"strconv"

	"github.com/tomtom215/mediapager/internal/cache"
	"github.com/tomtom215/mediapager/internal/database"
	"github.com/tomtom215/mediapager/internal/database/query"
	"github.com/tomtom215/mediapager/internal/logging"
	"github.com/tomtom215/mediapager/internal/models"
)

// CatalogStore persists media items.
type CatalogStore interface {
	CreateMediaItem(ctx context.Context, item *models.MediaItem) (int64, error)
	UpdateMediaItem(ctx context.Context, item *models.MediaItem) (int64, error)
	DeleteMediaItem(ctx context.Context, id int64) (int64, error)
	GetMediaItem(ctx context.Context, id int64) (*models.MediaItem, error)
}

// Catalog applies media mutations and invalidates the pages they affect.
// database.ErrNotFound is returned unwrapped; other store failures are
// returned as *StorageError.
type Catalog struct {
	store CatalogStore
	cache PageCache
}

// NewCatalog creates a Catalog. pages may be nil when caching is disabled.
func NewCatalog(store CatalogStore, pages PageCache) *Catalog {
	return &Catalog{store: store, cache: pages}
}

// Create inserts item and returns its id.
func (c *Catalog) Create(ctx context.Context, item *models.MediaItem) (int64, error) {
	id, err := c.store.CreateMediaItem(ctx, item)
	if err != nil {
		return 0, storageErr("create media item", err)
	}
	c.invalidate(ctx, item.CreatorID)
	return id, nil
}

// Update replaces item. Pages of both the previous and the new creator are
// invalidated.
func (c *Catalog) Update(ctx context.Context, item *models.MediaItem) error {
	previous, err := c.store.UpdateMediaItem(ctx, item)
	if err != nil {
		return storageErr("update media item", err)
	}
	c.invalidate(ctx, previous, item.CreatorID)
	return nil
}

// Delete removes the item with id.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	creatorID, err := c.store.DeleteMediaItem(ctx, id)
	if err != nil {
		return storageErr("delete media item", err)
	}
	c.invalidate(ctx, creatorID)
	return nil
}

// Get reads the item with id.
func (c *Catalog) Get(ctx context.Context, id int64) (*models.MediaItem, error) {
	item, err := c.store.GetMediaItem(ctx, id)
	if err != nil {
		return nil, storageErr("get media item", err)
	}
	return item, nil
}

func storageErr(op string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// invalidate drops the creator-scoped and unscoped pages. Cache failures are
// logged; the write has already happened.
func (c *Catalog) invalidate(ctx context.Context, creatorIDs ...int64) int {
	if c.cache == nil {
		return 0
	}

	patterns := []string{cache.ScopePattern(query.KeyCreatorID, "")}
	seen := make(map[int64]bool, len(creatorIDs))
	for _, id := range creatorIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		patterns = append(patterns, cache.ScopePattern(query.KeyCreatorID, strconv.FormatInt(id, 10)))
	}

	total := 0
	for _, pattern := range patterns {
		n, err := c.cache.InvalidatePattern(pattern)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("pattern", pattern).Msg("Cache invalidation failed")
			continue
		}
		total += n
	}
	logging.Ctx(ctx).Debug().Ints64("creators", creatorIDs).Int("invalidated", total).Msg("Invalidated cached pages")
	return total
}
