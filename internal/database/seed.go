// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/mediapager/internal/logging"
	"github.com/tomtom215/mediapager/internal/models"
)

var (
	seedPlatforms = []string{"youtube", "tiktok", "instagram", "vimeo"}
	seedStatuses  = []string{models.StatusPublished, models.StatusPublished, models.StatusDraft, models.StatusProcessing, models.StatusArchived}
	seedCreators  = []string{"Ada", "Bastian", "Chiara", "Dmitri", "Esme", "Farid", "Gwen", "Hiro"}
)

// seedEpoch is 2025-01-01T00:00:00Z.
const seedEpoch int64 = 1735689600

// DemoItems builds n deterministic catalogue items. Every seventh item has a
// NULL created_at and every fifth has no thumbnail, so nullable sorts and
// presence filters have something to work on.
func DemoItems(n int) []models.MediaItem {
	items := make([]models.MediaItem, 0, n)
	for i := 0; i < n; i++ {
		creator := i % len(seedCreators)
		item := models.MediaItem{
			CreatorID:   int64(creator + 1),
			CreatorName: seedCreators[creator],
			Platform:    seedPlatforms[i%len(seedPlatforms)],
			Status:      seedStatuses[i%len(seedStatuses)],
			Title:       fmt.Sprintf("%s clip %03d", seedCreators[(i*3)%len(seedCreators)], i+1),
		}

		duration := int64(15 + (i*37)%600)
		views := int64((i * 7919) % 100000)
		size := duration * 250_000
		item.DurationSeconds = &duration
		item.ViewCount = &views
		item.FileSize = &size

		if i%7 != 6 {
			created := seedEpoch + int64(i/2)*3600
			item.CreatedAt = &created
			updated := created + int64(i%5)*600
			item.UpdatedAt = &updated
		}
		if i%5 != 4 {
			thumb := fmt.Sprintf("/thumbs/%04d.jpg", i+1)
			item.ThumbnailPath = &thumb
		}
		if item.Status != models.StatusDraft {
			video := fmt.Sprintf("/videos/%04d.mp4", i+1)
			item.VideoPath = &video
		}
		if i%3 == 0 {
			desc := fmt.Sprintf("Episode %d of the %s series", i/3+1, item.Platform)
			item.Description = &desc
		}
		items = append(items, item)
	}
	return items
}

// SeedDemoData inserts n demo items when the catalogue is empty.
// It returns the number of rows inserted.
func (db *DB) SeedDemoData(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	existing, err := db.CountMediaItems(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		logging.Debug().Int64("existing", existing).Msg("Catalogue not empty, skipping seed")
		return 0, nil
	}

	if err := db.InsertMediaItems(ctx, DemoItems(n)); err != nil {
		return 0, fmt.Errorf("failed to seed demo data: %w", err)
	}
	logging.Info().Int("items", n).Msg("Seeded demo catalogue")
	return n, nil
}
