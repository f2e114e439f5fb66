// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package models

// Media item lifecycle states.
const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusPublished  = "published"
	StatusArchived   = "archived"
)

// MediaItem is one row of the media catalogue.
//
// Nullable columns are pointers. Timestamps are unix seconds; created_at may
// be NULL for items imported without provenance.
type MediaItem struct {
	ID              int64   `json:"id"`
	CreatorID       int64   `json:"creator_id" validate:"required,gt=0"`
	CreatorName     string  `json:"creator_name" validate:"required,max=200"`
	Platform        string  `json:"platform" validate:"required,max=50"`
	Status          string  `json:"status" validate:"required,oneof=draft processing published archived"`
	Title           string  `json:"title" validate:"required,max=500"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	DurationSeconds *int64  `json:"duration_seconds,omitempty" validate:"omitempty,gte=0"`
	ViewCount       *int64  `json:"view_count,omitempty" validate:"omitempty,gte=0"`
	FileSize        *int64  `json:"file_size,omitempty" validate:"omitempty,gte=0"`
	ThumbnailPath   *string `json:"thumbnail_path,omitempty" validate:"omitempty,max=1024"`
	VideoPath       *string `json:"video_path,omitempty" validate:"omitempty,max=1024"`
	CreatedAt       *int64  `json:"created_at,omitempty"`
	UpdatedAt       *int64  `json:"updated_at,omitempty"`
}
