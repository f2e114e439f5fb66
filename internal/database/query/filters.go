// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package query

import (
	"strconv"
)

// MediaTable is the catalogue table paged by this package.
const MediaTable = "media_items"

// MediaColumns is the projection returned for every listing row.
var MediaColumns = []string{
	"id",
	"creator_id",
	"creator_name",
	"platform",
	"status",
	"title",
	"description",
	"duration_seconds",
	"view_count",
	"file_size",
	"thumbnail_path",
	"video_path",
	"created_at",
	"updated_at",
}

// Filter keys used in cache keys and invalidation patterns.
const (
	KeyCreatorID     = "creator_id"
	KeyCreator       = "creator"
	KeyPlatform      = "platform"
	KeyStatus        = "status"
	KeySearch        = "search"
	KeyMinDuration   = "min_duration"
	KeyMaxDuration   = "max_duration"
	KeyMinViews      = "min_views"
	KeyMaxViews      = "max_views"
	KeyCreatedAfter  = "created_after"
	KeyCreatedBefore = "created_before"
	KeyHasThumbnail  = "has_thumbnail"
	KeyHasVideo      = "has_video"
)

// Filters are the typed listing filters. Zero values mean "not filtered".
// Timestamps are unix seconds.
type Filters struct {
	CreatorID     *int64
	Creator       string
	Platform      string
	Status        string
	Search        string
	MinDuration   *int64
	MaxDuration   *int64
	MinViews      *int64
	MaxViews      *int64
	CreatedAfter  *int64
	CreatedBefore *int64
	HasThumbnail  *bool
	HasVideo      *bool
}

// Apply adds one predicate per set filter to wb.
func (f Filters) Apply(wb *WhereBuilder) *WhereBuilder {
	if f.CreatorID != nil {
		wb.AddClause("creator_id = ?", *f.CreatorID)
	}
	wb.AddEqualFold("creator_name", f.Creator)
	wb.AddEqual("platform", f.Platform)
	wb.AddEqual("status", f.Status)
	wb.AddSearch(f.Search, "title", "description", "creator_name")
	wb.AddRange("duration_seconds", f.MinDuration, f.MaxDuration)
	wb.AddRange("view_count", f.MinViews, f.MaxViews)
	wb.AddRange("created_at", f.CreatedAfter, f.CreatedBefore)
	wb.AddPresence("thumbnail_path", f.HasThumbnail)
	wb.AddPresence("video_path", f.HasVideo)
	return wb
}

// Count returns the number of predicates the filters produce.
func (f Filters) Count() int {
	return f.Apply(NewWhereBuilder()).Count()
}

// Pairs returns the canonical key/value form of the filters for cache keys.
// creator_id is always present, empty when unscoped, so invalidation can
// target both scoped and unscoped entries.
func (f Filters) Pairs() map[string]string {
	pairs := map[string]string{KeyCreatorID: ""}
	if f.CreatorID != nil {
		pairs[KeyCreatorID] = strconv.FormatInt(*f.CreatorID, 10)
	}
	putString(pairs, KeyCreator, f.Creator)
	putString(pairs, KeyPlatform, f.Platform)
	putString(pairs, KeyStatus, f.Status)
	putString(pairs, KeySearch, f.Search)
	putInt(pairs, KeyMinDuration, f.MinDuration)
	putInt(pairs, KeyMaxDuration, f.MaxDuration)
	putInt(pairs, KeyMinViews, f.MinViews)
	putInt(pairs, KeyMaxViews, f.MaxViews)
	putInt(pairs, KeyCreatedAfter, f.CreatedAfter)
	putInt(pairs, KeyCreatedBefore, f.CreatedBefore)
	putBool(pairs, KeyHasThumbnail, f.HasThumbnail)
	putBool(pairs, KeyHasVideo, f.HasVideo)
	return pairs
}

func putString(m map[string]string, k, v string) {
	if v != "" {
		m[k] = v
	}
}

func putInt(m map[string]string, k string, v *int64) {
	if v != nil {
		m[k] = strconv.FormatInt(*v, 10)
	}
}

func putBool(m map[string]string, k string, v *bool) {
	if v != nil {
		m[k] = strconv.FormatBool(*v)
	}
}

// Base is the filter-only part of a listing query.
type Base struct {
	Fields     []string
	Source     string
	Conditions []string
	Args       []interface{}
}

// BaseQuery returns the projection, source table and filter predicates.
func BaseQuery(f Filters) Base {
	wb := f.Apply(NewWhereBuilder())
	_, args := wb.Build()
	return Base{
		Fields:     MediaColumns,
		Source:     MediaTable,
		Conditions: wb.Clauses(),
		Args:       args,
	}
}
