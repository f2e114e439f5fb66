// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/mediapager/internal/cursor"
	"github.com/tomtom215/mediapager/internal/database/query"
	"github.com/tomtom215/mediapager/internal/models"
	"github.com/tomtom215/mediapager/internal/pagination"
)

// MediaListRequest holds the parsed listing query parameters.
//
// Limit, direction, sort_by and sort_order never fail: out-of-range or
// unknown values fall back to defaults in the pagination service. Filters
// are validated because silently dropping one would widen the listing.
type MediaListRequest struct {
	Cursor    string `query:"cursor" validate:"omitempty,max=512"`
	Direction string `query:"direction"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sort_by" validate:"omitempty,max=64"`
	SortOrder string `query:"sort_order"`

	CreatorID     *int64 `query:"creator_id" validate:"omitempty,gt=0"`
	Creator       string `query:"creator" validate:"omitempty,max=200"`
	Platform      string `query:"platform" validate:"omitempty,max=50"`
	Status        string `query:"status" validate:"omitempty,oneof=draft processing published archived"`
	Search        string `query:"search" validate:"omitempty,max=200"`
	MinDuration   *int64 `query:"min_duration" validate:"omitempty,gte=0"`
	MaxDuration   *int64 `query:"max_duration" validate:"omitempty,gte=0"`
	MinViews      *int64 `query:"min_views" validate:"omitempty,gte=0"`
	MaxViews      *int64 `query:"max_views" validate:"omitempty,gte=0"`
	CreatedAfter  *int64 `query:"created_after"`
	CreatedBefore *int64 `query:"created_before"`
	HasThumbnail  *bool  `query:"has_thumbnail"`
	HasVideo      *bool  `query:"has_video"`
}

// InvalidateCacheRequest is the body of POST /api/v1/admin/cache/invalidate.
type InvalidateCacheRequest struct {
	Pattern string `json:"pattern" validate:"required,max=1024,glob"`
}

// paramErrors collects query parameters that failed to parse.
type paramErrors map[string]interface{}

// parseMediaListRequest reads the listing parameters from q. The returned
// paramErrors is empty when every present parameter parsed.
func parseMediaListRequest(q url.Values) (*MediaListRequest, paramErrors) {
	errs := paramErrors{}
	req := &MediaListRequest{
		Cursor:    q.Get("cursor"),
		Direction: q.Get("direction"),
		SortBy:    strings.TrimSpace(q.Get("sort_by")),
		SortOrder: q.Get("sort_order"),
		Creator:   strings.TrimSpace(q.Get("creator")),
		Platform:  strings.TrimSpace(q.Get("platform")),
		Status:    strings.TrimSpace(q.Get("status")),
		Search:    strings.TrimSpace(q.Get("search")),
	}

	// Unparseable limits use the default page size like out-of-range ones.
	if n, err := strconv.Atoi(strings.TrimSpace(q.Get("limit"))); err == nil {
		req.Limit = n
	}

	req.CreatorID = errs.int64Param(q, query.KeyCreatorID)
	req.MinDuration = errs.int64Param(q, query.KeyMinDuration)
	req.MaxDuration = errs.int64Param(q, query.KeyMaxDuration)
	req.MinViews = errs.int64Param(q, query.KeyMinViews)
	req.MaxViews = errs.int64Param(q, query.KeyMaxViews)
	req.CreatedAfter = errs.timeParam(q, query.KeyCreatedAfter)
	req.CreatedBefore = errs.timeParam(q, query.KeyCreatedBefore)
	req.HasThumbnail = errs.boolParam(q, query.KeyHasThumbnail)
	req.HasVideo = errs.boolParam(q, query.KeyHasVideo)

	errs.checkRange(query.KeyMinDuration, req.MinDuration, req.MaxDuration)
	errs.checkRange(query.KeyMinViews, req.MinViews, req.MaxViews)
	errs.checkRange(query.KeyCreatedAfter, req.CreatedAfter, req.CreatedBefore)
	return req, errs
}

func (e paramErrors) int64Param(q url.Values, key string) *int64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		e[key] = "must be an integer"
		return nil
	}
	return &n
}

// timeParam accepts unix seconds or RFC 3339.
func (e paramErrors) timeParam(q url.Values, key string) *int64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &n
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		e[key] = "must be unix seconds or RFC 3339"
		return nil
	}
	n := t.Unix()
	return &n
}

func (e paramErrors) boolParam(q url.Values, key string) *bool {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		e[key] = "must be true or false"
		return nil
	}
	return &b
}

func (e paramErrors) checkRange(key string, lo, hi *int64) {
	if lo != nil && hi != nil && *lo > *hi {
		e[key] = fmt.Sprintf("must not exceed the upper bound (%d > %d)", *lo, *hi)
	}
}

func (e paramErrors) apiError() *models.APIError {
	if len(e) == 0 {
		return nil
	}
	return &models.APIError{
		Code:    CodeValidation,
		Message: "Invalid query parameters",
		Details: map[string]interface{}(e),
	}
}

// filters maps the request onto the typed listing filters.
func (m *MediaListRequest) filters() query.Filters {
	return query.Filters{
		CreatorID:     m.CreatorID,
		Creator:       m.Creator,
		Platform:      m.Platform,
		Status:        m.Status,
		Search:        m.Search,
		MinDuration:   m.MinDuration,
		MaxDuration:   m.MaxDuration,
		MinViews:      m.MinViews,
		MaxViews:      m.MaxViews,
		CreatedAfter:  m.CreatedAfter,
		CreatedBefore: m.CreatedBefore,
		HasThumbnail:  m.HasThumbnail,
		HasVideo:      m.HasVideo,
	}
}

// pageRequest converts the parameters into a pagination request.
func (m *MediaListRequest) pageRequest() pagination.Request {
	req := pagination.Request{
		Filters:   m.filters(),
		Cursor:    m.Cursor,
		Direction: cursor.ParseDirection(m.Direction),
		Limit:     m.Limit,
		SortBy:    m.SortBy,
	}
	if strings.TrimSpace(m.SortOrder) != "" {
		req.SortOrder = cursor.ParseOrder(m.SortOrder)
	}
	return req
}
