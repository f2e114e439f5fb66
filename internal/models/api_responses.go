// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package models

import (
	"time"
)

// APIResponse is the envelope used by every endpoint except the media
// listing, which returns its own page shape.
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 4}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the error body of a failed request.
//
// Common codes: VALIDATION_ERROR, NOT_FOUND, DATABASE_ERROR, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo is the cursor block of a listing response. Nil cursors
// serialize as null so clients can test for the end of the listing.
type PaginationInfo struct {
	NextCursor     *string `json:"next_cursor"`
	PrevCursor     *string `json:"prev_cursor"`
	HasMore        bool    `json:"has_more"`
	TotalEstimated *int64  `json:"total_estimated,omitempty"`
}

// PagePerformance describes how a listing page was produced.
type PagePerformance struct {
	QueryTimeMS   float64 `json:"query_time_ms"`
	CursorField   string  `json:"cursor_field"`
	ItemsReturned int     `json:"items_returned"`
	Direction     string  `json:"direction"`
	HasMore       bool    `json:"has_more"`
}

// MediaListResponse is the body of GET /api/v1/media.
type MediaListResponse struct {
	Data        []map[string]interface{} `json:"data"`
	Pagination  PaginationInfo           `json:"pagination"`
	Performance PagePerformance          `json:"performance"`
	CacheHit    bool                     `json:"cache_hit"`
}
