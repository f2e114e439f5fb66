// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package models defines the data structures shared by the store, the
pagination engine and the HTTP API.

  - MediaItem: one row of the media_items catalogue table
  - APIResponse, Metadata, APIError: the standard response envelope
  - MediaListResponse, PaginationInfo, PagePerformance: the cursor page
    returned by GET /api/v1/media

Nullable columns are pointers so that a missing value and a zero value
stay distinct through JSON and SQL.
*/
package models
