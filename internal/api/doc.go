// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package api exposes the media catalogue over HTTP using the chi router.

Routes:

	GET    /api/v1/health/live              process liveness
	GET    /api/v1/health/ready             store ping and breaker state
	GET    /api/v1/media                    keyset-paginated listing
	POST   /api/v1/media                    create an item
	GET    /api/v1/media/{id}               read an item
	PUT    /api/v1/media/{id}               replace an item
	DELETE /api/v1/media/{id}               delete an item
	POST   /api/v1/admin/cache/invalidate   drop cached pages matching a glob
	GET    /api/v1/admin/performance        monitor report and cache stats
	GET    /metrics                         Prometheus exposition

Listing query parameters:

  - cursor: opaque token from a previous page
  - direction: next (default) or prev
  - limit: page size, clamped to 1..100
  - sort_by: id, title, creator, created_at, updated_at, duration,
    view_count, file_size; unknown names sort by id
  - sort_order: asc or desc (default desc)
  - filters: creator_id, creator, platform, status, search, min_duration,
    max_duration, min_views, max_views, created_after, created_before,
    has_thumbnail, has_video

The listing returns its own body shape (models.MediaListResponse); every
other endpoint uses the models.APIResponse envelope. Errors carry one of the
codes in errors.go.

Middleware order: request ID, real IP, panic recovery, CORS, then per-group
rate limits, security headers, Prometheus metrics and compression.
*/
package api
