// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/mediapager/internal/models"
	"github.com/tomtom215/mediapager/internal/pagination"
)

// ListMedia serves GET /api/v1/media.
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	req, perrs := parseMediaListRequest(r.URL.Query())
	if apiErr := perrs.apiError(); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := validateRequest(req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	page, err := h.pages.Fetch(r.Context(), req.pageRequest())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, listResponse(page))
}

func listResponse(page *pagination.Page) *models.MediaListResponse {
	data := make([]map[string]interface{}, len(page.Rows))
	for i, row := range page.Rows {
		data[i] = row
	}
	return &models.MediaListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			NextCursor:     page.NextCursor,
			PrevCursor:     page.PrevCursor,
			HasMore:        page.HasMore,
			TotalEstimated: page.TotalEstimate,
		},
		Performance: models.PagePerformance{
			QueryTimeMS:   float64(page.QueryTime.Microseconds()) / 1000,
			CursorField:   page.SortField,
			ItemsReturned: len(page.Rows),
			Direction:     string(page.Direction),
			HasMore:       page.HasMore,
		},
		CacheHit: page.CacheHit,
	}
}

// GetMedia serves GET /api/v1/media/{id}.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "id must be a positive integer", nil)
		return
	}

	item, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, item, start)
}

// CreateMedia serves POST /api/v1/media.
func (h *Handler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var item models.MediaItem
	if !h.decodeItem(w, r, &item) {
		return
	}
	item.ID = 0

	if _, err := h.catalog.Create(r.Context(), &item); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/media/"+strconv.FormatInt(item.ID, 10))
	respondSuccess(w, r, http.StatusCreated, &item, start)
}

// UpdateMedia serves PUT /api/v1/media/{id}. The body replaces every
// writable column; created_at is kept from the stored row.
func (h *Handler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "id must be a positive integer", nil)
		return
	}

	var item models.MediaItem
	if !h.decodeItem(w, r, &item) {
		return
	}
	item.ID = id

	if err := h.catalog.Update(r.Context(), &item); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, &item, start)
}

// DeleteMedia serves DELETE /api/v1/media/{id}.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, CodeValidation, "id must be a positive integer", nil)
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeItem decodes and validates a media item body, writing the error
// response itself when it returns false.
func (h *Handler) decodeItem(w http.ResponseWriter, r *http.Request, item *models.MediaItem) bool {
	if err := decodeJSONBody(w, r, item); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidBody, "Request body must be a single JSON media item", err)
		return false
	}
	if apiErr := validateRequest(item); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return false
	}
	return true
}
