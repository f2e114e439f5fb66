// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/tomtom215/mediapager/internal/database"
	"github.com/tomtom215/mediapager/internal/logging"
	"github.com/tomtom215/mediapager/internal/pagination"
	"github.com/tomtom215/mediapager/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation    = validation.CodeValidation
	CodeNotFound      = "NOT_FOUND"
	CodeDatabase      = "DATABASE_ERROR"
	CodeUnavailable   = "SERVICE_UNAVAILABLE"
	CodeTimeout       = "TIMEOUT"
	CodeInvalidBody   = "INVALID_REQUEST_BODY"
	CodeInternal      = "INTERNAL_ERROR"
	CodeNotReady      = "NOT_READY"
	CodeCacheDisabled = "CACHE_DISABLED"
)

// retryAfterSeconds is advertised while the store breaker is open.
const retryAfterSeconds = 30

// respondStoreError maps errors from the catalogue and listing services to
// HTTP responses.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var storageErr *pagination.StorageError
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Media item not found", nil)
	case errors.Is(err, database.ErrUnavailable):
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		respondError(w, r, http.StatusServiceUnavailable, CodeUnavailable, "Store temporarily unavailable", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, CodeTimeout, "Query timed out", err)
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Msg("Client went away before the query finished")
	case errors.As(err, &storageErr):
		respondError(w, r, http.StatusInternalServerError, CodeDatabase, "Failed to query media catalogue", err)
	default:
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}
