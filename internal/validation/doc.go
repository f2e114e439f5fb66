// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

// Package validation checks request structs at the HTTP boundary using
// github.com/go-playground/validator/v10.
//
// A single validator instance is built once and shared. Field names in
// messages come from the `query` or `json` struct tag, so errors name the
// parameter the client actually sent:
//
//	type ListRequest struct {
//	    Limit     int    `query:"limit" validate:"omitempty,min=1"`
//	    SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondError(w, http.StatusBadRequest, verr.ToAPIError())
//	    return
//	}
//
// The custom "glob" tag accepts well-formed doublestar patterns; every
// other tag is a validator built-in.
package validation
