// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one shared instance")
	}
}

type listParams struct {
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	Status    string `json:"status" validate:"omitempty,oneof=draft published"`
	Hidden    string `json:"-" validate:"omitempty,max=3"`
	Plain     string `validate:"omitempty,max=3"`
}

type invalidateParams struct {
	Pattern string `json:"pattern" validate:"required,glob"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
	}{
		{"zero values", &listParams{}},
		{"all set", &listParams{Limit: 100, SortOrder: "asc", Status: "draft"}},
		{"glob", &invalidateParams{Pattern: "*|creator_id=5|*"}},
		{"literal glob", &invalidateParams{Pattern: "media_list|"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() error = %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"limit too high", &listParams{Limit: 101}, "limit", "max", "limit must be at most 100"},
		{"bad order", &listParams{SortOrder: "up"}, "sort_order", "oneof", "sort_order must be one of: asc desc"},
		{"json name", &listParams{Status: "gone"}, "status", "oneof", "status must be one of: draft published"},
		{"go name fallback", &listParams{Plain: "long"}, "Plain", "max", "Plain must be at most 3 characters"},
		{"missing pattern", &invalidateParams{}, "pattern", "required", "pattern is required"},
		{"bad glob", &invalidateParams{Pattern: "[oops"}, "pattern", "glob", "pattern must be a valid glob pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1", len(errs))
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("field=%q tag=%q, want %q/%q", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	apiErr := ValidateStruct(&listParams{Limit: 500}).ToAPIError()
	if apiErr.Code != CodeValidation {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidation)
	}
	if apiErr.Details["field"] != "limit" || apiErr.Details["value"] != 500 {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&listParams{Limit: 500, SortOrder: "sideways"})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "limit must be at most 100") ||
		!strings.Contains(apiErr.Message, "sort_order must be one of") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %#v", apiErr.Details["fields"])
	}
	if verr.Error() != apiErr.Message {
		t.Errorf("Error() = %q, want %q", verr.Error(), apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Message != "Validation failed" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}
