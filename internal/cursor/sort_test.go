// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package cursor

import (
	"errors"
	"testing"
)

func TestNewRegistry_Validation(t *testing.T) {
	t.Parallel()

	id := Field{Name: "id", Column: "id", Kind: KindIdentifier}

	tests := []struct {
		name    string
		fields  []Field
		wantErr bool
	}{
		{"media fields", MediaFields, false},
		{"identifier only", []Field{id}, false},
		{"no identifier", []Field{{Name: "title", Column: "title", Kind: KindOrderedText}}, true},
		{"two identifiers", []Field{id, {Name: "pk", Column: "id", Kind: KindIdentifier}}, true},
		{"identifier on other column", []Field{{Name: "id", Column: "uuid", Kind: KindIdentifier}}, true},
		{"nullable identifier", []Field{{Name: "id", Column: "id", Kind: KindIdentifier, Nullable: true}}, true},
		{"nullable text", []Field{id, {Name: "s", Column: "subtitle", Kind: KindOrderedText, Nullable: true}}, false},
		{"id column with text kind", []Field{id, {Name: "x", Column: "id", Kind: KindOrderedText}}, true},
		{"duplicate name", []Field{id, {Name: "id", Column: "title", Kind: KindOrderedText}}, true},
		{"unsafe column", []Field{id, {Name: "t", Column: "title; DROP", Kind: KindOrderedText}}, true},
		{"empty name", []Field{id, {Column: "title", Kind: KindOrderedText}}, true},
		{"unknown kind", []Field{id, {Name: "t", Column: "title", Kind: Kind(9)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRegistry(tt.fields...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	r := NewMediaRegistry()

	f, err := r.Resolve("created_at")
	if err != nil {
		t.Fatalf("Resolve(created_at) error = %v", err)
	}
	if f.Kind != KindNullableNumeric || f.Column != "created_at" || !f.Nullable {
		t.Errorf("Resolve(created_at) = %+v", f)
	}

	f, err = r.Resolve("title")
	if err != nil || f.Kind != KindOrderedText || f.Nullable {
		t.Errorf("Resolve(title) = %+v, %v", f, err)
	}

	f, err = r.Resolve("")
	if err != nil || f.Kind != KindIdentifier {
		t.Errorf("Resolve(\"\") = %+v, %v", f, err)
	}

	f, err = r.Resolve("password")
	if !errors.Is(err, ErrInvalidSortField) {
		t.Errorf("Resolve(password) error = %v, want ErrInvalidSortField", err)
	}
	if f.Column != IdentifierColumn {
		t.Errorf("Resolve(password) fallback column = %q, want id", f.Column)
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	names := NewMediaRegistry().Names()
	if len(names) != len(MediaFields) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(MediaFields))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
}
