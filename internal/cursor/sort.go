// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package cursor

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// ErrInvalidSortField is returned by Registry.Resolve for names that are not
// declared. The identifier field is returned alongside it.
var ErrInvalidSortField = errors.New("invalid sort field")

// IdentifierColumn is the unique secondary key of every sort.
const IdentifierColumn = "id"

var columnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Field declares one sortable column.
type Field struct {
	Name     string // name accepted in the sort_by parameter
	Column   string // storage column
	Kind     Kind
	Nullable bool // column may hold NULL
}

// Spec is a resolved sort: a declared field plus the caller-visible order.
type Spec struct {
	Field Field
	Order Order
}

// Registry is the static whitelist of sortable fields.
type Registry struct {
	fields   map[string]Field
	fallback Field
}

// NewRegistry validates the declarations and builds a registry.
//
// Exactly one identifier field must be declared and it must map to the id
// column and be NOT NULL. Column names are restricted to lower-case identifiers because they
// are interpolated into SQL.
func NewRegistry(fields ...Field) (*Registry, error) {
	r := &Registry{fields: make(map[string]Field, len(fields))}
	identifiers := 0

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("sort field with column %q has no name", f.Column)
		}
		if !columnPattern.MatchString(f.Column) {
			return nil, fmt.Errorf("sort field %q: invalid column %q", f.Name, f.Column)
		}
		if _, dup := r.fields[f.Name]; dup {
			return nil, fmt.Errorf("sort field %q declared twice", f.Name)
		}
		switch f.Kind {
		case KindIdentifier:
			if f.Column != IdentifierColumn {
				return nil, fmt.Errorf("sort field %q: identifier kind must use column %q", f.Name, IdentifierColumn)
			}
			if f.Nullable {
				return nil, fmt.Errorf("sort field %q: identifier cannot be nullable", f.Name)
			}
			identifiers++
			r.fallback = f
		case KindOrderedText, KindNullableNumeric:
			if f.Column == IdentifierColumn {
				return nil, fmt.Errorf("sort field %q: column %q must use identifier kind", f.Name, IdentifierColumn)
			}
		default:
			return nil, fmt.Errorf("sort field %q: unknown kind %d", f.Name, f.Kind)
		}
		r.fields[f.Name] = f
	}

	if identifiers != 1 {
		return nil, fmt.Errorf("exactly one identifier sort field required, got %d", identifiers)
	}
	return r, nil
}

// MediaFields are the sortable columns of the media catalogue.
var MediaFields = []Field{
	{Name: "id", Column: "id", Kind: KindIdentifier},
	{Name: "title", Column: "title", Kind: KindOrderedText},
	{Name: "creator", Column: "creator_name", Kind: KindOrderedText},
	{Name: "created_at", Column: "created_at", Kind: KindNullableNumeric, Nullable: true},
	{Name: "updated_at", Column: "updated_at", Kind: KindNullableNumeric, Nullable: true},
	{Name: "duration", Column: "duration_seconds", Kind: KindNullableNumeric, Nullable: true},
	{Name: "view_count", Column: "view_count", Kind: KindNullableNumeric, Nullable: true},
	{Name: "file_size", Column: "file_size", Kind: KindNullableNumeric, Nullable: true},
}

// NewMediaRegistry returns the registry for MediaFields.
func NewMediaRegistry() *Registry {
	r, err := NewRegistry(MediaFields...)
	if err != nil {
		panic(fmt.Sprintf("media sort registry: %v", err))
	}
	return r
}

// Resolve looks up a sort field by name. An empty name resolves to the
// identifier field without error.
func (r *Registry) Resolve(name string) (Field, error) {
	if name == "" {
		return r.fallback, nil
	}
	if f, ok := r.fields[name]; ok {
		return f, nil
	}
	return r.fallback, fmt.Errorf("%w: %q", ErrInvalidSortField, name)
}

// Identifier returns the identifier field.
func (r *Registry) Identifier() Field {
	return r.fallback
}

// Names returns the declared sort names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
