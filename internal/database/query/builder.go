// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package query

import (
	"fmt"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddEqual("platform", "youtube")
//	wb.AddRange("view_count", &minViews, nil)
//	whereClause, args := wb.Build()
//	// platform = ? AND view_count >= ?
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
// Empty clauses are ignored.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	if clause == "" {
		return wb
	}
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddEqual adds "column = ?" when value is non-empty.
func (wb *WhereBuilder) AddEqual(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause(column+" = ?", value)
}

// AddEqualFold adds a case-insensitive equality on a text column.
func (wb *WhereBuilder) AddEqualFold(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause(fmt.Sprintf("LOWER(%s) = LOWER(CAST(? AS TEXT))", column), value)
}

// AddRange adds inclusive lower and upper bounds. Nil bounds are skipped.
//
// Generates:
//   - "column >= ?" if min is non-nil
//   - "column <= ?" if max is non-nil
func (wb *WhereBuilder) AddRange(column string, minValue, maxValue *int64) *WhereBuilder {
	if minValue != nil {
		wb.AddClause(column+" >= ?", *minValue)
	}
	if maxValue != nil {
		wb.AddClause(column+" <= ?", *maxValue)
	}
	return wb
}

// AddPresence adds "column IS NOT NULL" or "column IS NULL". A nil flag is
// skipped.
func (wb *WhereBuilder) AddPresence(column string, present *bool) *WhereBuilder {
	if present == nil {
		return wb
	}
	if *present {
		return wb.AddClause(column + " IS NOT NULL")
	}
	return wb.AddClause(column + " IS NULL")
}

// AddSearch adds a case-insensitive substring match across columns, joined
// with OR. LIKE wildcards in term are matched literally.
func (wb *WhereBuilder) AddSearch(term string, columns ...string) *WhereBuilder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return wb
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	parts := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("LOWER(COALESCE(%s, '')) LIKE ? ESCAPE '\\'", col)
		args[i] = pattern
	}
	return wb.AddClause("("+strings.Join(parts, " OR ")+")", args...)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the WHERE clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Clauses returns a copy of the clauses added so far.
func (wb *WhereBuilder) Clauses() []string {
	out := make([]string, len(wb.clauses))
	copy(out, wb.clauses)
	return out
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}
