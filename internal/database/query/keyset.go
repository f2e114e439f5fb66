// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package query

import (
	"fmt"
	"strings"

	"github.com/tomtom215/mediapager/internal/cursor"
)

// SortExpr is the ORDER BY expression for a sort field.
func SortExpr(f cursor.Field) string {
	if f.Kind == cursor.KindOrderedText {
		return "LOWER(" + f.Column + ")"
	}
	return f.Column
}

func valueExpr(f cursor.Field) string {
	if f.Kind == cursor.KindOrderedText {
		return "LOWER(CAST(? AS TEXT))"
	}
	return "?"
}

func comparison(scan cursor.Order) string {
	if scan == cursor.OrderAsc {
		return ">"
	}
	return "<"
}

// Continuation returns the predicate selecting rows strictly after pos in the
// scan order for dir. A nil position yields an empty predicate.
func Continuation(pos *cursor.Position, dir cursor.Direction, spec cursor.Spec) (string, []interface{}) {
	if pos == nil {
		return "", nil
	}

	op := comparison(cursor.ScanOrder(spec.Order, dir))
	f := spec.Field

	if !f.Kind.Composite() {
		return fmt.Sprintf("%s %s ?", cursor.IdentifierColumn, op), []interface{}{pos.ID}
	}

	tuple := fmt.Sprintf("(%s, %s) %s (%s, ?)", SortExpr(f), cursor.IdentifierColumn, op, valueExpr(f))
	if !f.Nullable {
		return tuple, []interface{}{pos.Primary, pos.ID}
	}

	// Forward scans place NULLs after every value, backward scans before.
	nullsAfter := dir != cursor.DirectionPrev

	if pos.Null {
		clause := fmt.Sprintf("%s IS NULL AND %s %s ?", f.Column, cursor.IdentifierColumn, op)
		if nullsAfter {
			return "(" + clause + ")", []interface{}{pos.ID}
		}
		return fmt.Sprintf("((%s) OR %s IS NOT NULL)", clause, f.Column), []interface{}{pos.ID}
	}

	args := []interface{}{pos.Primary, pos.ID}
	if nullsAfter {
		return fmt.Sprintf("(%s OR %s IS NULL)", tuple, f.Column), args
	}
	// Some engines order NULL inside a row value instead of yielding NULL.
	return fmt.Sprintf("(%s IS NOT NULL AND %s)", f.Column, tuple), args
}

// OrderBy returns the ORDER BY list (without keyword) for a scan in dir.
func OrderBy(spec cursor.Spec, dir cursor.Direction) string {
	scan := cursor.ScanOrder(spec.Order, dir).SQL()
	idKey := cursor.IdentifierColumn + " " + scan
	if !spec.Field.Kind.Composite() {
		return idKey
	}

	if !spec.Field.Nullable {
		return fmt.Sprintf("%s %s, %s", SortExpr(spec.Field), scan, idKey)
	}

	nulls := "NULLS LAST"
	if dir == cursor.DirectionPrev {
		nulls = "NULLS FIRST"
	}
	return fmt.Sprintf("%s %s %s, %s", SortExpr(spec.Field), scan, nulls, idKey)
}

// PageQuery describes one page read.
type PageQuery struct {
	Filters   Filters
	Position  *cursor.Position
	Direction cursor.Direction
	Sort      cursor.Spec
	Limit     int
}

// BuildPage returns the SELECT for a page. It fetches Limit+1 rows so the
// caller can tell whether more rows exist.
func BuildPage(pq PageQuery) (string, []interface{}) {
	wb := pq.Filters.Apply(NewWhereBuilder())

	cont, contArgs := Continuation(pq.Position, pq.Direction, pq.Sort)
	wb.AddClause(cont, contArgs...)

	where, args := wb.BuildWithPrefix()
	args = append(args, pq.Limit+1)

	stmt := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT ?",
		strings.Join(MediaColumns, ", "),
		MediaTable,
		where,
		OrderBy(pq.Sort, pq.Direction),
	)
	return stmt, args
}

// BuildCount returns the COUNT(*) statement for the filters.
func BuildCount(f Filters) (string, []interface{}) {
	where, args := f.Apply(NewWhereBuilder()).BuildWithPrefix()
	return fmt.Sprintf("SELECT COUNT(*) FROM %s %s", MediaTable, where), args
}
