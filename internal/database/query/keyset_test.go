// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package query

import (
	"strings"
	"testing"

	"github.com/tomtom215/mediapager/internal/cursor"
)

var (
	idField      = cursor.Field{Name: "id", Column: "id", Kind: cursor.KindIdentifier}
	titleField   = cursor.Field{Name: "title", Column: "title", Kind: cursor.KindOrderedText}
	createdField = cursor.Field{Name: "created_at", Column: "created_at", Kind: cursor.KindNullableNumeric, Nullable: true}
)

func TestContinuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pos      *cursor.Position
		dir      cursor.Direction
		spec     cursor.Spec
		want     string
		wantArgs []interface{}
	}{
		{
			name: "no cursor",
			dir:  cursor.DirectionNext,
			spec: cursor.Spec{Field: idField, Order: cursor.OrderDesc},
			want: "",
		},
		{
			name:     "identifier desc next",
			pos:      &cursor.Position{ID: 10},
			dir:      cursor.DirectionNext,
			spec:     cursor.Spec{Field: idField, Order: cursor.OrderDesc},
			want:     "id < ?",
			wantArgs: []interface{}{int64(10)},
		},
		{
			name:     "identifier desc prev flips",
			pos:      &cursor.Position{ID: 10},
			dir:      cursor.DirectionPrev,
			spec:     cursor.Spec{Field: idField, Order: cursor.OrderDesc},
			want:     "id > ?",
			wantArgs: []interface{}{int64(10)},
		},
		{
			name:     "numeric desc next includes nulls",
			pos:      &cursor.Position{Primary: int64(40), ID: 3},
			dir:      cursor.DirectionNext,
			spec:     cursor.Spec{Field: createdField, Order: cursor.OrderDesc},
			want:     "((created_at, id) < (?, ?) OR created_at IS NULL)",
			wantArgs: []interface{}{int64(40), int64(3)},
		},
		{
			name:     "numeric asc prev excludes nulls",
			pos:      &cursor.Position{Primary: int64(40), ID: 3},
			dir:      cursor.DirectionPrev,
			spec:     cursor.Spec{Field: createdField, Order: cursor.OrderAsc},
			want:     "(created_at IS NOT NULL AND (created_at, id) < (?, ?))",
			wantArgs: []interface{}{int64(40), int64(3)},
		},
		{
			name:     "null sentinel next",
			pos:      &cursor.Position{Null: true, ID: 5},
			dir:      cursor.DirectionNext,
			spec:     cursor.Spec{Field: createdField, Order: cursor.OrderDesc},
			want:     "(created_at IS NULL AND id < ?)",
			wantArgs: []interface{}{int64(5)},
		},
		{
			name:     "null sentinel prev reaches values",
			pos:      &cursor.Position{Null: true, ID: 5},
			dir:      cursor.DirectionPrev,
			spec:     cursor.Spec{Field: createdField, Order: cursor.OrderDesc},
			want:     "((created_at IS NULL AND id > ?) OR created_at IS NOT NULL)",
			wantArgs: []interface{}{int64(5)},
		},
		{
			name:     "text lowers both sides",
			pos:      &cursor.Position{Primary: "Mango", ID: 4},
			dir:      cursor.DirectionNext,
			spec:     cursor.Spec{Field: titleField, Order: cursor.OrderAsc},
			want:     "(LOWER(title), id) > (LOWER(CAST(? AS TEXT)), ?)",
			wantArgs: []interface{}{"Mango", int64(4)},
		},
		{
			name:     "literal NULL title compares as text",
			pos:      &cursor.Position{Primary: "NULL", ID: 2},
			dir:      cursor.DirectionNext,
			spec:     cursor.Spec{Field: titleField, Order: cursor.OrderAsc},
			want:     "(LOWER(title), id) > (LOWER(CAST(? AS TEXT)), ?)",
			wantArgs: []interface{}{"NULL", int64(2)},
		},
		{
			name:     "text prev without null guard",
			pos:      &cursor.Position{Primary: "Mango", ID: 4},
			dir:      cursor.DirectionPrev,
			spec:     cursor.Spec{Field: titleField, Order: cursor.OrderAsc},
			want:     "(LOWER(title), id) < (LOWER(CAST(? AS TEXT)), ?)",
			wantArgs: []interface{}{"Mango", int64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, args := Continuation(tt.pos, tt.dir, tt.spec)
			if got != tt.want {
				t.Errorf("Continuation() = %q, want %q", got, tt.want)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %#v, want %#v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestOrderBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec cursor.Spec
		dir  cursor.Direction
		want string
	}{
		{"identifier desc", cursor.Spec{Field: idField, Order: cursor.OrderDesc}, cursor.DirectionNext, "id DESC"},
		{"identifier desc prev", cursor.Spec{Field: idField, Order: cursor.OrderDesc}, cursor.DirectionPrev, "id ASC"},
		{"numeric desc", cursor.Spec{Field: createdField, Order: cursor.OrderDesc}, cursor.DirectionNext, "created_at DESC NULLS LAST, id DESC"},
		{"numeric desc prev", cursor.Spec{Field: createdField, Order: cursor.OrderDesc}, cursor.DirectionPrev, "created_at ASC NULLS FIRST, id ASC"},
		{"text asc", cursor.Spec{Field: titleField, Order: cursor.OrderAsc}, cursor.DirectionNext, "LOWER(title) ASC, id ASC"},
		{"text asc prev", cursor.Spec{Field: titleField, Order: cursor.OrderAsc}, cursor.DirectionPrev, "LOWER(title) DESC, id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := OrderBy(tt.spec, tt.dir); got != tt.want {
				t.Errorf("OrderBy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPage(t *testing.T) {
	t.Parallel()

	stmt, args := BuildPage(PageQuery{
		Filters:   Filters{Platform: "youtube"},
		Position:  &cursor.Position{Primary: int64(40), ID: 3},
		Direction: cursor.DirectionNext,
		Sort:      cursor.Spec{Field: createdField, Order: cursor.OrderDesc},
		Limit:     2,
	})

	wantSuffix := "FROM media_items WHERE platform = ? AND ((created_at, id) < (?, ?) OR created_at IS NULL) " +
		"ORDER BY created_at DESC NULLS LAST, id DESC LIMIT ?"
	if !strings.HasPrefix(stmt, "SELECT id, creator_id, ") {
		t.Errorf("unexpected projection: %q", stmt)
	}
	if !strings.HasSuffix(stmt, wantSuffix) {
		t.Errorf("BuildPage() = %q\nwant suffix %q", stmt, wantSuffix)
	}

	want := []interface{}{"youtube", int64(40), int64(3), 3}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %#v, want %#v", i, args[i], want[i])
		}
	}
}

func TestBuildPage_FirstPage(t *testing.T) {
	t.Parallel()

	stmt, args := BuildPage(PageQuery{
		Direction: cursor.DirectionNext,
		Sort:      cursor.Spec{Field: idField, Order: cursor.OrderDesc},
		Limit:     20,
	})
	if !strings.HasSuffix(stmt, "FROM media_items WHERE 1=1 ORDER BY id DESC LIMIT ?") {
		t.Errorf("BuildPage() = %q", stmt)
	}
	if len(args) != 1 || args[0] != 21 {
		t.Errorf("args = %v, want [21]", args)
	}
}
