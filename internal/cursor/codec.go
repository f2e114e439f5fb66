// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package cursor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NullSentinel is the primary component written for NULL sort values.
const NullSentinel = "NULL"

const separator = "|"

// ErrInvalidCursor is returned when a token cannot be decoded for the
// requested sort kind. Callers fall back to the first page.
var ErrInvalidCursor = errors.New("invalid cursor")

// Position is a decoded cursor: the boundary row's sort value and id.
type Position struct {
	// Primary holds a string for text kinds and an int64 or float64 for
	// numeric kinds. It is nil for identifier cursors and NULL sentinels.
	Primary interface{}
	// Null is true when the boundary row's sort value was NULL.
	Null bool
	// ID is the boundary row's primary key.
	ID int64
}

// Encode produces the token for a boundary row of field f.
//
// Identifier fields ignore primary and emit the bare id. Composite fields emit
// "<primary>|<id>", with nil primaries written as NullSentinel.
func Encode(f Field, primary interface{}, id int64) string {
	ids := strconv.FormatInt(id, 10)
	if !f.Kind.Composite() {
		return ids
	}
	return encodePrimary(primary) + separator + ids
}

func encodePrimary(v interface{}) string {
	switch p := v.(type) {
	case nil:
		return NullSentinel
	case string:
		return p
	case []byte:
		return string(p)
	case int:
		return strconv.Itoa(p)
	case int32:
		return strconv.FormatInt(int64(p), 10)
	case int64:
		return strconv.FormatInt(p, 10)
	case uint32:
		return strconv.FormatUint(uint64(p), 10)
	case uint64:
		return strconv.FormatUint(p, 10)
	case float32:
		return strconv.FormatFloat(float64(p), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	case *int64:
		if p == nil {
			return NullSentinel
		}
		return strconv.FormatInt(*p, 10)
	case *string:
		if p == nil {
			return NullSentinel
		}
		return *p
	case time.Time:
		return strconv.FormatInt(p.Unix(), 10)
	default:
		return fmt.Sprint(p)
	}
}

// Decode parses a token for field f.
//
// It fails with ErrInvalidCursor when the id is not a positive integer, when a
// composite token is supplied for an identifier sort (or the reverse), or when
// a numeric primary does not parse as a number. NullSentinel marks a NULL
// boundary only for nullable fields; elsewhere it is a literal value.
func Decode(token string, f Field) (Position, error) {
	kind := f.Kind
	if token == "" {
		return Position{}, fmt.Errorf("%w: empty token", ErrInvalidCursor)
	}

	idx := strings.LastIndex(token, separator)
	if !kind.Composite() {
		if idx >= 0 {
			return Position{}, fmt.Errorf("%w: composite token for identifier sort", ErrInvalidCursor)
		}
		id, err := parseID(token)
		if err != nil {
			return Position{}, err
		}
		return Position{ID: id}, nil
	}

	if idx < 0 {
		return Position{}, fmt.Errorf("%w: simple token for %s sort", ErrInvalidCursor, kind)
	}
	id, err := parseID(token[idx+1:])
	if err != nil {
		return Position{}, err
	}

	raw := token[:idx]
	if raw == NullSentinel && f.Nullable {
		return Position{Null: true, ID: id}, nil
	}

	switch kind {
	case KindNullableNumeric:
		n, err := parseNumber(raw)
		if err != nil {
			return Position{}, err
		}
		return Position{Primary: n, ID: id}, nil
	default:
		return Position{Primary: raw, ID: id}, nil
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalidCursor, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: id %d is not positive", ErrInvalidCursor, id)
	}
	return id, nil
}

// parseNumber prefers integers so BIGINT columns compare without casts.
func parseNumber(s string) (interface{}, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: primary %q is not numeric", ErrInvalidCursor, s)
	}
	return f, nil
}
