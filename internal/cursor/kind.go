// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package cursor

import "strings"

// Kind classifies a sort column by how its values are encoded and compared.
type Kind int

const (
	// KindIdentifier is the unique integer primary key.
	KindIdentifier Kind = iota
	// KindOrderedText is a text column ordered case-insensitively.
	KindOrderedText
	// KindNullableNumeric is a numeric column that may hold NULL.
	KindNullableNumeric
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindOrderedText:
		return "ordered_text"
	case KindNullableNumeric:
		return "nullable_numeric"
	default:
		return "unknown"
	}
}

// Composite reports whether tokens for this kind carry a primary value.
func (k Kind) Composite() bool {
	return k == KindOrderedText || k == KindNullableNumeric
}

// Order is the caller-visible sort order of a listing.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder maps a query parameter to an Order. Anything that is not
// "asc" yields the default descending order.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(OrderAsc)) {
		return OrderAsc
	}
	return OrderDesc
}

// Reverse returns the opposite order.
func (o Order) Reverse() Order {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// SQL returns the ORDER BY keyword for the order.
func (o Order) SQL() string {
	if o == OrderAsc {
		return "ASC"
	}
	return "DESC"
}

// Direction selects which neighbour page of a cursor is requested.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// ParseDirection maps a query parameter to a Direction, defaulting to next.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(DirectionPrev)) {
		return DirectionPrev
	}
	return DirectionNext
}

// ScanOrder returns the order rows must be read from storage in. Backward
// pages are read in reverse and flipped back by the caller.
func ScanOrder(order Order, dir Direction) Order {
	if dir == DirectionPrev {
		return order.Reverse()
	}
	return order
}
