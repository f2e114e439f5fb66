// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package cursor encodes and decodes the opaque position tokens handed to API
clients for keyset pagination, and declares which columns a listing may be
sorted by.

# Token Formats

Two token shapes exist:

	"<id>"            simple cursor, only for sorts on the identifier itself
	"<primary>|<id>"  composite cursor, for every other sort field

The primary component is the textual or numeric value of the sort column on
the boundary row. A NULL value is written as the literal NULL. The id
component is always a positive integer and breaks ties between rows that
share a primary value.

Composite tokens are split on the last separator, so text primaries that
contain "|" survive a round trip. The NULL sentinel is only honoured for
fields declared Nullable; for NOT NULL columns such as titles a primary of
NULL is the literal text.

# Sort Fields

Every sortable column is declared once in a Registry together with its Kind
and whether it may hold NULL.
The kind decides the token shape and how the predicate builder compares
values:

	KindIdentifier       the primary key; simple token
	KindOrderedText      compared case-insensitively via LOWER()
	KindNullableNumeric  integer or float column that may be NULL

Unknown sort names resolve to the identifier field and report
ErrInvalidSortField so callers can log the substitution.
*/
package cursor
