// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package cache

import (
	"net/url"
	"sort"
	"strings"
)

const sep = "|"

// Key returns the cache key for op and pairs. Pairs are sorted by name, so
// map iteration order never changes the key. Empty values are kept: an
// explicit "creator_id=" marks an unscoped listing.
func Key(op string, pairs map[string]string) string {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(op)
	b.WriteString(sep)
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pairs[name]))
		b.WriteString(sep)
	}
	return b.String()
}

// ScopePattern returns a glob matching every key that carries name=value.
func ScopePattern(name, value string) string {
	return "*" + sep + name + "=" + url.QueryEscape(value) + sep + "*"
}

// OperationPattern returns a glob matching every key of op.
func OperationPattern(op string) string {
	return op + sep + "*"
}
