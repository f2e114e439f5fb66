// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

// Package cache provides the in-process result cache for listing pages.
//
// # Keys
//
// Key builds an order-independent key from an operation name and filter
// pairs:
//
//	media_list|creator_id=5|cursor=40%7C3|direction=next|limit=20|sort=created_at:desc|
//
// Values are query-escaped so "|", "/" and glob metacharacters never appear
// unescaped. Every pair is followed by "|", which lets ScopePattern build
// globs such as "*|creator_id=5|*" that match on whole pairs only.
//
// # Eviction
//
// Each entry has its own TTL. Expired entries are dropped lazily on Get and
// before any capacity eviction. While the cache holds more entries than its
// capacity, the entry with the highest score
//
//	seconds_since_created + 1/(access_count+1)
//
// is removed. Age dominates; among entries of equal age the one read least
// goes first. The entry just written is never its own eviction victim.
//
// # Invalidation
//
// InvalidatePattern removes every key matching a doublestar glob
// (github.com/bmatcuk/doublestar/v4). Catalogue mutations call it with the
// creator scope of the changed row and with the unscoped listing pattern.
//
// # Concurrency
//
// One mutex guards the whole cache. The coordinator starts no goroutines.
package cache
