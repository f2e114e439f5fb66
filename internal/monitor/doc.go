// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

// Package monitor keeps a rolling record of page queries and grades them.
//
// Monitor stores QueryMetric values in a fixed-capacity ring buffer; the
// oldest metric is overwritten once the buffer is full. Snapshot copies the
// metrics inside a time window under the lock and computes statistics after
// releasing it, so Record is never blocked by a percentile sort.
//
// Grade maps a snapshot onto four levels per dimension:
//
//	dimension       excellent   good      fair      poor
//	p95 latency     < 50ms      < 100ms   < 250ms   otherwise
//	cache hit rate  >= 80%      >= 60%    >= 30%    otherwise
//	error rate      <= 0.1%     <= 1%     <= 5%     otherwise
//
// The overall grade is the rounded mean of the dimension ranks. An empty
// window grades as excellent with no recommendations.
package monitor
