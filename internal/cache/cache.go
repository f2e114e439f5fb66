// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package cache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/mediapager/internal/metrics"
)

// ErrBadPattern is returned by InvalidatePattern for malformed globs.
var ErrBadPattern = doublestar.ErrBadPattern

// Entry is one cached payload.
type Entry struct {
	Key          string
	Payload      interface{}
	CreatedAt    time.Time
	TTL          time.Duration
	AccessCount  int64
	SizeEstimate int64
}

func (e *Entry) expired(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.CreatedAt) >= e.TTL
}

// score is the eviction priority; higher goes first.
func (e *Entry) score(now time.Time) float64 {
	return now.Sub(e.CreatedAt).Seconds() + 1/float64(e.AccessCount+1)
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Evictions     int64 `json:"evictions"`
	Expirations   int64 `json:"expirations"`
	Invalidations int64 `json:"invalidations"`
	Entries       int   `json:"entries"`
	Bytes         int64 `json:"bytes"`
	Capacity      int   `json:"capacity"`
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithName sets the cache_type label used on metrics.
func WithName(name string) Option {
	return func(c *Cache) {
		c.name = name
	}
}

// Cache is a TTL and capacity bounded payload cache.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*Entry
	capacity   int
	defaultTTL time.Duration
	bytes      int64
	stats      Stats
	now        func() time.Time
	name       string
}

// New creates a cache holding at most capacity entries. A ttl of zero or
// less passed to Set falls back to defaultTTL.
func New(capacity int, defaultTTL time.Duration, opts ...Option) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	c := &Cache{
		entries:    make(map[string]*Entry, capacity),
		capacity:   capacity,
		defaultTTL: defaultTTL,
		now:        time.Now,
		name:       "pages",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the payload stored under key. Expired entries are removed and
// reported as a miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if ok && entry.expired(c.now()) {
		c.removeLocked(key)
		c.stats.Expirations++
		metrics.CacheEvictions.WithLabelValues(c.name).Inc()
		ok = false
	}
	if !ok {
		c.stats.Misses++
		metrics.RecordCacheLookup(c.name, false)
		return nil, false
	}

	entry.AccessCount++
	c.stats.Hits++
	metrics.RecordCacheLookup(c.name, true)
	return entry.Payload, true
}

// Set stores payload under key, replacing any previous entry, then evicts
// until the cache is within capacity. The size estimate is the payload's
// JSON length; payloads that cannot be encoded are rejected.
func (c *Cache) Set(key string, payload interface{}, ttl time.Duration) error {
	if key == "" {
		return errors.New("cache key must not be empty")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to size cache payload: %w", err)
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)
	c.entries[key] = &Entry{
		Key:          key,
		Payload:      payload,
		CreatedAt:    c.now(),
		TTL:          ttl,
		SizeEstimate: int64(len(data)),
	}
	c.bytes += int64(len(data))

	c.evictLocked(key)
	c.publishLocked()
	return nil
}

// Delete removes key and reports whether it was present.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.removeLocked(key) {
		return false
	}
	c.publishLocked()
	return true
}

// InvalidatePattern removes every entry whose key matches the glob and
// returns how many were removed.
func (c *Cache) InvalidatePattern(pattern string) (int, error) {
	if !doublestar.ValidatePattern(pattern) {
		return 0, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		matched, err := doublestar.Match(pattern, key)
		if err != nil {
			return removed, fmt.Errorf("failed to match %q: %w", pattern, err)
		}
		if matched {
			c.removeLocked(key)
			removed++
		}
	}

	if removed > 0 {
		c.stats.Invalidations += int64(removed)
		metrics.CacheInvalidations.WithLabelValues(c.name).Add(float64(removed))
		c.publishLocked()
	}
	return removed, nil
}

// Clear removes every entry and returns how many were removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]*Entry, c.capacity)
	c.bytes = 0
	c.stats.Invalidations += int64(n)
	metrics.CacheInvalidations.WithLabelValues(c.name).Add(float64(n))
	c.publishLocked()
	return n
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a copy of the current counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Entries = len(c.entries)
	s.Bytes = c.bytes
	s.Capacity = c.capacity
	return s
}

func (c *Cache) removeLocked(key string) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.bytes -= entry.SizeEstimate
	delete(c.entries, key)
	return true
}

// evictLocked restores the capacity bound, sparing keep.
func (c *Cache) evictLocked(keep string) {
	if len(c.entries) <= c.capacity {
		return
	}
	now := c.now()

	for key, entry := range c.entries {
		if key != keep && entry.expired(now) {
			c.removeLocked(key)
			c.stats.Expirations++
			metrics.CacheEvictions.WithLabelValues(c.name).Inc()
		}
	}

	for len(c.entries) > c.capacity {
		victim := c.victimLocked(now, keep)
		if victim == "" {
			return
		}
		c.removeLocked(victim)
		c.stats.Evictions++
		metrics.CacheEvictions.WithLabelValues(c.name).Inc()
	}
}

// victimLocked returns the highest scoring key other than keep. Ties go to
// the oldest entry, then the smallest key.
func (c *Cache) victimLocked(now time.Time, keep string) string {
	var (
		victim string
		best   *Entry
		bestSc float64
	)
	for key, entry := range c.entries {
		if key == keep {
			continue
		}
		sc := entry.score(now)
		switch {
		case best == nil,
			sc > bestSc,
			sc == bestSc && entry.CreatedAt.Before(best.CreatedAt),
			sc == bestSc && entry.CreatedAt.Equal(best.CreatedAt) && key < victim:
			victim, best, bestSc = key, entry, sc
		}
	}
	return victim
}

func (c *Cache) publishLocked() {
	metrics.UpdateCacheGauges(c.name, len(c.entries), c.bytes)
}
