// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package monitor

import (
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/mediapager/internal/logging"
)

// QueryMetric describes one page request.
type QueryMetric struct {
	Timestamp    time.Time
	Operation    string
	Latency      time.Duration
	RowsReturned int
	CacheHit     bool
	FilterCount  int
	UsedCursor   bool
	Err          error
}

// Snapshot summarises the metrics recorded within a window.
type Snapshot struct {
	Window       time.Duration `json:"-"`
	Count        int           `json:"count"`
	AvgLatency   time.Duration `json:"-"`
	P95Latency   time.Duration `json:"-"`
	QPS          float64       `json:"qps"`
	CacheHitRate float64       `json:"cache_hit_rate"`
	ErrorRate    float64       `json:"error_rate"`
}

// OperationStats is the per-operation breakdown of a window.
type OperationStats struct {
	Operation    string  `json:"operation"`
	Count        int     `json:"count"`
	AvgLatencyMS float64 `json:"avg_latency_ms"`
	P95LatencyMS float64 `json:"p95_latency_ms"`
	MaxLatencyMS float64 `json:"max_latency_ms"`
	AvgRows      float64 `json:"avg_rows"`
	CacheHitRate float64 `json:"cache_hit_rate"`
	ErrorRate    float64 `json:"error_rate"`
	CursorRate   float64 `json:"cursor_rate"`
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		m.now = now
	}
}

// WithSlowQueryThreshold logs metrics slower than d at warn level.
// Zero disables slow query logging.
func WithSlowQueryThreshold(d time.Duration) Option {
	return func(m *Monitor) {
		m.slow = d
	}
}

// WithWindow sets the window used by Grade.
func WithWindow(d time.Duration) Option {
	return func(m *Monitor) {
		m.window = d
	}
}

// Monitor is a ring buffer of query metrics.
type Monitor struct {
	mu     sync.Mutex
	buf    []QueryMetric
	next   int
	full   bool
	now    func() time.Time
	slow   time.Duration
	window time.Duration
}

// New creates a monitor retaining the last capacity metrics.
func New(capacity int, opts ...Option) *Monitor {
	if capacity < 1 {
		capacity = 1
	}
	m := &Monitor{
		buf:    make([]QueryMetric, capacity),
		now:    time.Now,
		window: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Record appends a metric, overwriting the oldest when full. A zero
// Timestamp is set to the current time.
func (m *Monitor) Record(metric QueryMetric) {
	if metric.Timestamp.IsZero() {
		metric.Timestamp = m.now()
	}

	m.mu.Lock()
	m.buf[m.next] = metric
	m.next++
	if m.next == len(m.buf) {
		m.next = 0
		m.full = true
	}
	m.mu.Unlock()

	if m.slow > 0 && metric.Latency >= m.slow {
		logging.Warn().
			Str("operation", metric.Operation).
			Dur("latency", metric.Latency).
			Dur("threshold", m.slow).
			Int("rows", metric.RowsReturned).
			Int("filters", metric.FilterCount).
			Bool("cursor", metric.UsedCursor).
			Msg("Slow query detected")
	}
}

// Len returns the number of retained metrics.
func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.full {
		return len(m.buf)
	}
	return m.next
}

// Window returns the grading window.
func (m *Monitor) Window() time.Duration {
	return m.window
}

// collect copies the metrics no older than window, oldest first.
func (m *Monitor) collect(window time.Duration) ([]QueryMetric, time.Time) {
	now := m.now()
	cutoff := now.Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.next
	start := 0
	if m.full {
		n = len(m.buf)
		start = m.next
	}
	out := make([]QueryMetric, 0, n)
	for i := 0; i < n; i++ {
		qm := m.buf[(start+i)%len(m.buf)]
		if !qm.Timestamp.Before(cutoff) {
			out = append(out, qm)
		}
	}
	return out, now
}

// Snapshot computes statistics over the metrics recorded within window.
// An empty window yields a zero Snapshot.
func (m *Monitor) Snapshot(window time.Duration) Snapshot {
	metrics, _ := m.collect(window)
	s := summarize(metrics)
	s.Window = window
	if s.Count > 0 && window > 0 {
		s.QPS = float64(s.Count) / window.Seconds()
	}
	return s
}

// Breakdown returns per-operation statistics for window, sorted by count
// descending then operation name.
func (m *Monitor) Breakdown(window time.Duration) []OperationStats {
	metrics, _ := m.collect(window)

	byOp := make(map[string][]QueryMetric)
	for _, qm := range metrics {
		byOp[qm.Operation] = append(byOp[qm.Operation], qm)
	}

	out := make([]OperationStats, 0, len(byOp))
	for op, group := range byOp {
		s := summarize(group)
		var (
			rows    int
			cursors int
			maxLat  time.Duration
		)
		for _, qm := range group {
			rows += qm.RowsReturned
			if qm.UsedCursor {
				cursors++
			}
			if qm.Latency > maxLat {
				maxLat = qm.Latency
			}
		}
		out = append(out, OperationStats{
			Operation:    op,
			Count:        s.Count,
			AvgLatencyMS: durationMS(s.AvgLatency),
			P95LatencyMS: durationMS(s.P95Latency),
			MaxLatencyMS: durationMS(maxLat),
			AvgRows:      float64(rows) / float64(s.Count),
			CacheHitRate: s.CacheHitRate,
			ErrorRate:    s.ErrorRate,
			CursorRate:   float64(cursors) / float64(s.Count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Operation < out[j].Operation
	})
	return out
}

func summarize(metrics []QueryMetric) Snapshot {
	if len(metrics) == 0 {
		return Snapshot{}
	}

	latencies := make([]time.Duration, len(metrics))
	var (
		total  time.Duration
		hits   int
		errors int
	)
	for i, qm := range metrics {
		latencies[i] = qm.Latency
		total += qm.Latency
		if qm.CacheHit {
			hits++
		}
		if qm.Err != nil {
			errors++
		}
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	n := float64(len(metrics))
	return Snapshot{
		Count:        len(metrics),
		AvgLatency:   total / time.Duration(len(metrics)),
		P95Latency:   percentile(latencies, 0.95),
		CacheHitRate: float64(hits) / n,
		ErrorRate:    float64(errors) / n,
	}
}

// percentile returns the nearest-rank value at p from a sorted slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}

func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
