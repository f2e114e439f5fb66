// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package monitor

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/mediapager/internal/metrics"
)

// Level is an ordinal performance grade.
type Level int

const (
	Poor Level = iota
	Fair
	Good
	Excellent
)

// String returns the lowercase grade name.
func (l Level) String() string {
	switch l {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Fair:
		return "fair"
	default:
		return "poor"
	}
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name written by MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	for _, candidate := range []Level{Poor, Fair, Good, Excellent} {
		if candidate.String() == string(text) {
			*l = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown grade level %q", text)
}

// Graded dimensions.
const (
	DimensionLatency  = "latency"
	DimensionCacheHit = "cache_hit_rate"
	DimensionErrors   = "error_rate"
)

// Grade is the qualitative assessment of a snapshot.
type Grade struct {
	Overall         Level            `json:"overall"`
	PerMetric       map[string]Level `json:"per_metric"`
	Recommendations []string         `json:"recommendations"`
}

type thresholds struct {
	excellent, good, fair float64
}

var (
	latencyMS = thresholds{excellent: 50, good: 100, fair: 250}
	hitRate   = thresholds{excellent: 0.8, good: 0.6, fair: 0.3}
	errorRate = thresholds{excellent: 0.001, good: 0.01, fair: 0.05}
)

// below grades a lower-is-better value.
func (t thresholds) below(v float64, inclusive bool) Level {
	lt := func(a, b float64) bool {
		if inclusive {
			return a <= b
		}
		return a < b
	}
	switch {
	case lt(v, t.excellent):
		return Excellent
	case lt(v, t.good):
		return Good
	case lt(v, t.fair):
		return Fair
	default:
		return Poor
	}
}

// above grades a higher-is-better value.
func (t thresholds) above(v float64) Level {
	switch {
	case v >= t.excellent:
		return Excellent
	case v >= t.good:
		return Good
	case v >= t.fair:
		return Fair
	default:
		return Poor
	}
}

var recommendationTemplates = map[string]string{
	DimensionLatency:  "p95 latency is %s (%.0fms): check that every sort column has a (column, id) index and that filters are selective",
	DimensionCacheHit: "cache hit rate is %s (%.0f%%): raise cache capacity or page TTL, or look for cursors that vary per request",
	DimensionErrors:   "error rate is %s (%.2f%%): inspect store health and the circuit breaker state",
}

// GradeSnapshot grades s. Dimensions graded fair or poor get a
// recommendation, in latency, cache, error order.
func GradeSnapshot(s Snapshot) Grade {
	g := Grade{
		PerMetric:       make(map[string]Level, 3),
		Recommendations: []string{},
	}
	if s.Count == 0 {
		g.Overall = Excellent
		g.PerMetric[DimensionLatency] = Excellent
		g.PerMetric[DimensionCacheHit] = Excellent
		g.PerMetric[DimensionErrors] = Excellent
		return g
	}

	p95 := durationMS(s.P95Latency)
	dims := []struct {
		name  string
		level Level
		value float64
	}{
		{DimensionLatency, latencyMS.below(p95, false), p95},
		{DimensionCacheHit, hitRate.above(s.CacheHitRate), s.CacheHitRate * 100},
		{DimensionErrors, errorRate.below(s.ErrorRate, true), s.ErrorRate * 100},
	}

	sum := 0
	for _, d := range dims {
		g.PerMetric[d.name] = d.level
		sum += int(d.level)
		if d.level <= Fair {
			g.Recommendations = append(g.Recommendations,
				fmt.Sprintf(recommendationTemplates[d.name], d.level, d.value))
		}
	}
	g.Overall = Level(math.Round(float64(sum) / float64(len(dims))))
	return g
}

// Grade grades the monitor's configured window and publishes the levels as
// gauges.
func (m *Monitor) Grade() Grade {
	g := GradeSnapshot(m.Snapshot(m.window))
	metrics.PerformanceGrade.WithLabelValues("overall").Set(float64(g.Overall))
	for dim, level := range g.PerMetric {
		metrics.PerformanceGrade.WithLabelValues(dim).Set(float64(level))
	}
	return g
}

// Report is the telemetry view served by the admin endpoint.
type Report struct {
	WindowSeconds float64          `json:"window_seconds"`
	Count         int              `json:"count"`
	AvgLatencyMS  float64          `json:"avg_latency_ms"`
	P95LatencyMS  float64          `json:"p95_latency_ms"`
	QPS           float64          `json:"qps"`
	CacheHitRate  float64          `json:"cache_hit_rate"`
	ErrorRate     float64          `json:"error_rate"`
	Grade         Grade            `json:"grade"`
	Operations    []OperationStats `json:"operations"`
}

// Report builds the snapshot, grade and breakdown for window.
// A zero window uses the configured one.
func (m *Monitor) Report(window time.Duration) Report {
	if window <= 0 {
		window = m.window
	}
	s := m.Snapshot(window)
	return Report{
		WindowSeconds: window.Seconds(),
		Count:         s.Count,
		AvgLatencyMS:  durationMS(s.AvgLatency),
		P95LatencyMS:  durationMS(s.P95Latency),
		QPS:           s.QPS,
		CacheHitRate:  s.CacheHitRate,
		ErrorRate:     s.ErrorRate,
		Grade:         GradeSnapshot(s),
		Operations:    m.Breakdown(window),
	}
}
