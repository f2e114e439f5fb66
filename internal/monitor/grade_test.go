// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package monitor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestGradeSnapshot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		snap      Snapshot
		overall   Level
		latency   Level
		cache     Level
		errs      Level
		recommend int
	}{
		{
			name:    "empty window",
			snap:    Snapshot{},
			overall: Excellent, latency: Excellent, cache: Excellent, errs: Excellent,
		},
		{
			name:    "all excellent",
			snap:    Snapshot{Count: 10, P95Latency: 20 * time.Millisecond, CacheHitRate: 0.9, ErrorRate: 0},
			overall: Excellent, latency: Excellent, cache: Excellent, errs: Excellent,
		},
		{
			name:    "boundaries",
			snap:    Snapshot{Count: 10, P95Latency: 50 * time.Millisecond, CacheHitRate: 0.6, ErrorRate: 0.01},
			overall: Good, latency: Good, cache: Good, errs: Good,
		},
		{
			name:    "mixed rounds to nearest rank",
			snap:    Snapshot{Count: 10, P95Latency: 300 * time.Millisecond, CacheHitRate: 0.85, ErrorRate: 0.02},
			overall: Fair, latency: Poor, cache: Excellent, errs: Fair,
			recommend: 2,
		},
		{
			name:    "all poor",
			snap:    Snapshot{Count: 10, P95Latency: time.Second, CacheHitRate: 0.1, ErrorRate: 0.5},
			overall: Poor, latency: Poor, cache: Poor, errs: Poor,
			recommend: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := GradeSnapshot(tt.snap)
			if g.Overall != tt.overall {
				t.Errorf("Overall = %s, want %s", g.Overall, tt.overall)
			}
			if g.PerMetric[DimensionLatency] != tt.latency {
				t.Errorf("latency = %s, want %s", g.PerMetric[DimensionLatency], tt.latency)
			}
			if g.PerMetric[DimensionCacheHit] != tt.cache {
				t.Errorf("cache = %s, want %s", g.PerMetric[DimensionCacheHit], tt.cache)
			}
			if g.PerMetric[DimensionErrors] != tt.errs {
				t.Errorf("errors = %s, want %s", g.PerMetric[DimensionErrors], tt.errs)
			}
			if len(g.Recommendations) != tt.recommend {
				t.Errorf("len(Recommendations) = %d, want %d: %v", len(g.Recommendations), tt.recommend, g.Recommendations)
			}
		})
	}
}

func TestGradeSnapshot_Deterministic(t *testing.T) {
	t.Parallel()
	s := Snapshot{Count: 5, P95Latency: 400 * time.Millisecond, CacheHitRate: 0.2, ErrorRate: 0.2}

	first := GradeSnapshot(s)
	for i := 0; i < 10; i++ {
		again := GradeSnapshot(s)
		if strings.Join(again.Recommendations, "\n") != strings.Join(first.Recommendations, "\n") {
			t.Fatal("recommendations must be stable")
		}
	}
	if !strings.HasPrefix(first.Recommendations[0], "p95 latency is poor") {
		t.Errorf("first recommendation = %q", first.Recommendations[0])
	}
}

func TestLevel_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Grade{Overall: Fair, PerMetric: map[string]Level{DimensionLatency: Good}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"overall":"fair"`) || !strings.Contains(string(data), `"latency":"good"`) {
		t.Errorf("json = %s", data)
	}

	var back Grade
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Overall != Fair || back.PerMetric[DimensionLatency] != Good {
		t.Errorf("decoded = %+v", back)
	}
	var l Level
	if err := l.UnmarshalText([]byte("stellar")); err == nil {
		t.Error("unknown level should fail to decode")
	}
}

func TestMonitorReport(t *testing.T) {
	t.Parallel()
	m, _ := newTestMonitor(10)

	m.Record(QueryMetric{Operation: "media_list", Latency: 400 * time.Millisecond})
	m.Record(QueryMetric{Operation: "media_list", Latency: 400 * time.Millisecond, Err: errors.New("x")})

	r := m.Report(0)
	if r.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %v, want 60", r.WindowSeconds)
	}
	if r.Count != 2 || r.ErrorRate != 0.5 {
		t.Errorf("Count=%d ErrorRate=%v", r.Count, r.ErrorRate)
	}
	if r.Grade.Overall != Poor {
		t.Errorf("Overall = %s, want poor", r.Grade.Overall)
	}
	if len(r.Operations) != 1 {
		t.Errorf("len(Operations) = %d, want 1", len(r.Operations))
	}

	if g := m.Grade(); g.Overall != Poor {
		t.Errorf("Grade().Overall = %s, want poor", g.Overall)
	}
}
