// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/mediapager/internal/monitor"
)

type countingGrader struct {
	calls atomic.Int32
}

func (g *countingGrader) Grade() monitor.Grade {
	n := g.calls.Add(1)
	level := monitor.Excellent
	if n%2 == 0 {
		level = monitor.Poor
	}
	return monitor.Grade{Overall: level}
}

func TestNewGradeService_DefaultInterval(t *testing.T) {
	t.Parallel()

	if got := NewGradeService(&countingGrader{}, 0).interval; got != defaultGradeInterval {
		t.Errorf("interval = %v, want %v", got, defaultGradeInterval)
	}
	if got := NewGradeService(&countingGrader{}, time.Second).String(); got != "performance-grader" {
		t.Errorf("String() = %q", got)
	}
}

func TestGradeService_GradesUntilCanceled(t *testing.T) {
	t.Parallel()

	grader := &countingGrader{}
	svc := NewGradeService(grader, 5*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if n := grader.calls.Load(); n < 2 {
		t.Errorf("Grade calls = %d, want at least 2", n)
	}
	if !svc.graded {
		t.Error("service never recorded a grade")
	}
}

func TestGradeService_GradesOnStart(t *testing.T) {
	t.Parallel()

	grader := &countingGrader{}
	svc := NewGradeService(grader, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_ = svc.Serve(ctx)
	if n := grader.calls.Load(); n != 1 {
		t.Errorf("Grade calls = %d, want 1", n)
	}
	if svc.last != monitor.Excellent {
		t.Errorf("last = %v, want excellent", svc.last)
	}
}

func TestGradeService_RealMonitor(t *testing.T) {
	t.Parallel()

	m := monitor.New(16)
	m.Record(monitor.QueryMetric{
		Timestamp: time.Now(),
		Operation: "media_list:id",
		Latency:   5 * time.Millisecond,
		CacheHit:  true,
	})
	svc := NewGradeService(m, time.Hour)
	svc.grade()
	if svc.last < monitor.Good {
		t.Errorf("grade = %v for a fast cached query", svc.last)
	}
}
