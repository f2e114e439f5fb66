// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package services

import (
	"context"
	"time"

	"github.com/tomtom215/mediapager/internal/logging"
	"github.com/tomtom215/mediapager/internal/monitor"
)

const defaultGradeInterval = 30 * time.Second

// Grader grades recent query performance. *monitor.Monitor implements it
// and updates the grade gauges as a side effect.
type Grader interface {
	Grade() monitor.Grade
}

// GradeService grades the monitor on a fixed interval.
type GradeService struct {
	grader   Grader
	interval time.Duration
	last     monitor.Level
	graded   bool
}

// NewGradeService creates the service. A non-positive interval uses 30s.
func NewGradeService(grader Grader, interval time.Duration) *GradeService {
	if interval <= 0 {
		interval = defaultGradeInterval
	}
	return &GradeService{grader: grader, interval: interval}
}

// Serve implements suture.Service.
func (s *GradeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.grade()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.grade()
		}
	}
}

// grade logs only when the overall level changes.
func (s *GradeService) grade() {
	g := s.grader.Grade()
	if s.graded && g.Overall == s.last {
		return
	}
	event := logging.Info()
	if g.Overall <= monitor.Fair {
		event = logging.Warn()
	}
	event.Str("overall", g.Overall.String()).
		Strs("recommendations", g.Recommendations).
		Msg("Performance grade changed")
	s.last = g.Overall
	s.graded = true
}

func (s *GradeService) String() string {
	return "performance-grader"
}
