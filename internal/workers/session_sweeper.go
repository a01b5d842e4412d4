// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/service"
)

// SessionSweeper periodically deletes expired sessions from stores that do
// not expire them on their own.
type SessionSweeper struct {
	sessions service.SessionService
	interval time.Duration

	logger *logger.Logger
}

// NewSessionSweeper returns a sweeper purging every interval. A non-positive
// interval disables it: Run returns at once.
func NewSessionSweeper(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("session sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error purging expired sessions")
		return
	}

	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("expired sessions purged")
	}
}
