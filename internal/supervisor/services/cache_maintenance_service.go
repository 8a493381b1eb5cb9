// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/cache"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
)

// DefaultSweepInterval is used when no interval is configured.
const DefaultSweepInterval = 10 * time.Minute

// maintenanceTimeout bounds a single Maintain call.
const maintenanceTimeout = 5 * time.Minute

// CacheMaintenanceService periodically runs the result cache's housekeeping
// (dropping expired entries, compacting on-disk logs).
type CacheMaintenanceService struct {
	store    cache.Maintainer
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheMaintenanceService creates the maintenance loop for store.
func NewCacheMaintenanceService(store cache.Maintainer, interval time.Duration) *CacheMaintenanceService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheMaintenanceService{
		store:    store,
		interval: interval,
		logger:   logging.WithComponent("cache-maintenance"),
		name:     "cache-maintenance",
	}
}

// Serve implements suture.Service. Maintenance failures are logged and
// retried on the next tick; only context cancellation ends the loop.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Cache maintenance started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Cache maintenance stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *CacheMaintenanceService) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()

	start := time.Now()
	if err := s.store.Maintain(runCtx); err != nil {
		s.logger.Warn().Err(err).Msg("Cache maintenance failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("Cache maintenance complete")
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *CacheMaintenanceService) String() string {
	return s.name
}
