// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/metrics"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// DataProvider supplies the engine with watch history and catalog data.
// The database package implements it; tests use in-memory fakes.
type DataProvider interface {
	// WatchedMovies returns every movie userID has marked watched.
	WatchedMovies(ctx context.Context, userID string) ([]models.Movie, error)

	// CandidateMovies returns up to limit eligible catalog movies whose ids
	// are not in excludeIDs, most popular first.
	CandidateMovies(ctx context.Context, excludeIDs []int64, limit int) ([]models.Movie, error)
}

// BreakerProvider wraps a DataProvider with a circuit breaker so a failing
// catalog stops receiving queries until it recovers.
//
// Breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
type BreakerProvider struct {
	next DataProvider
	cb   *gobreaker.CircuitBreaker[[]models.Movie]
	name string
}

// NewBreakerProvider wraps next with a circuit breaker named name.
func NewBreakerProvider(name string, next DataProvider) *BreakerProvider {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.Movie](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("Opening circuit")
			}
			return shouldTrip
		},

		// A caller giving up is not a catalog failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state transition")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), stateToGauge(to))
		},
	})

	return &BreakerProvider{next: next, cb: cb, name: name}
}

// WatchedMovies implements DataProvider.
func (b *BreakerProvider) WatchedMovies(ctx context.Context, userID string) ([]models.Movie, error) {
	return b.execute(func() ([]models.Movie, error) {
		return b.next.WatchedMovies(ctx, userID)
	})
}

// CandidateMovies implements DataProvider.
func (b *BreakerProvider) CandidateMovies(ctx context.Context, excludeIDs []int64, limit int) ([]models.Movie, error) {
	return b.execute(func() ([]models.Movie, error) {
		return b.next.CandidateMovies(ctx, excludeIDs, limit)
	})
}

// State returns the current breaker state.
func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerProvider) execute(fn func() ([]models.Movie, error)) ([]models.Movie, error) {
	movies, err := b.cb.Execute(fn)
	rejected := errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
	metrics.RecordCircuitBreakerResult(b.name, err, rejected)
	if rejected {
		logging.Warn().Err(err).Str("breaker", b.name).Msg("Request rejected by circuit breaker")
	}
	return movies, err
}

// stateToGauge converts a breaker state to the circuit_breaker_state value.
func stateToGauge(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
