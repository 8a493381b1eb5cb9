// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/metrics"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// EmptyResultMessage accompanies a successful pass that produced nothing.
const EmptyResultMessage = "No recommendations could be generated from your watch history"

// maxTrackedLimiters bounds the per-user force-refresh limiter table.
const maxTrackedLimiters = 10000

// Options are per-request knobs of Recommend.
type Options struct {
	// Limit caps the returned list. Zero means DefaultLimit.
	Limit int
	// ForceRefresh bypasses the cache. With a refresh budget configured,
	// requests over budget fail with ErrForceRefreshThrottled.
	ForceRefresh bool
}

// Result is the outcome of one Recommend call.
type Result struct {
	Recommendations []models.Recommendation
	FromCache       bool
	// ComputationTimeMS is the time the scoring pass took. Cached results
	// report the time of the pass that produced them.
	ComputationTimeMS int64
	Message           string
}

// Engine produces personalized recommendations and memoizes them per user.
// It is safe for concurrent use.
type Engine struct {
	config   *Config
	provider DataProvider
	results  *ResultCache
	logger   zerolog.Logger

	// flights collapses concurrent computations for the same watched set.
	flights singleflight.Group

	limiters *lru.Cache[string, *rate.Limiter]
}

// NewEngine creates an engine.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, provider DataProvider, results *ResultCache, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	if provider == nil {
		return nil, errors.New("recommend: data provider is required")
	}
	if results == nil {
		return nil, errors.New("recommend: result cache is required")
	}

	limiters, err := lru.New[string, *rate.Limiter](maxTrackedLimiters)
	if err != nil {
		return nil, fmt.Errorf("create limiter table: %w", err)
	}

	return &Engine{
		config:   cfg,
		provider: provider,
		results:  results,
		logger:   logger.With().Str("component", "recommend").Logger(),
		limiters: limiters,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Recommend returns up to opts.Limit recommendations for userID.
//
// A cached list is returned when the user's watched set is unchanged and the
// entry is younger than the cache TTL, unless a forced refresh is requested.
// Otherwise the list is recomputed, cached when non-empty, and returned with
// FromCache=false. A forced refresh over the user's budget fails with
// ErrForceRefreshThrottled and never falls back to the cache.
//
// Concurrent misses for the same watched set share one computation. The
// shared computation is bounded by Config.ComputeTimeout and keeps running if
// one waiting caller gives up; each caller returns as soon as its own ctx is
// done.
//
// Errors: ErrNoWatchHistory, ErrNoCandidates, ErrForceRefreshThrottled,
// ErrComputationPanicked, ctx.Err(), or a wrapped data provider failure.
func (e *Engine) Recommend(ctx context.Context, userID string, opts Options) (*Result, error) {
	start := time.Now()
	if userID == "" {
		return nil, ErrInvalidUser
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	log := e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("user_id", logging.SanitizeUserID(userID)).
		Logger()

	watched, err := e.provider.WatchedMovies(ctx, userID)
	if err != nil {
		metrics.RecordRecommendation(outcomeFor(err), time.Since(start))
		return nil, fmt.Errorf("load watch history: %w", err)
	}
	if len(watched) == 0 {
		metrics.RecordRecommendation(metrics.OutcomeEmpty, time.Since(start))
		return nil, ErrNoWatchHistory
	}
	fingerprint := Fingerprint(MovieIDs(watched))

	if opts.ForceRefresh && !e.allowForceRefresh(userID) {
		metrics.RecommendationForceRefreshThrottled.Inc()
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start))
		log.Debug().Msg("Force refresh throttled")
		return nil, ErrForceRefreshThrottled
	}

	if !opts.ForceRefresh {
		entry, ok, err := e.results.Lookup(ctx, userID, fingerprint)
		if err != nil {
			log.Warn().Err(err).Msg("Recommendation cache lookup failed, recomputing")
		}
		if ok {
			metrics.RecordRecommendation(metrics.OutcomeCache, time.Since(start))
			return &Result{
				Recommendations:   truncate(entry.Recommendations, limit),
				FromCache:         true,
				ComputationTimeMS: entry.ComputationTimeMS,
			}, nil
		}
	}

	flight := e.flights.DoChan(userID+":"+fingerprint, func() (val interface{}, err error) {
		// DoChan re-panics on a fresh goroutine where nothing can recover.
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("Recommendation pass panicked")
				val, err = nil, fmt.Errorf("%w: %v", ErrComputationPanicked, r)
			}
		}()
		computeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.config.ComputeTimeout)
		defer cancel()
		return e.compute(computeCtx, log, userID, fingerprint, watched)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		metrics.RecordRecommendation(outcomeFor(ctx.Err()), time.Since(start))
		return nil, ctx.Err()
	case res = <-flight:
	}
	if res.Err != nil {
		metrics.RecordRecommendation(outcomeFor(res.Err), time.Since(start))
		return nil, res.Err
	}

	entry, _ := res.Val.(*CacheEntry)
	result := &Result{
		Recommendations:   truncate(entry.Recommendations, limit),
		ComputationTimeMS: entry.ComputationTimeMS,
	}
	if len(result.Recommendations) == 0 {
		result.Message = EmptyResultMessage
		metrics.RecordRecommendation(metrics.OutcomeEmpty, time.Since(start))
	} else {
		metrics.RecordRecommendation(metrics.OutcomeComputed, time.Since(start))
	}
	return result, nil
}

// compute runs one full scoring pass and caches a non-empty result.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) compute(ctx context.Context, log zerolog.Logger, userID, fingerprint string, watched []models.Movie) (*CacheEntry, error) {
	started := time.Now()

	candidates, err := e.provider.CandidateMovies(ctx, MovieIDs(watched), e.config.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	profile := NewProfile(watched)
	jitter := DrawJitter(e.config.Jitter, len(candidates))
	scored, err := profile.ScoreAll(ctx, candidates, jitter, e.config.scoreOptions())
	if err != nil {
		return nil, err
	}
	recs := Rank(scored)
	elapsed := time.Since(started)

	metrics.RecordScoringPass(len(candidates), len(recs))
	log.Info().
		Int("watched", len(watched)).
		Int("candidates", len(candidates)).
		Int("scored", len(scored)).
		Int("results", len(recs)).
		Dur("elapsed", elapsed).
		Msg("Recommendations computed")

	entry := &CacheEntry{
		UserID:            userID,
		Fingerprint:       fingerprint,
		Recommendations:   recs,
		ComputationTimeMS: elapsed.Milliseconds(),
	}
	if len(recs) > 0 {
		if err := e.results.Store(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("Failed to cache recommendations")
		}
	}
	return entry, nil
}

// ClearCache deletes the user's cached list. Clearing a user with nothing
// cached succeeds.
func (e *Engine) ClearCache(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidUser
	}
	if err := e.results.Clear(ctx, userID); err != nil {
		return err
	}
	e.logger.Debug().Str("user_id", logging.SanitizeUserID(userID)).Msg("Recommendation cache cleared")
	return nil
}

// allowForceRefresh spends one unit of the user's force-refresh budget.
func (e *Engine) allowForceRefresh(userID string) bool {
	if e.config.ForceRefreshPerMinute <= 0 {
		return true
	}
	limiter, ok := e.limiters.Get(userID)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(e.config.ForceRefreshPerMinute/60), 1)
		if prev, found, _ := e.limiters.PeekOrAdd(userID, limiter); found {
			limiter = prev
		}
	}
	return limiter.Allow()
}

func truncate(recs []models.Recommendation, limit int) []models.Recommendation {
	if len(recs) > limit {
		recs = recs[:limit]
	}
	out := slices.Clone(recs)
	if out == nil {
		out = []models.Recommendation{}
	}
	return out
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout
	case errors.Is(err, ErrNoCandidates):
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeError
	}
}
