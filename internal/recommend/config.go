// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"fmt"
	"time"
)

const (
	// DefaultBatchSize bounds how many candidates are scored per batch.
	DefaultBatchSize = 500

	// DefaultMaxCandidates caps the catalog query.
	DefaultMaxCandidates = 3000

	// DefaultLimit is the number of recommendations returned when the caller
	// does not ask for a specific amount.
	DefaultLimit = MaxResults

	// DefaultCacheTTL is how long a computed list stays valid.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultComputeTimeout bounds one scoring pass.
	DefaultComputeTimeout = 60 * time.Second
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// BatchSize is the number of candidates scored per batch.
	BatchSize int `json:"batch_size"`

	// Workers bounds concurrently scored batches.
	Workers int `json:"workers"`

	// MaxCandidates caps the number of catalog movies considered.
	MaxCandidates int `json:"max_candidates"`

	// CacheTTL is the lifetime of a cached result list.
	CacheTTL time.Duration `json:"cache_ttl"`

	// ComputeTimeout bounds a single scoring pass.
	ComputeTimeout time.Duration `json:"compute_timeout"`

	// Jitter controls the random component of the final score.
	Jitter JitterConfig `json:"jitter"`

	// ForceRefreshPerMinute is the per-user budget of forced recomputations.
	// Zero disables throttling.
	ForceRefreshPerMinute float64 `json:"force_refresh_per_minute"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:             DefaultBatchSize,
		Workers:               4,
		MaxCandidates:         DefaultMaxCandidates,
		CacheTTL:              DefaultCacheTTL,
		ComputeTimeout:        DefaultComputeTimeout,
		Jitter:                JitterConfig{Enabled: true},
		ForceRefreshPerMinute: 0,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.MaxCandidates < 1 {
		return fmt.Errorf("max_candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive, got %v", c.CacheTTL)
	}
	if c.ComputeTimeout <= 0 {
		return fmt.Errorf("compute_timeout must be positive, got %v", c.ComputeTimeout)
	}
	if c.ForceRefreshPerMinute < 0 {
		return fmt.Errorf("force_refresh_per_minute must be non-negative, got %f", c.ForceRefreshPerMinute)
	}
	return nil
}

func (c *Config) scoreOptions() ScoreOptions {
	return ScoreOptions{BatchSize: c.BatchSize, Workers: c.Workers}
}
