// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package config

import (
	"fmt"
	"time"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/cache"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/recommend"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. Config File: optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path                   string `koanf:"path" validate:"required"`
	MaxMemory              string `koanf:"max_memory" validate:"omitempty,memsize"`
	Threads                int    `koanf:"threads" validate:"min=0"` // 0 = use NumCPU
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
	SeedPath               string `koanf:"seed_path"` // JSON catalog imported at startup when set
}

// CacheConfig selects and tunes the recommendation cache backend.
//
// Environment Variables:
//   - CACHE_BACKEND: memory, lru, badger, redis (default: memory)
//   - CACHE_CAPACITY: max entries for the lru backend (default: 10000)
//   - CACHE_BADGER_PATH: data directory for the badger backend
//   - REDIS_URL: redis://[user:pass@]host:port/db for the redis backend
//   - CACHE_SWEEP_INTERVAL: how often expired entries are reclaimed (default: 10m)
type CacheConfig struct {
	Backend       string        `koanf:"backend" validate:"omitempty,oneof=memory lru badger redis"`
	Capacity      int           `koanf:"capacity" validate:"min=0"`
	BadgerPath    string        `koanf:"badger_path"`
	RedisURL      string        `koanf:"redis_url"`
	KeyPrefix     string        `koanf:"key_prefix"`
	SweepInterval time.Duration `koanf:"sweep_interval" validate:"gt=0"`
}

// StoreConfig converts the section into a cache.Config. Entries never
// outlive the recommendation TTL.
func (c CacheConfig) StoreConfig(maxTTL time.Duration) cache.Config {
	return cache.Config{
		Backend:    cache.Backend(c.Backend),
		Capacity:   c.Capacity,
		MaxTTL:     maxTTL,
		BadgerPath: c.BadgerPath,
		RedisURL:   c.RedisURL,
		KeyPrefix:  c.KeyPrefix,
	}
}

// RecommendConfig tunes the scoring pipeline and its result cache.
//
// Environment Variables:
//   - RECOMMEND_BATCH_SIZE: candidates scored per batch (default: 500)
//   - RECOMMEND_WORKERS: concurrently scored batches (default: 4)
//   - RECOMMEND_MAX_CANDIDATES: catalog query cap (default: 3000)
//   - RECOMMEND_CACHE_TTL: lifetime of a cached list (default: 24h)
//   - RECOMMEND_COMPUTE_TIMEOUT: bound on one scoring pass (default: 60s)
//   - RECOMMEND_JITTER_ENABLED: add random jitter to scores (default: true)
//   - RECOMMEND_JITTER_SEED: fixed jitter seed, 0 seeds from the clock
//   - RECOMMEND_FORCE_REFRESH_PER_MINUTE: per-user forced recomputations, 0 disables throttling (default: 0)
type RecommendConfig struct {
	BatchSize             int           `koanf:"batch_size" validate:"min=1"`
	Workers               int           `koanf:"workers" validate:"min=1,max=64"`
	MaxCandidates         int           `koanf:"max_candidates" validate:"min=1"`
	CacheTTL              time.Duration `koanf:"cache_ttl" validate:"gt=0"`
	ComputeTimeout        time.Duration `koanf:"compute_timeout" validate:"gt=0"`
	JitterEnabled         bool          `koanf:"jitter_enabled"`
	JitterSeed            int64         `koanf:"jitter_seed"`
	ForceRefreshPerMinute float64       `koanf:"force_refresh_per_minute" validate:"gte=0"`
}

// EngineConfig converts the section into a recommend.Config.
func (c RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		BatchSize:             c.BatchSize,
		Workers:               c.Workers,
		MaxCandidates:         c.MaxCandidates,
		CacheTTL:              c.CacheTTL,
		ComputeTimeout:        c.ComputeTimeout,
		Jitter:                recommend.JitterConfig{Enabled: c.JitterEnabled, Seed: c.JitterSeed},
		ForceRefreshPerMinute: c.ForceRefreshPerMinute,
	}
}

// SecurityConfig holds authentication and HTTP protection settings
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"` // jwt or none
	JWTSecret         string        `koanf:"jwt_secret"`
	JWTIssuer         string        `koanf:"jwt_issuer"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration with the following precedence (highest last):
//  1. Built-in defaults
//  2. Config file (config.yaml if it exists, or CONFIG_PATH)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
