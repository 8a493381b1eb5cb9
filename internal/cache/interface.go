// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("cache: store closed")

// Store is a byte-oriented key/value store with per-entry expiry.
// All backends are safe for concurrent use.
//
// Usage:
//
//	store, err := cache.New(cache.Config{Backend: cache.BackendLRU, Capacity: 10000})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	_ = store.Set(ctx, "key", data, 24*time.Hour)
//	if data, ok, err := store.Get(ctx, "key"); err == nil && ok {
//	    // Use cached bytes
//	}
type Store interface {
	// Get returns the value for key. ok is false when the key is absent or
	// expired; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key for ttl. A non-positive ttl stores the
	// entry without expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error

	// Backend names the implementation, used as a metrics label.
	Backend() Backend
}

// Maintainer is implemented by stores that need periodic housekeeping, such
// as dropping expired entries or compacting on-disk logs.
type Maintainer interface {
	Maintain(ctx context.Context) error
}

// Backend identifies a Store implementation.
type Backend string

const (
	// BackendMemory is an unbounded map with TTL expiry (default).
	// Best for: single instance deployments and tests.
	BackendMemory Backend = "memory"

	// BackendLRU is a bounded, expiring LRU.
	// Best for: single instance deployments with many users.
	BackendLRU Backend = "lru"

	// BackendBadger persists entries on local disk so they survive restarts.
	BackendBadger Backend = "badger"

	// BackendRedis shares entries between instances.
	BackendRedis Backend = "redis"
)

// Config holds configuration for creating a store.
type Config struct {
	// Backend selects the implementation.
	Backend Backend

	// Capacity bounds the LRU backend. Default: 10000.
	Capacity int

	// MaxTTL is the longest ttl the LRU backend will be asked to hold.
	// Default: 24h.
	MaxTTL time.Duration

	// BadgerPath is the data directory of the badger backend.
	BadgerPath string

	// RedisURL is a redis:// connection URL for the redis backend.
	RedisURL string

	// KeyPrefix namespaces keys in shared backends (badger, redis).
	KeyPrefix string
}

// New creates a store based on the configuration.
func New(cfg Config) (Store, error) {
	if cfg.MaxTTL <= 0 {
		cfg.MaxTTL = 24 * time.Hour
	}

	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendLRU:
		capacity := cfg.Capacity
		if capacity <= 0 {
			capacity = 10000
		}
		return NewLRUStore(capacity, cfg.MaxTTL), nil
	case BackendBadger:
		if cfg.BadgerPath == "" {
			return nil, fmt.Errorf("badger backend requires a path")
		}
		return OpenBadgerStore(cfg.BadgerPath, cfg.KeyPrefix)
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("redis backend requires a url")
		}
		return NewRedisStoreFromURL(cfg.RedisURL, cfg.KeyPrefix)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Verify interface implementations at compile time
var (
	_ Store      = (*MemoryStore)(nil)
	_ Store      = (*LRUStore)(nil)
	_ Store      = (*BadgerStore)(nil)
	_ Store      = (*RedisStore)(nil)
	_ Maintainer = (*MemoryStore)(nil)
	_ Maintainer = (*BadgerStore)(nil)
)
