// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/cache"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/metrics"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// cacheKeyPrefix namespaces result lists in shared backends.
const cacheKeyPrefix = "recommendations:"

// CacheEntry is one user's memoized result list.
type CacheEntry struct {
	UserID            string                  `json:"user_id"`
	Fingerprint       string                  `json:"fingerprint"`
	CreatedAt         time.Time               `json:"created_at"`
	Recommendations   []models.Recommendation `json:"recommendations"`
	ComputationTimeMS int64                   `json:"computation_time_ms"`
}

// ResultCache stores one CacheEntry per user on top of a cache.Store.
// An entry is usable only while its fingerprint matches the caller's current
// watched set and it is younger than the TTL.
type ResultCache struct {
	store cache.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewResultCache creates a result cache. A non-positive ttl uses
// DefaultCacheTTL.
func NewResultCache(store cache.Store, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{store: store, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (c *ResultCache) WithClock(now func() time.Time) *ResultCache {
	c.now = now
	return c
}

// TTL returns the entry lifetime.
func (c *ResultCache) TTL() time.Duration {
	return c.ttl
}

// Backend returns the underlying storage backend.
func (c *ResultCache) Backend() cache.Store {
	return c.store
}

func cacheKey(userID string) string {
	return cacheKeyPrefix + userID
}

// Lookup returns the user's entry when it is valid for fingerprint. A stale
// or mismatched entry is reported as a miss.
func (c *ResultCache) Lookup(ctx context.Context, userID, fingerprint string) (*CacheEntry, bool, error) {
	backend := string(c.store.Backend())

	data, ok, err := c.store.Get(ctx, cacheKey(userID))
	if err != nil {
		metrics.RecordCacheError(backend, "get")
		return nil, false, fmt.Errorf("read cached recommendations: %w", err)
	}
	if !ok {
		metrics.RecordCacheLookup(backend, false)
		return nil, false, nil
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		metrics.RecordCacheError(backend, "decode")
		return nil, false, fmt.Errorf("decode cached recommendations: %w", err)
	}

	if entry.Fingerprint != fingerprint || c.now().Sub(entry.CreatedAt) >= c.ttl {
		metrics.RecordCacheLookup(backend, false)
		return nil, false, nil
	}

	metrics.RecordCacheLookup(backend, true)
	return &entry, true, nil
}

// Store writes entry for entry.UserID, replacing any previous one. The
// backend expiry is set to the remaining lifetime of the entry.
func (c *ResultCache) Store(ctx context.Context, entry *CacheEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = c.now()
	}
	remaining := c.ttl - c.now().Sub(entry.CreatedAt)
	if remaining <= 0 {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}
	if err := c.store.Set(ctx, cacheKey(entry.UserID), data, remaining); err != nil {
		metrics.RecordCacheError(string(c.store.Backend()), "set")
		return fmt.Errorf("write cached recommendations: %w", err)
	}
	return nil
}

// Clear deletes the user's entry. Clearing a missing entry succeeds.
func (c *ResultCache) Clear(ctx context.Context, userID string) error {
	if err := c.store.Delete(ctx, cacheKey(userID)); err != nil {
		metrics.RecordCacheError(string(c.store.Backend()), "delete")
		return fmt.Errorf("clear cached recommendations: %w", err)
	}
	return nil
}
