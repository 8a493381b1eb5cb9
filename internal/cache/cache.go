// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package cache

import (
	"context"
	"sync"
	"time"
)

// Entry represents a cached item with expiration. A zero ExpiresAt never
// expires.
type Entry struct {
	Data      []byte
	ExpiresAt time.Time
}

func (e Entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// MemoryStore is a thread-safe in-memory Store with TTL support.
//
// Expired entries are dropped lazily on Get and in bulk by Maintain, which
// the supervisor's cache maintenance service calls on a ticker.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	stats   Stats
	closed  bool

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
		stats: Stats{
			LastCleanup: time.Now(),
		},
	}
}

// WithClock replaces the store's time source. Intended for tests.
func (c *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
	return c
}

// Get retrieves a value by key, removing it if it has expired.
func (c *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return nil, false, ErrClosed
	}
	entry, exists := c.entries[key]
	now := c.now()
	c.mu.RUnlock()

	if !exists {
		c.record(func(s *Stats) { s.Misses++ })
		return nil, false, nil
	}

	if entry.expired(now) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, ok := c.entries[key]; ok && current.expired(now) {
			delete(c.entries, key)
			c.stats.Evictions++
			c.stats.TotalKeys = int64(len(c.entries))
		}
		c.stats.Misses++
		c.mu.Unlock()
		return nil, false, nil
	}

	c.record(func(s *Stats) { s.Hits++ })
	return entry.Data, true, nil
}

// Set stores a copy of value under key.
func (c *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	entry := Entry{Data: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.ExpiresAt = c.now().Add(ttl)
	}
	c.entries[key] = entry
	c.stats.TotalKeys = int64(len(c.entries))
	return nil
}

// Delete removes a specific cache entry by key.
func (c *MemoryStore) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.stats.Evictions++
		c.stats.TotalKeys = int64(len(c.entries))
	}
	return nil
}

// Clear removes all entries.
func (c *MemoryStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.stats.TotalKeys = 0
}

// Ping always succeeds on an open store.
func (c *MemoryStore) Ping(context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

// Close drops all entries and rejects further operations.
func (c *MemoryStore) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.entries = nil
	return nil
}

// Backend implements Store.
func (c *MemoryStore) Backend() Backend {
	return BackendMemory
}

// Maintain removes all expired entries.
func (c *MemoryStore) Maintain(context.Context) error {
	c.Sweep()
	return nil
}

// Sweep removes all expired entries and returns how many were removed.
func (c *MemoryStore) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			evicted++
		}
	}

	c.stats.Evictions += int64(evicted)
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
	return evicted
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryStore) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the store's counters.
func (c *MemoryStore) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *MemoryStore) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *MemoryStore) record(update func(*Stats)) {
	c.mu.Lock()
	update(&c.stats)
	c.mu.Unlock()
}
