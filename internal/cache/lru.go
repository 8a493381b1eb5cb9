// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type lruValue struct {
	data      []byte
	expiresAt time.Time
}

// LRUStore is a bounded Store backed by an expirable LRU. When capacity is
// reached the least recently used entry is evicted.
//
// The underlying LRU expires everything after maxTTL; shorter per-entry
// ttls are enforced on Get.
type LRUStore struct {
	lru    *expirable.LRU[string, lruValue]
	closed atomic.Bool
	now    func() time.Time
}

// NewLRUStore creates an LRU store holding at most capacity entries.
func NewLRUStore(capacity int, maxTTL time.Duration) *LRUStore {
	if capacity <= 0 {
		capacity = 10000
	}
	return &LRUStore{
		lru: expirable.NewLRU[string, lruValue](capacity, nil, maxTTL),
		now: time.Now,
	}
}

// Get implements Store.
func (c *LRUStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.closed.Load() {
		return nil, false, ErrClosed
	}
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !v.expiresAt.IsZero() && c.now().After(v.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return v.data, true, nil
}

// Set implements Store.
func (c *LRUStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrClosed
	}
	v := lruValue{data: append([]byte(nil), value...)}
	if ttl > 0 {
		v.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, v)
	return nil
}

// Delete implements Store.
func (c *LRUStore) Delete(_ context.Context, key string) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.lru.Remove(key)
	return nil
}

// Ping implements Store.
func (c *LRUStore) Ping(context.Context) error {
	if c.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Close purges the LRU and rejects further operations.
func (c *LRUStore) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.lru.Purge()
	}
	return nil
}

// Backend implements Store.
func (c *LRUStore) Backend() Backend {
	return BackendLRU
}

// Len returns the number of live entries.
func (c *LRUStore) Len() int {
	return c.lru.Len()
}
