// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	store, err := NewRedisStoreFromURL("redis://"+mr.Addr(), "recs:")
	if err != nil {
		t.Fatalf("NewRedisStoreFromURL: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, mr
}

func TestRedisStoreBasicOperations(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	if err := store.Set(ctx, "user:1", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !mr.Exists("recs:user:1") {
		t.Error("expected prefixed key in redis")
	}

	got, ok, err := store.Get(ctx, "user:1")
	if err != nil || !ok || string(got) != "payload" {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}

	if _, ok, err := store.Get(ctx, "user:2"); ok || err != nil {
		t.Errorf("missing key: ok=%v err=%v", ok, err)
	}

	if err := store.Delete(ctx, "user:1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "user:1"); ok {
		t.Error("expected user:1 to be deleted")
	}
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	_ = store.Set(ctx, "k", []byte("v"), time.Minute)
	if ttl := mr.TTL("recs:k"); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("expected k to be expired")
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	mr.Close()
	if _, _, err := store.Get(ctx, "k"); err == nil {
		t.Error("expected error when redis is down")
	}
	if err := store.Ping(ctx); err == nil {
		t.Error("expected Ping error when redis is down")
	}
}

func TestNewRedisStoreFromURLInvalid(t *testing.T) {
	if _, err := NewRedisStoreFromURL("not-a-url://x", ""); err == nil {
		t.Error("expected error for invalid url")
	}
}
