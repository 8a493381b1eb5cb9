// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestLRUStoreBasicOperations(t *testing.T) {
	ctx := context.Background()
	c := NewLRUStore(10, time.Hour)
	defer c.Close()

	if err := c.Set(ctx, "a", []byte("1"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok, err := c.Get(ctx, "a")
	if err != nil || !ok || string(got) != "1" {
		t.Fatalf("Get(a) = %q, %v, %v", got, ok, err)
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("expected a to be deleted")
	}
}

func TestLRUStoreEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewLRUStore(3, time.Hour)
	defer c.Close()

	for i := 0; i < 3; i++ {
		_ = c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Minute)
	}
	// Touch k0 so k1 becomes the oldest.
	c.Get(ctx, "k0")
	_ = c.Set(ctx, "k3", []byte("v"), time.Minute)

	if _, ok, _ := c.Get(ctx, "k1"); ok {
		t.Error("expected k1 to be evicted")
	}
	for _, key := range []string{"k0", "k2", "k3"} {
		if _, ok, _ := c.Get(ctx, key); !ok {
			t.Errorf("expected %s to remain", key)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestLRUStorePerEntryTTL(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := NewLRUStore(10, time.Hour)
	c.now = clock.Now
	defer c.Close()

	_ = c.Set(ctx, "short", []byte("v"), time.Minute)
	_ = c.Set(ctx, "long", []byte("v"), 30*time.Minute)

	clock.Advance(5 * time.Minute)
	if _, ok, _ := c.Get(ctx, "short"); ok {
		t.Error("expected short to be expired")
	}
	if _, ok, _ := c.Get(ctx, "long"); !ok {
		t.Error("expected long to be live")
	}
}

func TestLRUStoreClosed(t *testing.T) {
	ctx := context.Background()
	c := NewLRUStore(10, time.Hour)
	_ = c.Close()
	_ = c.Close()

	if _, _, err := c.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close: got %v, want ErrClosed", err)
	}
	if err := c.Ping(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping after Close: got %v, want ErrClosed", err)
	}
}
