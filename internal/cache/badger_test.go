// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func setupBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := OpenBadgerStore(t.TempDir(), "test:")
	if err != nil {
		t.Fatalf("Failed to open badger store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestBadgerStoreBasicOperations(t *testing.T) {
	ctx := context.Background()
	store := setupBadgerStore(t)

	if err := store.Set(ctx, "user:1", []byte(`{"a":1}`), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := store.Get(ctx, "user:1")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get = %q", got)
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

func TestBadgerStoreKeyPrefix(t *testing.T) {
	ctx := context.Background()
	store := setupBadgerStore(t)

	_ = store.Set(ctx, "k", []byte("v"), 0)

	err := store.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("test:k"))
		return err
	})
	if err != nil {
		t.Errorf("expected prefixed key to exist: %v", err)
	}
}

func TestBadgerStoreTTL(t *testing.T) {
	ctx := context.Background()
	store := setupBadgerStore(t)

	// Badger TTLs have one second resolution.
	_ = store.Set(ctx, "short", []byte("v"), time.Second)
	time.Sleep(2100 * time.Millisecond)

	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("expected short to be expired")
	}
}

func TestBadgerStoreMaintainAndClose(t *testing.T) {
	ctx := context.Background()
	store := setupBadgerStore(t)

	if err := store.Maintain(ctx); err != nil {
		t.Errorf("Maintain on fresh store: %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := store.Ping(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Ping after Close: got %v, want ErrClosed", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestBadgerStoreFromDBNotOwned(t *testing.T) {
	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	store := NewBadgerStoreFromDB(db, "")
	_ = store.Close()
	if db.IsClosed() {
		t.Error("Close must not close a borrowed database")
	}
}
