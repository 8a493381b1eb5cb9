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

	"github.com/dgraph-io/badger/v4"
)

// gcDiscardRatio is the fraction of a value log file that must be garbage
// before Maintain rewrites it.
const gcDiscardRatio = 0.5

// BadgerStore is a Store persisted in a BadgerDB directory. Expiry uses
// badger's native entry TTL.
type BadgerStore struct {
	db     *badger.DB
	prefix string
	owned  bool
}

// OpenBadgerStore opens (or creates) a badger database at path.
//
// Example:
//
//	store, err := cache.OpenBadgerStore("/data/cache", "recs:")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func OpenBadgerStore(path, prefix string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB internal logs
	// Cached result lists are small
	opts.ValueLogFileSize = 64 << 20

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache: %w", err)
	}
	return &BadgerStore{db: db, prefix: prefix, owned: true}, nil
}

// NewBadgerStoreFromDB wraps an existing database. Close does not close db.
func NewBadgerStoreFromDB(db *badger.DB, prefix string) *BadgerStore {
	return &BadgerStore{db: db, prefix: prefix}
}

func (s *BadgerStore) key(key string) []byte {
	return []byte(s.prefix + key)
}

// Get implements Store.
func (s *BadgerStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if errors.Is(err, badger.ErrDBClosed) {
		return nil, false, ErrClosed
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger get: %w", err)
	}
	return value, true, nil
}

// Set implements Store.
func (s *BadgerStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(s.key(key), value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}
	if err != nil {
		return fmt.Errorf("badger set: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *BadgerStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key(key))
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}
	if err != nil {
		return fmt.Errorf("badger delete: %w", err)
	}
	return nil
}

// Ping reports whether the database is open.
func (s *BadgerStore) Ping(context.Context) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if !s.owned || s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// Backend implements Store.
func (s *BadgerStore) Backend() Backend {
	return BackendBadger
}

// Maintain runs value log garbage collection until nothing is left to
// rewrite or ctx is done.
func (s *BadgerStore) Maintain(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("badger value log gc: %w", err)
		}
	}
}
