// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
Package cache provides byte-oriented key/value stores with per-entry expiry.

The recommendation engine keeps one serialized result list per user in a
Store. Four interchangeable backends implement it:

  - memory: map with lazy and swept TTL expiry (default)
  - lru: bounded hashicorp/golang-lru expirable cache
  - badger: BadgerDB directory, survives restarts
  - redis: shared between instances, server-side TTL

Backends are selected with Config.Backend and created by New. A Get that
finds nothing returns ok=false with a nil error; errors are reserved for
backend failures so callers can tell "not cached" from "cache down".

Stores that need housekeeping implement Maintainer. The supervisor runs
Maintain on a ticker: the memory store drops expired entries and the badger
store runs value log garbage collection.

# Thread Safety

All backends are safe for concurrent use.
*/
package cache
