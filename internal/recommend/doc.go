// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

// Package recommend implements a content-based movie recommendation engine.
//
// # Pipeline
//
// For one user the engine loads the watch history and an unwatched candidate
// pool from a DataProvider and scores every candidate against the history:
//
//   - Text: TF-IDF vectors over title and overview, compared by cosine
//     similarity against a corpus built from the watched movies only
//   - Genre: weighted set overlap, with weights boosted for genres the user
//     watches often
//   - Rating: Gaussian kernel around the user's mean vote
//
// The three signals are combined as sqrt(0.98*(0.3*text + 0.6*genre +
// 0.1*rating) + jitter), ranked, cut at a minimum score, truncated to 25 and
// rescaled into [0.40, 0.95] for presentation.
//
// # Caching
//
// Results are memoized per user in a ResultCache keyed by a fingerprint of
// the watched-id set. A cached list is served while the fingerprint matches
// and the entry is younger than the TTL (24h by default). Concurrent misses
// for the same user share one computation.
//
// # Determinism
//
// With jitter disabled, or with a fixed JitterConfig.Seed, two passes over
// the same inputs produce identical orderings and components. The corpus does
// not depend on candidate order or batching.
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	results := recommend.NewResultCache(store, cfg.CacheTTL)
//	engine, err := recommend.NewEngine(cfg, provider, results, logger)
//	if err != nil {
//	    return err
//	}
//
//	res, err := engine.Recommend(ctx, userID, recommend.Options{Limit: 25})
package recommend
