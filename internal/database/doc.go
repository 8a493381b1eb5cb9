// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

// Package database provides the movie catalog and watch history store.
//
// # Overview
//
// The store is a DuckDB database with two tables: movies (the catalog) and
// user_movies (per-user movie status). The recommendation engine reads it
// through two queries:
//
//   - WatchedMovies: catalog movies a user has marked watched
//   - CandidateMovies: eligible unwatched movies, most popular first
//
// # Files
//
//   - database.go: connection lifecycle and pool configuration
//   - database_schema.go: table and index creation
//   - database_utils.go: context defaults, checkpointing, record counts
//   - movies.go: catalog and watch history queries and writes
//   - import.go: JSON seed catalog import
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	watched, err := db.WatchedMovies(ctx, userID)
//	candidates, err := db.CandidateMovies(ctx, ids, 3000)
//
// # Storage of genres
//
// Genres are stored exactly as received. A movie may carry a JSON array of
// {id, name} objects, a JSON array of names, comma separated names or a
// single name; normalization happens when movies are scored.
//
// # Thread Safety
//
// DB is safe for concurrent use. Queries without a deadline get a 30 second
// timeout.
package database
