// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
database_schema.go - Database Schema Management

Tables:
  - movies: the catalog. genres holds the raw encoding exactly as received
    (JSON array of objects, JSON array of strings, comma separated names or a
    single name); normalization happens in the recommend package.
  - user_movies: per-user movie status. Only rows with status 'watched'
    count as watch history.

Index Strategy:
  - user_movies(user_id) for the watch history join. Upserted columns are
    left unindexed because DuckDB rejects ON CONFLICT DO UPDATE assignments
    to indexed columns.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the tables and indexes if they do not exist.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

var tableCreationQueries = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		overview TEXT,
		genres TEXT,
		vote_average DOUBLE,
		popularity DOUBLE,
		poster_path TEXT,
		release_date TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS user_movies (
		user_id TEXT NOT NULL,
		movie_id BIGINT NOT NULL,
		status TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, movie_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_user_movies_user ON user_movies(user_id)`,
}
