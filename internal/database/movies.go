// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/metrics"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// StatusWatched marks a user_movies row as part of the watch history.
const StatusWatched = "watched"

// MinCandidateVote excludes poorly rated movies from candidate lists.
const MinCandidateVote = 5.0

// movieColumns selects a models.Movie with NULLs mapped to zero values.
const movieColumns = `m.id, m.title,
	COALESCE(m.overview, ''), COALESCE(m.genres, ''),
	COALESCE(m.vote_average, 0), COALESCE(m.popularity, 0),
	COALESCE(m.poster_path, ''), COALESCE(m.release_date, '')`

// WatchedMovies returns every catalog movie userID has marked watched, in
// the order they were marked.
func (db *DB) WatchedMovies(ctx context.Context, userID string) ([]models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ` + movieColumns + `
		FROM user_movies um
		JOIN movies m ON m.id = um.movie_id
		WHERE um.user_id = ? AND um.status = ? AND m.title IS NOT NULL
		ORDER BY um.updated_at, m.id`

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, userID, StatusWatched)
	if err != nil {
		metrics.RecordDBQuery("select", "user_movies", time.Since(start), err)
		return nil, fmt.Errorf("query watched movies: %w", err)
	}
	defer closeWithLog(rows, "rows")

	movies, err := scanMovies(rows)
	metrics.RecordDBQuery("select", "user_movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("scan watched movies: %w", err)
	}
	return movies, nil
}

// CandidateMovies returns up to limit catalog movies eligible for
// recommendation: not in excludeIDs, with a title, overview and genres, and
// rated at least MinCandidateVote. Most popular first.
func (db *DB) CandidateMovies(ctx context.Context, excludeIDs []int64, limit int) ([]models.Movie, error) {
	if limit <= 0 {
		return []models.Movie{}, nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var sb strings.Builder
	sb.WriteString(`SELECT ` + movieColumns + `
		FROM movies m
		WHERE m.title IS NOT NULL AND m.title <> ''
		  AND m.overview IS NOT NULL AND m.overview <> ''
		  AND m.genres IS NOT NULL AND m.genres <> ''
		  AND m.vote_average >= ?`)

	args := make([]interface{}, 0, len(excludeIDs)+2)
	args = append(args, MinCandidateVote)
	if len(excludeIDs) > 0 {
		sb.WriteString(` AND m.id NOT IN (`)
		sb.WriteString(placeholders(len(excludeIDs)))
		sb.WriteString(`)`)
		for _, id := range excludeIDs {
			args = append(args, id)
		}
	}
	sb.WriteString(` ORDER BY m.popularity DESC NULLS LAST, m.vote_average DESC, m.id LIMIT ?`)
	args = append(args, limit)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		metrics.RecordDBQuery("select", "movies", time.Since(start), err)
		return nil, fmt.Errorf("query candidate movies: %w", err)
	}
	defer closeWithLog(rows, "rows")

	movies, err := scanMovies(rows)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("scan candidate movies: %w", err)
	}
	return movies, nil
}

// GetMovie returns one catalog movie. The bool is false when it does not exist.
func (db *DB) GetMovie(ctx context.Context, id int64) (*models.Movie, bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies m WHERE m.id = ?`, id)
	var m models.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Overview, &m.Genres, &m.VoteAverage, &m.Popularity, &m.PosterPath, &m.ReleaseDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &m, true, nil
}

// UpsertMovies inserts or replaces catalog movies in one transaction.
func (db *DB) UpsertMovies(ctx context.Context, movies []models.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies
			(id, title, overview, genres, vote_average, popularity, poster_path, release_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				title = excluded.title,
				overview = excluded.overview,
				genres = excluded.genres,
				vote_average = excluded.vote_average,
				popularity = excluded.popularity,
				poster_path = excluded.poster_path,
				release_date = excluded.release_date`)
		if err != nil {
			return fmt.Errorf("prepare movie upsert: %w", err)
		}
		defer closeWithLog(stmt, "prepared statement")

		for i := range movies {
			m := &movies[i]
			if m.ID <= 0 || strings.TrimSpace(m.Title) == "" {
				return fmt.Errorf("movie %d: id and title are required", m.ID)
			}
			if _, err := stmt.ExecContext(ctx,
				m.ID, m.Title, nullString(m.Overview), nullString(m.Genres),
				m.VoteAverage, m.Popularity, nullString(m.PosterPath), nullString(m.ReleaseDate),
			); err != nil {
				return fmt.Errorf("upsert movie %d: %w", m.ID, err)
			}
		}
		return nil
	})
	metrics.RecordDBQuery("upsert", "movies", time.Since(start), err)
	return err
}

// MarkWatched adds movieIDs to userID's watch history. Marking a movie that
// is already watched is a no-op apart from its timestamp.
func (db *DB) MarkWatched(ctx context.Context, userID string, movieIDs ...int64) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if len(movieIDs) == 0 {
		return nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO user_movies (user_id, movie_id, status, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (user_id, movie_id) DO UPDATE SET
				status = excluded.status,
				updated_at = excluded.updated_at`)
		if err != nil {
			return fmt.Errorf("prepare mark watched: %w", err)
		}
		defer closeWithLog(stmt, "prepared statement")

		now := time.Now().UTC()
		for i, id := range movieIDs {
			// Distinct timestamps keep the marking order stable.
			at := now.Add(time.Duration(i) * time.Microsecond)
			if _, err := stmt.ExecContext(ctx, userID, id, StatusWatched, at); err != nil {
				return fmt.Errorf("mark movie %d watched: %w", id, err)
			}
		}
		return nil
	})
	metrics.RecordDBQuery("upsert", "user_movies", time.Since(start), err)
	return err
}

// UnmarkWatched removes movieIDs from userID's watch history. Removing a
// movie that is not watched succeeds.
func (db *DB) UnmarkWatched(ctx context.Context, userID string, movieIDs ...int64) error {
	if len(movieIDs) == 0 {
		return nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	args := make([]interface{}, 0, len(movieIDs)+1)
	args = append(args, userID)
	for _, id := range movieIDs {
		args = append(args, id)
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM user_movies WHERE user_id = ? AND movie_id IN (`+placeholders(len(movieIDs))+`)`,
		args...)
	metrics.RecordDBQuery("delete", "user_movies", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("unmark watched: %w", err)
	}
	return nil
}

// withTx runs fn in a transaction, committing on success.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func scanMovies(rows *sql.Rows) ([]models.Movie, error) {
	movies := make([]models.Movie, 0)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Overview, &m.Genres, &m.VoteAverage, &m.Popularity, &m.PosterPath, &m.ReleaseDate); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
