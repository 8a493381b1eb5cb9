// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package database

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// Catalog is the seed file format:
//
//	{
//	  "movies": [{"id": 1, "title": "...", "genres": [{"id": 28, "name": "Action"}], ...}],
//	  "watched": [{"user_id": "u1", "movie_ids": [1, 2]}]
//	}
//
// genres may be any of the encodings the recommend package understands; it is
// stored verbatim.
type Catalog struct {
	Movies  []CatalogMovie   `json:"movies"`
	Watched []CatalogWatched `json:"watched"`
}

// CatalogMovie is one movie of a seed catalog.
type CatalogMovie struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Overview    string          `json:"overview"`
	Genres      json.RawMessage `json:"genres"`
	VoteAverage float64         `json:"vote_average"`
	Popularity  float64         `json:"popularity"`
	PosterPath  string          `json:"poster_path"`
	ReleaseDate string          `json:"release_date"`
}

// CatalogWatched is one user's watch history in a seed catalog.
type CatalogWatched struct {
	UserID   string  `json:"user_id"`
	MovieIDs []int64 `json:"movie_ids"`
}

// ImportStats summarizes an import.
type ImportStats struct {
	Movies  int
	Users   int
	Watched int
}

// ImportCatalog loads a seed catalog from r. Movies are upserted, so
// re-importing the same file is idempotent.
func (db *DB) ImportCatalog(ctx context.Context, r io.Reader) (ImportStats, error) {
	var catalog Catalog
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return ImportStats{}, fmt.Errorf("decode catalog: %w", err)
	}

	movies := make([]models.Movie, len(catalog.Movies))
	for i := range catalog.Movies {
		cm := &catalog.Movies[i]
		genres, err := rawGenres(cm.Genres)
		if err != nil {
			return ImportStats{}, fmt.Errorf("movie %d genres: %w", cm.ID, err)
		}
		movies[i] = models.Movie{
			ID:          cm.ID,
			Title:       cm.Title,
			Overview:    cm.Overview,
			Genres:      genres,
			VoteAverage: cm.VoteAverage,
			Popularity:  cm.Popularity,
			PosterPath:  cm.PosterPath,
			ReleaseDate: cm.ReleaseDate,
		}
	}

	if err := db.UpsertMovies(ctx, movies); err != nil {
		return ImportStats{}, err
	}

	stats := ImportStats{Movies: len(movies)}
	for _, w := range catalog.Watched {
		if err := db.MarkWatched(ctx, w.UserID, w.MovieIDs...); err != nil {
			return stats, fmt.Errorf("import watch history of %s: %w", w.UserID, err)
		}
		stats.Users++
		stats.Watched += len(w.MovieIDs)
	}

	logging.Info().
		Int("movies", stats.Movies).
		Int("users", stats.Users).
		Int("watched", stats.Watched).
		Msg("Catalog imported")

	return stats, nil
}

// ImportCatalogFile opens path and imports it with ImportCatalog.
func (db *DB) ImportCatalogFile(ctx context.Context, path string) (ImportStats, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return ImportStats{}, fmt.Errorf("open catalog: %w", err)
	}
	defer closeWithLog(f, "catalog file")

	return db.ImportCatalog(ctx, f)
}

// rawGenres converts the genres field to its stored form: JSON strings are
// unquoted, arrays are kept as JSON text, null and absent become "".
func rawGenres(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(trimmed), nil
}
