// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
Package models defines the data structures shared by the catalog store, the
recommendation engine and the HTTP API.

Key Components:

  - Movie: catalog row with the raw stored genre encoding
  - Recommendation: scored candidate as returned to clients
  - SimilarityComponents: per-signal breakdown (tfidf, genre, vote)
  - RecommendationsResponse, MessageResponse, ErrorResponse: API bodies
  - HealthResponse: liveness and readiness bodies

Nullable Fields:

Recommendation.PosterPath, PosterURL and ReleaseDate are pointers so that
missing values serialize as JSON null rather than empty strings:

	rec := models.NewRecommendation(&movie, []string{"Drama"})
	// movie.PosterPath == "" -> "poster_path": null, "poster_url": null

Thread Safety:

Models are plain values with no internal synchronization. Treat them as
immutable once handed to another goroutine.
*/
package models
