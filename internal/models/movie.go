// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package models

// PosterBaseURL is prefixed to a movie's poster path to build a displayable URL.
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// Movie is a catalog row as read from the movie store.
//
// Genres holds the raw genre encoding exactly as stored (JSON array of
// objects, JSON array of strings, comma separated list or a bare name);
// it is normalized by the recommend package.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Genres      string  `json:"genres"`
	VoteAverage float64 `json:"vote_average"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
}

// Text returns the title and overview joined for text vectorization.
func (m *Movie) Text() string {
	return m.Title + " " + m.Overview
}

// SimilarityComponents holds the per-signal scores behind a recommendation.
type SimilarityComponents struct {
	TFIDF float64 `json:"tfidf"`
	Genre float64 `json:"genre"`
	Vote  float64 `json:"vote"`
}

// Recommendation is a scored candidate movie as returned to clients.
type Recommendation struct {
	ID                   int64                `json:"id"`
	Title                string               `json:"title"`
	PosterPath           *string              `json:"poster_path"`
	PosterURL            *string              `json:"poster_url"`
	ReleaseDate          *string              `json:"release_date"`
	VoteAverage          float64              `json:"vote_average"`
	Genres               []string             `json:"genres"`
	Overview             string               `json:"overview"`
	SimilarityScore      float64              `json:"similarity_score"`
	SimilarityComponents SimilarityComponents `json:"similarity_components"`
}

// NewRecommendation builds the client payload for a candidate. Empty poster
// paths and release dates are reported as null.
func NewRecommendation(m *Movie, genres []string) Recommendation {
	rec := Recommendation{
		ID:          m.ID,
		Title:       m.Title,
		VoteAverage: m.VoteAverage,
		Genres:      genres,
		Overview:    m.Overview,
	}
	if rec.Genres == nil {
		rec.Genres = []string{}
	}
	if m.PosterPath != "" {
		path := m.PosterPath
		url := PosterBaseURL + path
		rec.PosterPath = &path
		rec.PosterURL = &url
	}
	if m.ReleaseDate != "" {
		date := m.ReleaseDate
		rec.ReleaseDate = &date
	}
	return rec
}
