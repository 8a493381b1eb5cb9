// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import "testing"

func TestGenreSimilarity(t *testing.T) {
	t.Parallel()

	weights := GenreWeights{"Action": 0.9, "Drama": 0.7, "Comedy": 0.75}

	t.Run("full overlap", func(t *testing.T) {
		got := GenreSimilarity(NewGenreSet("Action"), []GenreSet{NewGenreSet("Action")}, weights)
		want := 0.9 / 0.9
		if !approxEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("partial overlap averages with max", func(t *testing.T) {
		candidate := NewGenreSet("Action", "Drama")
		watched := []GenreSet{
			NewGenreSet("Action"),          // 0.9 / (2*0.9)
			NewGenreSet("Action", "Drama"), // 1.6 / (2*0.9)
			NewGenreSet("Comedy"),          // no overlap, skipped
			NewGenreSet(),                  // empty, skipped
		}
		s1 := 0.9 / 1.8
		s2 := 1.6 / 1.8
		want := 0.5*((s1+s2)/2) + 0.5*s2
		if got := GenreSimilarity(candidate, watched, weights); !approxEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("no overlap", func(t *testing.T) {
		got := GenreSimilarity(NewGenreSet("Romance"), []GenreSet{NewGenreSet("Action")}, weights)
		if got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		if got := GenreSimilarity(GenreSet{}, []GenreSet{NewGenreSet("Action")}, weights); got != 0 {
			t.Errorf("empty candidate = %v", got)
		}
		if got := GenreSimilarity(NewGenreSet("Action"), nil, weights); got != 0 {
			t.Errorf("empty history = %v", got)
		}
	})

	t.Run("unweighted genre uses base weight", func(t *testing.T) {
		got := GenreSimilarity(NewGenreSet("Horror"), []GenreSet{NewGenreSet("Horror")}, GenreWeights{})
		want := 0.95 / 0.9
		if !approxEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}
