// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBaseGenreWeight(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"Action":      0.80,
		"Documentary": 1.00,
		"Drama":       0.70,
		"Unknown":     DefaultGenreWeight,
	}
	for genre, want := range tests {
		if got := BaseGenreWeight(genre); got != want {
			t.Errorf("BaseGenreWeight(%q) = %v, want %v", genre, got, want)
		}
	}
}

func TestBuildGenreWeights(t *testing.T) {
	t.Parallel()

	watched := []GenreSet{
		NewGenreSet("Action", "Drama"),
		NewGenreSet("Action"),
		NewGenreSet("Action", "Documentary"),
		NewGenreSet("Comedy"),
	}
	weights := BuildGenreWeights(watched)

	tests := []struct {
		genre string
		want  float64
	}{
		// 3/4 * 0.3 = 0.225, capped at 0.15
		{"Action", 0.80 + 0.15},
		// 1/4 * 0.3 = 0.075
		{"Drama", 0.70 + 0.075},
		// 1.0 + 0.075, capped at 1
		{"Documentary", 1.0},
		{"Comedy", 0.75 + 0.075},
	}
	for _, tt := range tests {
		if got := weights.Weight(tt.genre); !approxEqual(got, tt.want) {
			t.Errorf("Weight(%q) = %v, want %v", tt.genre, got, tt.want)
		}
	}

	// Genres not in the history fall back to their base weight.
	if got := weights.Weight("Horror"); got != 0.95 {
		t.Errorf("Weight(Horror) = %v, want 0.95", got)
	}
	if got := weights.Weight("Unlisted"); got != DefaultGenreWeight {
		t.Errorf("Weight(Unlisted) = %v, want %v", got, DefaultGenreWeight)
	}
}

func TestBuildGenreWeights_Bounds(t *testing.T) {
	t.Parallel()

	if w := BuildGenreWeights(nil); len(w) != 0 {
		t.Errorf("empty history produced %d weights", len(w))
	}

	watched := make([]GenreSet, 10)
	for i := range watched {
		watched[i] = NewGenreSet("Documentary", "TV Movie", "Drama", "Custom")
	}
	for genre, w := range BuildGenreWeights(watched) {
		if w < 0 || w > 1 {
			t.Errorf("weight for %q = %v, outside [0,1]", genre, w)
		}
	}
}
