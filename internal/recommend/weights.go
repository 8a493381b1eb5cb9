// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import "math"

const (
	// DefaultGenreWeight applies to genres missing from the base table.
	DefaultGenreWeight = 0.85

	maxFrequencyBoost = 0.15
	frequencyScale    = 0.3
)

// baseGenreWeights favors genres whose overlap is a stronger taste signal.
// Broad genres such as Drama and Comedy are discounted.
var baseGenreWeights = map[string]float64{
	"Action":          0.80,
	"Adventure":       0.85,
	"Animation":       0.90,
	"Comedy":          0.75,
	"Crime":           0.95,
	"Documentary":     1.00,
	"Drama":           0.70,
	"Family":          0.85,
	"Fantasy":         0.90,
	"History":         0.95,
	"Horror":          0.95,
	"Music":           0.95,
	"Mystery":         0.95,
	"Romance":         0.85,
	"Science Fiction": 0.90,
	"TV Movie":        1.00,
	"Thriller":        0.90,
	"War":             0.95,
	"Western":         0.95,
}

// BaseGenreWeight returns the table weight for genre, or DefaultGenreWeight.
func BaseGenreWeight(genre string) float64 {
	if w, ok := baseGenreWeights[genre]; ok {
		return w
	}
	return DefaultGenreWeight
}

// GenreWeights maps genre names to weights in [0, 1].
type GenreWeights map[string]float64

// Weight returns the weight for genre, falling back to its base weight.
func (w GenreWeights) Weight(genre string) float64 {
	if v, ok := w[genre]; ok {
		return v
	}
	return BaseGenreWeight(genre)
}

// BuildGenreWeights derives per-genre weights from a user's watched genre
// sets. Each genre seen in the history gets its base weight plus a boost of
// frequency/total*0.3, the boost capped at 0.15 and the result capped at 1.
func BuildGenreWeights(watched []GenreSet) GenreWeights {
	weights := make(GenreWeights)
	total := len(watched)
	if total == 0 {
		return weights
	}

	frequency := make(map[string]int)
	for _, set := range watched {
		for g := range set {
			frequency[g]++
		}
	}

	for genre, count := range frequency {
		boost := math.Min(maxFrequencyBoost, float64(count)/float64(total)*frequencyScale)
		weights[genre] = math.Min(1.0, BaseGenreWeight(genre)+boost)
	}
	return weights
}
