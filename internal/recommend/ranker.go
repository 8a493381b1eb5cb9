// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import (
	"sort"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

const (
	// MinRawScore is the raw score a candidate needs to pass the filter.
	MinRawScore = 0.05
	// MinPassing is the number of passing candidates below which the
	// threshold is ignored.
	MinPassing = 5
	// MaxResults caps the ranked list.
	MaxResults = 25

	// Presented scores span [PresentedFloor, PresentedFloor+PresentedSpan].
	PresentedFloor = 0.40
	PresentedSpan  = 0.55

	normalizedShare = 0.6
	rankShare       = 0.4
)

// Rank orders scored candidates and rescales them for presentation.
//
// Candidates are sorted by raw score (stable, so equal scores keep input
// order) and filtered at MinRawScore. If fewer than MinPassing survive the
// filter, the unfiltered list is used instead. The list is truncated to
// MaxResults and each score is replaced by
// 0.4 + 0.55 * (0.6*minmax + 0.4*(1 - i/n)), where minmax is 0 when all raw
// scores are equal.
func Rank(scored []ScoredCandidate) []models.Recommendation {
	if len(scored) == 0 {
		return []models.Recommendation{}
	}

	sorted := make([]ScoredCandidate, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Raw > sorted[j].Raw
	})

	passing := sorted
	cut := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Raw < MinRawScore
	})
	if cut >= MinPassing {
		passing = sorted[:cut]
	}
	if len(passing) > MaxResults {
		passing = passing[:MaxResults]
	}

	highest := passing[0].Raw
	lowest := passing[len(passing)-1].Raw
	spread := highest - lowest
	n := float64(len(passing))

	out := make([]models.Recommendation, len(passing))
	for i := range passing {
		var normalized float64
		if spread > 0 {
			normalized = (passing[i].Raw - lowest) / spread
		}
		rank := 1 - float64(i)/n
		blend := normalizedShare*normalized + rankShare*rank

		rec := models.NewRecommendation(&passing[i].Movie, passing[i].Genres)
		rec.SimilarityScore = PresentedFloor + PresentedSpan*blend
		rec.SimilarityComponents = passing[i].Components
		out[i] = rec
	}
	return out
}
