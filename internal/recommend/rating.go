// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import "math"

// ratingKernelWidth widens the Gaussian kernel (2 would be a standard normal
// shape) so ratings a few deviations away still score.
const ratingKernelWidth = 6.0

// RatingStats summarizes a user's historical vote averages.
type RatingStats struct {
	Mean   float64
	StdDev float64
	Count  int
}

// NewRatingStats computes the mean and population standard deviation of the
// non-zero votes. StdDev is 1 when it would otherwise be zero.
func NewRatingStats(votes []float64) RatingStats {
	var sum float64
	n := 0
	for _, v := range votes {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return RatingStats{StdDev: 1}
	}

	mean := sum / float64(n)
	var sq float64
	for _, v := range votes {
		if v > 0 {
			sq += (v - mean) * (v - mean)
		}
	}
	std := math.Sqrt(sq / float64(n))
	if std == 0 || math.IsNaN(std) {
		std = 1
	}
	return RatingStats{Mean: mean, StdDev: std, Count: n}
}

// Similarity scores how typical vote is for the user:
// exp(-((vote-mean)/std)^2 / 6). A missing vote or an empty history scores 0.
func (s RatingStats) Similarity(vote float64) float64 {
	if vote <= 0 || s.Count == 0 {
		return 0
	}
	std := s.StdDev
	if std == 0 {
		std = 1
	}
	z := (vote - s.Mean) / std
	return math.Exp(-(z * z) / ratingKernelWidth)
}

// RatingSimilarity is a convenience wrapper computing the stats on the fly.
func RatingSimilarity(candidateVote float64, watchedVotes []float64) float64 {
	return NewRatingStats(watchedVotes).Similarity(candidateVote)
}
