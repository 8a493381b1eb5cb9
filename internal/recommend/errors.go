// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package recommend

import "errors"

var (
	// ErrNoWatchHistory is returned when the user has not watched anything.
	ErrNoWatchHistory = errors.New("recommendations require watched movies")

	// ErrNoCandidates is returned when every eligible catalog movie has
	// already been watched.
	ErrNoCandidates = errors.New("no unwatched movies available for recommendations")

	// ErrInvalidUser is returned for an empty user id.
	ErrInvalidUser = errors.New("user id is required")

	// ErrForceRefreshThrottled is returned when a forced refresh exceeds the
	// user's refresh budget.
	ErrForceRefreshThrottled = errors.New("forced refresh rate limit exceeded")

	// ErrComputationPanicked wraps a panic recovered from a scoring pass.
	ErrComputationPanicked = errors.New("recommendation pass panicked")
)
