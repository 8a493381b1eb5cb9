// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

// Package services adapts long-running components to suture.Service.
//
// Each wrapper implements Serve(ctx) error and String() string. Serve blocks
// until ctx is canceled and returns an error only for failures that should
// trigger a restart.
package services
