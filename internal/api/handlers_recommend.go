// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package api

import (
	"context"
	"errors"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/auth"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/recommend"
)

// Recommender is the part of recommend.Engine the handlers use.
type Recommender interface {
	Recommend(ctx context.Context, userID string, opts recommend.Options) (*recommend.Result, error)
	ClearCache(ctx context.Context, userID string) error
}

// RecommendHandler handles the movie recommendation endpoints.
type RecommendHandler struct {
	engine   Recommender
	security *logging.SecurityLogger
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(engine Recommender) *RecommendHandler {
	return &RecommendHandler{
		engine:   engine,
		security: logging.NewSecurityLogger(),
	}
}

// GetRecommendations handles GET /api/v1/movies/recommendations.
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		auth.WriteUnauthorized(w, r, "Authentication required")
		return
	}

	req, apiErr := parseRecommendationsRequest(r)
	if apiErr != nil {
		message, _ := apiErr.Details["message"].(string)
		respondValidationError(w, r, apiErr, message)
		return
	}

	result, err := h.engine.Recommend(r.Context(), userID, recommend.Options{
		Limit:        req.Limit,
		ForceRefresh: req.ForceRefresh,
	})
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("count", len(result.Recommendations)).
		Bool("from_cache", result.FromCache).
		Int64("computation_ms", result.ComputationTimeMS).
		Msg("Recommendations served")

	respondJSON(w, http.StatusOK, &models.RecommendationsResponse{
		Success:           true,
		Recommendations:   result.Recommendations,
		ComputationTimeMS: result.ComputationTimeMS,
		FromCache:         result.FromCache,
		Message:           result.Message,
	})
}

// respondRecommendError maps engine errors to status codes. Internal details
// are logged, never returned.
func (h *RecommendHandler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrNoWatchHistory):
		respondError(w, r, http.StatusNotFound, ErrCodeNoWatchHistory, recommend.ErrNoWatchHistory.Error(), nil)
	case errors.Is(err, recommend.ErrNoCandidates):
		respondError(w, r, http.StatusNotFound, ErrCodeNoCandidates, recommend.ErrNoCandidates.Error(), nil)
	case errors.Is(err, recommend.ErrInvalidUser):
		auth.WriteUnauthorized(w, r, "Authentication required")
	case errors.Is(err, recommend.ErrForceRefreshThrottled):
		w.Header().Set("Retry-After", "60")
		respondError(w, r, http.StatusTooManyRequests, ErrCodeRateLimited, "Too many forced refreshes, please retry later", nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, ErrCodeTimeout, "Recommendation computation timed out", err)
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		logging.Ctx(r.Context()).Debug().Msg("Recommendation request canceled")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable, "Movie catalog temporarily unavailable", err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, msgInternalServerError, err)
	}
}

// ClearCache handles DELETE /api/v1/movies/recommendations/cache. It always
// reports success to an authenticated caller; a failing store is logged.
func (h *RecommendHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		auth.WriteUnauthorized(w, r, "Authentication required")
		return
	}

	if err := h.engine.ClearCache(r.Context(), userID); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to clear recommendation cache")
	}
	h.security.LogCacheCleared(userID, r.RemoteAddr)

	respondJSON(w, http.StatusOK, &models.MessageResponse{
		Success: true,
		Message: "Recommendation cache cleared",
	})
}
