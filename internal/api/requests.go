// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/recommend"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/validation"
)

// MaxLimit is the largest page a client may request.
const MaxLimit = 100

// RecommendationsRequest holds the validated query of
// GET /api/v1/movies/recommendations.
type RecommendationsRequest struct {
	Limit        int  `query:"limit" validate:"min=1,max=100"`
	ForceRefresh bool `query:"forceRefresh"`
}

// parseRecommendationsRequest reads and validates the query string. Absent
// parameters take their defaults; present but malformed ones are errors.
func parseRecommendationsRequest(r *http.Request) (*RecommendationsRequest, *models.APIError) {
	q := r.URL.Query()
	req := &RecommendationsRequest{Limit: recommend.DefaultLimit}

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, paramError("limit", "must be an integer", raw)
		}
		req.Limit = limit
	}

	if raw := strings.TrimSpace(q.Get("forceRefresh")); raw != "" {
		force, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, paramError("forceRefresh", "must be a boolean", raw)
		}
		req.ForceRefresh = force
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		apiErr := verr.ToAPIError()
		return nil, &models.APIError{
			Code:    apiErr.Code,
			Details: withMessage(apiErr.Details, apiErr.Message),
		}
	}
	return req, nil
}

func paramError(field, message, value string) *models.APIError {
	return &models.APIError{
		Code: ErrCodeValidation,
		Details: map[string]interface{}{
			"field":   field,
			"message": field + " " + message,
			"value":   value,
		},
	}
}

func withMessage(details map[string]interface{}, message string) map[string]interface{} {
	if details == nil {
		details = make(map[string]interface{}, 1)
	}
	details["message"] = message
	return details
}
