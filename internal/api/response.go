// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// Error codes reported in the error.code field.
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeNoWatchHistory  = "NO_WATCH_HISTORY"
	ErrCodeNoCandidates    = "NO_CANDIDATES"
	ErrCodeTimeout         = "COMPUTATION_TIMEOUT"
	ErrCodeUnavailable     = "SERVICE_UNAVAILABLE"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeRateLimited     = "RATE_LIMIT_EXCEEDED"
	msgInternalServerError = "Failed to generate recommendations"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with an ETag over the encoded body.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response. err, when set, is logged with the
// request context but never returned to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Int("status", status).
			Msg("API error")
	}

	respondJSON(w, status, &models.ErrorResponse{
		Success: false,
		Message: message,
		Error: &models.APIError{
			Code:      code,
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondValidationError sends a 400 carrying the validator's field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, apiErr *models.APIError, message string) {
	apiErr.RequestID = logging.RequestIDFromContext(r.Context())
	respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   apiErr,
	})
}
