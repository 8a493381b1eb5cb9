// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package models

import (
	"time"
)

// RecommendationsResponse is the body of GET /api/v1/movies/recommendations.
//
// Example:
//
//	{
//	  "success": true,
//	  "recommendations": [{"id": 603, "similarity_score": 0.95, ...}],
//	  "computationTimeMs": 412,
//	  "fromCache": false
//	}
//
// When scoring yields nothing, Recommendations is an empty array and
// Message explains why.
type RecommendationsResponse struct {
	Success           bool             `json:"success"`
	Recommendations   []Recommendation `json:"recommendations"`
	ComputationTimeMS int64            `json:"computationTimeMs"`
	FromCache         bool             `json:"fromCache"`
	Message           string           `json:"message,omitempty"`
}

// MessageResponse is a success acknowledgement with a human readable message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
//
//	{
//	  "success": false,
//	  "message": "recommendations require watched movies",
//	  "error": {"code": "NO_WATCH_HISTORY", "request_id": "..."}
//	}
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError carries the machine readable part of an error response.
type APIError struct {
	Code      string                 `json:"code"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}
