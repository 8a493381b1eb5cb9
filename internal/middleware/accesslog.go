// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package middleware

import (
	"net/http"
	"time"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which requests are
// logged at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog writes one structured log line per request: debug for normal
// requests, warn for slow ones and error for 5xx responses. It must run
// inside RequestID so lines carry the request ID.
func AccessLog(slowThreshold time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowRequestThreshold
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > slowThreshold:
				event = logger.Warn().Dur("threshold", slowThreshold)
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Int("bytes", wrapper.bytes).
				Dur("duration", duration).
				Msg("HTTP request")
		}
	}
}
