// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
Package middleware provides HTTP middleware for the API router.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and stores it in the
    logging context
  - AccessLog: one structured log line per request, escalated for slow or
    failing requests
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern

All middleware uses the func(http.HandlerFunc) http.HandlerFunc shape; the
api package adapts it for chi's r.Use.

Middleware Stack:

	r.Use(adapt(middleware.RequestID))
	r.Use(adapt(middleware.AccessLog(time.Second)))
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(adapt(middleware.PrometheusMetrics))
	    ...
	})
*/
package middleware
