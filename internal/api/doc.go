// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
Package api provides the HTTP layer of the recommendation service.

Routes:

  - GET    /api/v1/movies/recommendations?limit=25&forceRefresh=false
  - DELETE /api/v1/movies/recommendations/cache
  - GET    /api/v1/health/live
  - GET    /api/v1/health/ready
  - GET    /metrics

Every movie route requires an authenticated user (see the auth package).
Errors share one JSON shape:

	{"success": false, "message": "...", "error": {"code": "...", "request_id": "..."}}

Middleware Stack:

Global middleware runs on every route: request id, access log, real IP,
panic recovery, gzip compression and CORS. The movie group adds IP rate
limiting, security headers, Prometheus metrics and authentication.

Usage Example:

	router := api.NewRouter(
	    api.NewRecommendHandler(engine),
	    api.NewHealthHandler(map[string]api.Pinger{"database": db, "cache": store}),
	    auth.NewMiddleware(jwtManager, cfg.Security.AuthMode),
	    api.NewChiMiddlewareFromConfig(&cfg.Security),
	)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
