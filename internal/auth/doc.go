// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
Package auth authenticates API callers.

Callers present an HS256 JWT as "Authorization: Bearer <token>". The token
identifies the user through its user_id claim (falling back to sub).

Key Components:

  - JWTManager: token generation and validation
  - Middleware.Authenticate: verifies the token and stores *Claims in the
    request context
  - UserIDFromContext: the authenticated user for handlers

Authentication Modes (AUTH_MODE):

  - jwt (default): a valid token is required; failures answer 401 with the
    API error body and are logged through logging.SecurityLogger
  - none: verification is skipped for local development; requests are
    anonymous, so per-user endpoints still answer 401

Usage:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	mw := auth.NewMiddleware(jwtManager, cfg.Security.AuthMode)
	r.Use(func(next http.Handler) http.Handler {
	    return mw.Authenticate(next.ServeHTTP)
	})

	userID := auth.UserIDFromContext(r.Context())
*/
package auth
