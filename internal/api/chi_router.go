// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/auth"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/middleware"
)

// Router wires the handlers and middleware into a chi router.
type Router struct {
	recommend     *RecommendHandler
	health        *HealthHandler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router.
func NewRouter(recommend *RecommendHandler, health *HealthHandler, authMiddleware *auth.Middleware, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		recommend:     recommend,
		health:        health,
		auth:          authMiddleware,
		chiMiddleware: chiMw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.AccessLog(middleware.DefaultSlowRequestThreshold)))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.health.HealthLive)
		r.Get("/ready", router.health.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Movie Endpoints
	// ========================
	r.Route("/api/v1/movies", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.auth.Authenticate))

		r.Get("/recommendations", router.recommend.GetRecommendations)
		r.Delete("/recommendations/cache", router.recommend.ClearCache)
	})

	return r
}
