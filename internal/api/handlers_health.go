// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

// readyTimeout bounds each dependency check of HealthReady.
const readyTimeout = 2 * time.Second

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks    map[string]Pinger
	startTime time.Time
}

// NewHealthHandler creates a health handler over the named dependencies.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		checks:    checks,
		startTime: time.Now(),
	}
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *HealthHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
		Checks: map[string]string{
			"uptime": time.Since(h.startTime).Round(time.Second).String(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if every dependency answers a ping, 503 otherwise.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	ready := true
	for _, name := range names {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		err := h.checks[name].Ping(ctx)
		cancel()
		if err != nil {
			ready = false
			checks[name] = "unavailable"
			logging.Ctx(r.Context()).Warn().Err(err).Str("dependency", name).Msg("Readiness check failed")
			continue
		}
		checks[name] = "ok"
	}

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}
	respondJSON(w, code, &models.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}
