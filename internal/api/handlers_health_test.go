// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/models"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthy(context.Context) error { return nil }

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) models.HealthResponse {
	t.Helper()
	var body models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{
		"database": pingFunc(func(context.Context) error { return errors.New("down") }),
	})
	w := httptest.NewRecorder()
	h.HealthLive(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	// Liveness ignores dependencies.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeHealth(t, w); body.Status != "alive" {
		t.Errorf("status = %q", body.Status)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checks     map[string]Pinger
		wantStatus int
		wantChecks map[string]string
	}{
		{
			name:       "all dependencies up",
			checks:     map[string]Pinger{"database": pingFunc(healthy), "cache": pingFunc(healthy)},
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"database": "ok", "cache": "ok"},
		},
		{
			name: "cache down",
			checks: map[string]Pinger{
				"database": pingFunc(healthy),
				"cache":    pingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") }),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"database": "ok", "cache": "unavailable"},
		},
		{
			name:       "no dependencies",
			checks:     nil,
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(tt.checks)
			w := httptest.NewRecorder()
			h.HealthReady(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			body := decodeHealth(t, w)
			for name, want := range tt.wantChecks {
				if body.Checks[name] != want {
					t.Errorf("check %s = %q, want %q", name, body.Checks[name], want)
				}
			}
			// Failure details stay in the logs.
			for _, v := range body.Checks {
				if v != "ok" && v != "unavailable" {
					t.Errorf("unexpected check value %q", v)
				}
			}
		})
	}
}

func TestHealthReady_PingHasDeadline(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{
		"database": pingFunc(func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("ping without deadline")
			}
			return nil
		}),
	})
	w := httptest.NewRecorder()
	h.HealthReady(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
