// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/config"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("unexpected rate limit defaults: %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Error("CORS origins must default to empty")
	}
}

func TestNewChiMiddlewareFromConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromConfig(&config.SecurityConfig{
		CORSOrigins:     []string{"https://app.example.com"},
		RateLimitReqs:   10,
		RateLimitWindow: 30 * time.Second,
	})
	if m.config.RateLimitRequests != 10 || m.config.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit = %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
	if len(m.config.CORSAllowedOrigins) != 1 {
		t.Errorf("origins = %v", m.config.CORSAllowedOrigins)
	}

	// Zero values keep the defaults.
	m = NewChiMiddlewareFromConfig(&config.SecurityConfig{})
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("zero config did not keep defaults: %d/%v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddleware_CORS_PreflightRequest(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"https://app.example.com"},
		CORSAllowedMethods: []string{http.MethodGet, http.MethodDelete, http.MethodOptions},
		CORSAllowedHeaders: []string{"Authorization"},
		CORSMaxAge:         3600,
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/movies/recommendations/cache", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	m.CORS()(okHandler).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodDelete) {
		t.Errorf("Allow-Methods = %q, want DELETE", got)
	}
}

func TestChiMiddleware_CORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"https://app.example.com"},
		CORSAllowedMethods: []string{http.MethodGet},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	m.CORS()(okHandler).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty", got)
	}
}

func TestChiMiddleware_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 1,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: true,
	})
	h := m.RateLimit()(okHandler)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}

func TestChiMiddleware_RateLimitPerIP(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 1,
		RateLimitWindow:   time.Minute,
	})
	h := m.RateLimit()(okHandler)

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":4321"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	if w := send("10.0.0.1"); w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", w.Code)
	}
	limited := send("10.0.0.1")
	if limited.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", limited.Code)
	}
	if ct := limited.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("429 Content-Type = %q", ct)
	}
	if w := send("10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("other IP: status = %d, want 200", w.Code)
	}
}

func TestChiMiddleware_RateLimitHealthBudget(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 1,
		RateLimitWindow:   time.Minute,
	})
	health := m.RateLimitHealth()(okHandler)

	// The health budget is independent of the tight API budget.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
		req.RemoteAddr = "10.0.0.9:4321"
		w := httptest.NewRecorder()
		health.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("health request %d: status = %d, want 200", i, w.Code)
		}
	}

	tight := m.rateLimitWith(RateLimitConfig{Requests: 2, Window: time.Minute})(okHandler)
	var codes []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.9:4321"
		w := httptest.NewRecorder()
		tight.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	h := APISecurityHeaders()(okHandler)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS must not be set for plain HTTP")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Header().Get("Strict-Transport-Security") == "" {
		t.Error("expected HSTS behind a TLS-terminating proxy")
	}
}
