// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
)

// echoUser writes the authenticated user ID, or "anonymous".
func echoUser(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		userID = "anonymous"
	}
	_, _ = w.Write([]byte(userID))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m := newTestManager(t, testSecurityConfig())
	mw := NewMiddleware(m, AuthModeJWT)

	token, err := m.GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(echoUser)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "user-42" {
		t.Errorf("user = %q, want user-42", rec.Body.String())
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	m := newTestManager(t, testSecurityConfig())
	mw := NewMiddleware(m, AuthModeJWT)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"bad token", "Bearer not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/recommendations", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-1"))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			called := false
			mw.Authenticate(func(http.ResponseWriter, *http.Request) { called = true })(rec, req)

			if called {
				t.Fatal("handler called for unauthenticated request")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if !strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), "Bearer") {
				t.Errorf("missing Bearer challenge")
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
				Error   struct {
					Code      string `json:"code"`
					RequestID string `json:"request_id"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success || body.Message == "" || body.Error.Code != ErrorCodeUnauthorized || body.Error.RequestID != "req-1" {
				t.Errorf("unexpected body: %+v", body)
			}
		})
	}
}

func TestAuthenticate_LowercaseScheme(t *testing.T) {
	m := newTestManager(t, testSecurityConfig())
	mw := NewMiddleware(m, AuthModeJWT)

	token, err := m.GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(echoUser)(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthenticate_NoneMode(t *testing.T) {
	mw := NewMiddleware(nil, AuthModeNone)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ignored")
	rec := httptest.NewRecorder()

	mw.Authenticate(echoUser)(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "anonymous" {
		t.Errorf("got %d %q, want 200 anonymous", rec.Code, rec.Body.String())
	}
}

func TestAuthenticate_NoManager(t *testing.T) {
	mw := NewMiddleware(nil, AuthModeJWT)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()

	mw.Authenticate(echoUser)(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestUserIDFromContext_Anonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := UserIDFromContext(req.Context()); got != "" {
		t.Errorf("UserIDFromContext() = %q, want empty", got)
	}
	if _, ok := ClaimsFromContext(req.Context()); ok {
		t.Error("ClaimsFromContext() ok for anonymous request")
	}
}
