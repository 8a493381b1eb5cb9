// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
)

// serveWithRequestID runs RequestID with an optional inbound header and
// returns the response header value and the ID seen by the handler.
func serveWithRequestID(t *testing.T, inbound string) (header, seen string) {
	t.Helper()

	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/recommendations", nil)
	if inbound != "" {
		req.Header.Set(RequestIDHeader, inbound)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)

	return rec.Header().Get(RequestIDHeader), seen
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	header, seen := serveWithRequestID(t, "")

	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("response X-Request-ID is not a valid UUID: %v", err)
	}
	if seen != header {
		t.Errorf("context ID (%s) doesn't match response header ID (%s)", seen, header)
	}
}

func TestRequestID_PreservesExistingID(t *testing.T) {
	existingID := "existing-request-id-12345"
	header, seen := serveWithRequestID(t, existingID)

	if header != existingID || seen != existingID {
		t.Errorf("got header %q, context %q; want %q", header, seen, existingID)
	}
}

func TestRequestID_ReplacesUnsafeID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
	}{
		{"newline injection", "abc\ninjected=1"},
		{"quote", `abc"def`},
		{"space", "abc def"},
		{"too long", strings.Repeat("a", maxRequestIDLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, seen := serveWithRequestID(t, tt.inbound)
			if header == tt.inbound {
				t.Errorf("unsafe ID %q was propagated", tt.inbound)
			}
			if _, err := uuid.Parse(header); err != nil {
				t.Errorf("replacement is not a UUID: %q", header)
			}
			if seen != header {
				t.Errorf("context ID %q != header %q", seen, header)
			}
		})
	}
}

func TestValidRequestID(t *testing.T) {
	valid := []string{"a", "req-1", "trace_id.42:7", strings.Repeat("x", maxRequestIDLength)}
	for _, id := range valid {
		if !validRequestID(id) {
			t.Errorf("validRequestID(%q) = false", id)
		}
	}
	invalid := []string{"", "a b", "ünicode", "a/b"}
	for _, id := range invalid {
		if validRequestID(id) {
			t.Errorf("validRequestID(%q) = true", id)
		}
	}
}
