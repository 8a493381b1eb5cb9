// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
)

type contextKey string

// ClaimsContextKey holds the *Claims of an authenticated request.
const ClaimsContextKey contextKey = "claims"

// Authentication modes.
const (
	AuthModeJWT  = "jwt"
	AuthModeNone = "none"
)

// ErrorCodeUnauthorized is the API error code of a rejected request.
const ErrorCodeUnauthorized = "UNAUTHORIZED"

// Middleware authenticates API requests.
type Middleware struct {
	jwtManager *JWTManager
	authMode   string
	security   *logging.SecurityLogger
}

// NewMiddleware creates the authentication middleware. jwtManager may be nil
// when authMode is "none".
func NewMiddleware(jwtManager *JWTManager, authMode string) *Middleware {
	return &Middleware{
		jwtManager: jwtManager,
		authMode:   authMode,
		security:   logging.NewSecurityLogger(),
	}
}

// Authenticate requires a valid bearer token and stores its claims in the
// request context. In "none" mode requests pass through anonymously and
// handlers that need a user still answer 401.
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == AuthModeNone {
			next(w, r)
			return
		}

		token, err := extractBearerToken(r)
		if err != nil {
			m.reject(w, r, err, "Authentication required")
			return
		}
		if m.jwtManager == nil {
			m.reject(w, r, errors.New("no token verifier configured"), "Authentication required")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.reject(w, r, err, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		ctx = logging.ContextWithUserID(ctx, claims.Identity())
		next(w, r.WithContext(ctx))
	}
}

// reject logs the failure and writes a 401 JSON error.
func (m *Middleware) reject(w http.ResponseWriter, r *http.Request, err error, message string) {
	m.security.LogAuthFailure(r.RemoteAddr, r.UserAgent(), r.URL.Path, err.Error())
	WriteUnauthorized(w, r, message)
}

// WriteUnauthorized writes a 401 response in the API error format.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	body := map[string]interface{}{
		"success": false,
		"message": message,
		"error": map[string]string{
			"code":       ErrorCodeUnauthorized,
			"request_id": logging.RequestIDFromContext(r.Context()),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="movierec"`)
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write unauthorized response")
	}
}

// extractBearerToken returns the token of an "Authorization: Bearer" header.
func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing authorization header")
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}

// ClaimsFromContext returns the claims of an authenticated request.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// UserIDFromContext returns the authenticated user ID, or "" for anonymous
// requests.
func UserIDFromContext(ctx context.Context) string {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.Identity()
	}
	return ""
}
