// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// SecurityEvent is an authentication-relevant event for audit logging.
type SecurityEvent struct {
	// Event is the type of event (e.g., "auth_failed", "cache_cleared").
	Event string
	// UserID is the caller's identifier (if known).
	UserID string
	// IPAddress is the client's IP address.
	IPAddress string
	// UserAgent is the client's user agent (truncated).
	UserAgent string
	// Path is the request path.
	Path string
	// Success indicates if the operation was successful.
	Success bool
	// Error is the failure reason.
	Error string
}

// SecurityLogger logs authentication events with sensitive values masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a new security logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "auth").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// LogEvent logs a security event with automatic sanitization. Failures are
// logged at warn level.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	var e *zerolog.Event
	if event.Success {
		e = l.logger.Info().Str("status", "success")
	} else {
		e = l.logger.Warn().Str("status", "failed")
	}
	e = e.Str("event", event.Event)

	if event.UserID != "" {
		e = e.Str("user_id", SanitizeUserID(event.UserID))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.Path != "" {
		e = e.Str("path", event.Path)
	}
	if event.Error != "" && !event.Success {
		e = e.Str("error", SanitizeError(event.Error))
	}

	e.Msg("")
}

// LogAuthFailure logs a rejected request.
func (l *SecurityLogger) LogAuthFailure(ip, userAgent, path, reason string) {
	l.LogEvent(&SecurityEvent{
		Event:     "auth_failed",
		IPAddress: ip,
		UserAgent: userAgent,
		Path:      path,
		Error:     reason,
	})
}

// LogCacheCleared logs a user clearing their cached recommendations.
func (l *SecurityLogger) LogCacheCleared(userID, ip string) {
	l.LogEvent(&SecurityEvent{
		Event:     "cache_cleared",
		UserID:    userID,
		IPAddress: ip,
		Success:   true,
	})
}

// SanitizeToken masks a token, showing only first and last 4 characters.
// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..." -> "eyJh...kpXV"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeUserID masks a user ID for privacy.
// Example: "user-12345678" -> "user...5678"
func SanitizeUserID(userID string) string {
	if userID == "" {
		return ""
	}
	if len(userID) <= 8 {
		return "***"
	}
	return userID[:4] + "..." + userID[len(userID)-4:]
}

// SanitizeError replaces error messages that may carry credentials with a
// generic message and truncates the rest.
func SanitizeError(err string) string {
	sensitivePatterns := []string{
		"password",
		"secret",
		"token",
		"bearer",
		"authorization",
		"cookie",
		"eyj", // base64 JWT header
	}

	lowerErr := strings.ToLower(err)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerErr, pattern) {
			return "authentication error"
		}
	}

	return truncateString(err, 200)
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
