// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

// Package logging provides zerolog-based structured logging for the
// recommendation service.
//
// # Overview
//
//   - A global logger configured once from main with Init
//   - JSON output for production, console output for development
//   - Request-scoped fields (request_id, masked user_id) via Ctx
//   - An slog.Handler adapter so sutureslog writes to the same stream
//   - SecurityLogger for authentication failures with sensitive values masked
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:   cfg.Logging.Level,
//	    Format:  cfg.Logging.Format,
//	    Caller:  cfg.Logging.Caller,
//	    Service: logging.DefaultService,
//	})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Result cache lookup failed")
//
// # Configuration
//
// Environment Variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Never log raw tokens or user IDs; use SanitizeToken and SanitizeUserID, or
// ContextWithUserID which masks automatically.
package logging
