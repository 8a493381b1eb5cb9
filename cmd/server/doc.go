// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

// Package main is the entry point of the movie recommendation server.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, environment (Koanf v2)
//  2. Logging: zerolog, plus an slog bridge for the supervisor
//  3. Database: DuckDB movie catalog and watch history, optionally seeded
//     from a JSON catalog (SEED_PATH)
//  4. Result cache: memory, lru, badger or redis (CACHE_BACKEND)
//  5. Recommendation engine behind a circuit breaker on the catalog
//  6. Authentication: HS256 JWT bearer tokens, or none for development
//  7. HTTP server and cache maintenance under a suture supervisor tree
//
// # Issuing Tokens
//
// For local testing the binary can mint a token and exit:
//
//	JWT_SECRET=... ./movierec -issue-token alice -token-ttl 24h
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then the cache and
// database are closed.
//
// # Example Usage
//
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export DUCKDB_PATH=./movies.duckdb
//	export SEED_PATH=./catalog.json
//	./movierec
//
//	curl -H "Authorization: Bearer $TOKEN" \
//	  'http://localhost:3000/api/v1/movies/recommendations?limit=10'
package main
