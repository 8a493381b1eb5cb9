// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
Package config provides centralized configuration management for the movie
recommendation service.

# Configuration Sources

Configuration is layered with Koanf v2, later sources overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - Optional YAML file: CONFIG_PATH, or config.yaml in the working directory
  - Environment variables

# Sections

  - server: HTTP listener, request and shutdown timeouts, environment
  - database: DuckDB file, memory limit, threads, optional seed catalog
  - cache: recommendation cache backend (memory, lru, badger, redis)
  - recommend: scoring batch size, workers, candidate cap, TTL, jitter,
    force-refresh budget
  - security: auth mode (jwt or none), JWT secret, rate limits, CORS
  - logging: level, format, caller

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:3000)
  - HTTP_TIMEOUT: must exceed RECOMMEND_COMPUTE_TIMEOUT (default: 90s)
  - HTTP_SHUTDOWN_TIMEOUT (default: 15s)
  - ENVIRONMENT: development, staging, production

Database:
  - DUCKDB_PATH (default: /data/movies.duckdb)
  - DUCKDB_MAX_MEMORY (default: 1GB)
  - DUCKDB_THREADS (default: 0 = NumCPU)
  - SEED_PATH: JSON catalog imported on startup

Cache:
  - CACHE_BACKEND, CACHE_CAPACITY, CACHE_BADGER_PATH, REDIS_URL,
    CACHE_KEY_PREFIX, CACHE_SWEEP_INTERVAL

Recommend:
  - RECOMMEND_BATCH_SIZE, RECOMMEND_WORKERS, RECOMMEND_MAX_CANDIDATES
  - RECOMMEND_CACHE_TTL (default: 24h)
  - RECOMMEND_COMPUTE_TIMEOUT (default: 60s)
  - RECOMMEND_JITTER_ENABLED, RECOMMEND_JITTER_SEED
  - RECOMMEND_FORCE_REFRESH_PER_MINUTE (default: 0, unlimited)

Security:
  - AUTH_MODE: jwt (default) or none (refused in production)
  - JWT_SECRET: at least 32 characters when AUTH_MODE=jwt
  - JWT_ISSUER: expected iss claim, empty accepts any
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma separated

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Validation

Section structs carry go-playground/validator tags checked through the
validation package. Cross-field rules (backend requirements, JWT secret
strength, production restrictions) are checked by Config.Validate.
*/
package config
