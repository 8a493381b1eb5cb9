// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package init and are exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Requests rejected by the rate limiter (counter)

Database Metrics:
  - duckdb_query_duration_seconds: Catalog query time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed catalog queries (counter)
    Labels: operation, table, error_type

Recommendation Metrics:
  - recommendation_requests_total: Requests by outcome (counter)
    Labels: outcome (cache, computed, empty, error, timeout)
  - recommendation_duration_seconds: End-to-end engine time (histogram)
  - recommendation_candidates_scored: Candidates per scoring pass (histogram)
  - recommendation_results: Items returned per scoring pass (histogram)
  - recommendation_force_refresh_throttled_total: Forced refreshes rejected with 429 (counter)

Cache Metrics:
  - cache_hits_total, cache_misses_total: Lookups by backend (counter)
    Labels: cache_type (memory, lru, badger, redis)
  - cache_errors_total: Backend failures (counter)
    Labels: cache_type, operation
  - cache_evictions_total: Entries removed by the sweeper (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Calls by result (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: State changes (counter)

# Example Alert

	- alert: CatalogCircuitOpen
	  expr: circuit_breaker_state{name="catalog"} == 2
	  for: 1m
	  annotations:
	    summary: "Movie catalog circuit breaker is open"
*/
package metrics
