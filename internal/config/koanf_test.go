// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/recommend"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Timeout <= cfg.Recommend.ComputeTimeout {
		t.Errorf("Server.Timeout %v should exceed ComputeTimeout %v", cfg.Server.Timeout, cfg.Recommend.ComputeTimeout)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.Recommend.CacheTTL != 24*time.Hour {
		t.Errorf("Recommend.CacheTTL = %v, want 24h", cfg.Recommend.CacheTTL)
	}
	if cfg.Recommend.MaxCandidates != recommend.DefaultMaxCandidates {
		t.Errorf("Recommend.MaxCandidates = %d, want %d", cfg.Recommend.MaxCandidates, recommend.DefaultMaxCandidates)
	}
	if !cfg.Recommend.JitterEnabled {
		t.Error("Recommend.JitterEnabled should default to true")
	}
	if cfg.Recommend.ForceRefreshPerMinute != 0 {
		t.Errorf("Recommend.ForceRefreshPerMinute = %v, want 0 (unthrottled)", cfg.Recommend.ForceRefreshPerMinute)
	}
	if cfg.Security.AuthMode != "jwt" {
		t.Errorf("Security.AuthMode = %q, want jwt", cfg.Security.AuthMode)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_PATH", "database.path"},
		{"CACHE_BACKEND", "cache.backend"},
		{"REDIS_URL", "cache.redis_url"},
		{"RECOMMEND_JITTER_SEED", "recommend.jitter_seed"},
		{"JWT_SECRET", "security.jwt_secret"},
		{"log_level", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("CACHE_BACKEND", "lru")
	t.Setenv("CACHE_CAPACITY", "500")
	t.Setenv("RECOMMEND_CACHE_TTL", "2h")
	t.Setenv("RECOMMEND_JITTER_ENABLED", "false")
	t.Setenv("RECOMMEND_JITTER_SEED", "42")
	t.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Cache.Backend != "lru" || cfg.Cache.Capacity != 500 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Recommend.CacheTTL != 2*time.Hour {
		t.Errorf("Recommend.CacheTTL = %v, want 2h", cfg.Recommend.CacheTTL)
	}
	if cfg.Recommend.JitterEnabled || cfg.Recommend.JitterSeed != 42 {
		t.Errorf("jitter = %v/%d, want false/42", cfg.Recommend.JitterEnabled, cfg.Recommend.JitterSeed)
	}
	want := []string{"https://a.example.org", "https://b.example.org"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	// Untouched values keep their defaults.
	if cfg.Recommend.BatchSize != recommend.DefaultBatchSize {
		t.Errorf("Recommend.BatchSize = %d, want default", cfg.Recommend.BatchSize)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
database:
  path: ` + filepath.Join(dir, "movies.duckdb") + `
  seed_path: /seed/catalog.json
cache:
  backend: badger
  badger_path: ` + filepath.Join(dir, "cache") + `
recommend:
  workers: 2
  force_refresh_per_minute: 3
security:
  auth_mode: none
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn") // env beats file

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.SeedPath != "/seed/catalog.json" {
		t.Errorf("Database.SeedPath = %q", cfg.Database.SeedPath)
	}
	if cfg.Cache.Backend != "badger" {
		t.Errorf("Cache.Backend = %q, want badger", cfg.Cache.Backend)
	}
	if cfg.Recommend.Workers != 2 || cfg.Recommend.ForceRefreshPerMinute != 3 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Security.AuthMode != "none" {
		t.Errorf("Security.AuthMode = %q, want none", cfg.Security.AuthMode)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want warn/console", cfg.Logging)
	}
}

func TestLoadWithKoanf_InvalidConfig(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() should fail without a JWT secret")
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}
