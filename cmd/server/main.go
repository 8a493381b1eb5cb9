// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/api"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/auth"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/cache"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/config"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/database"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/logging"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/metrics"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/recommend"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/supervisor"
	"github.com/SametAydinhan/movie-recommender-app-sub000/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	issueToken := flag.String("issue-token", "", "print a signed token for the given user id and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of a token minted with -issue-token")
	flag.Parse()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Service: logging.DefaultService,
	})

	if *issueToken != "" {
		if err := printToken(cfg, *issueToken, *tokenTTL); err != nil {
			logging.Fatal().Err(err).Msg("Failed to issue token")
		}
		return
	}

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires every component and blocks until the supervisor tree stops.
//
//nolint:gocyclo // sequential setup steps
func run(cfg *config.Config) error {
	metrics.SetAppInfo(version, runtime.Version())
	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Str("cache_backend", cfg.Cache.Backend).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting movie recommendation service")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedPath != "" {
		stats, err := db.ImportCatalogFile(context.Background(), cfg.Database.SeedPath)
		if err != nil {
			return fmt.Errorf("import catalog %s: %w", cfg.Database.SeedPath, err)
		}
		logging.Info().
			Int("movies", stats.Movies).
			Int("users", stats.Users).
			Int("watched", stats.Watched).
			Msg("Catalog seeded")
	}

	store, err := cache.New(cfg.Cache.StoreConfig(cfg.Recommend.CacheTTL))
	if err != nil {
		return fmt.Errorf("initialize %s cache: %w", cfg.Cache.Backend, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache")
		}
	}()

	results := recommend.NewResultCache(store, cfg.Recommend.CacheTTL)
	provider := recommend.NewBreakerProvider("duckdb-catalog", db)
	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), provider, results, logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("initialize recommendation engine: %w", err)
	}

	authMiddleware, err := newAuthMiddleware(cfg)
	if err != nil {
		return err
	}

	router := api.NewRouter(
		api.NewRecommendHandler(engine),
		api.NewHealthHandler(map[string]api.Pinger{
			"database": db,
			"cache":    store,
		}),
		authMiddleware,
		api.NewChiMiddlewareFromConfig(&cfg.Security),
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	if maintainer, ok := store.(cache.Maintainer); ok {
		tree.AddStorageService(services.NewCacheMaintenanceService(maintainer, cfg.Cache.SweepInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}

func newAuthMiddleware(cfg *config.Config) (*auth.Middleware, error) {
	if cfg.Security.AuthMode == auth.AuthModeNone {
		logging.Warn().Msg("Authentication disabled (AUTH_MODE=none); every request is anonymous")
		return auth.NewMiddleware(nil, auth.AuthModeNone), nil
	}
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return nil, fmt.Errorf("initialize authentication: %w", err)
	}
	return auth.NewMiddleware(jwtManager, auth.AuthModeJWT), nil
}

func printToken(cfg *config.Config, userID string, ttl time.Duration) error {
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return err
	}
	token, err := jwtManager.GenerateToken(userID, ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, token)
	return err
}
