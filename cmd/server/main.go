// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/mediapager/internal/api"
	"github.com/tomtom215/mediapager/internal/cache"
	"github.com/tomtom215/mediapager/internal/config"
	"github.com/tomtom215/mediapager/internal/cursor"
	"github.com/tomtom215/mediapager/internal/database"
	"github.com/tomtom215/mediapager/internal/logging"
	"github.com/tomtom215/mediapager/internal/metrics"
	"github.com/tomtom215/mediapager/internal/monitor"
	"github.com/tomtom215/mediapager/internal/pagination"
	"github.com/tomtom215/mediapager/internal/supervisor"
	"github.com/tomtom215/mediapager/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("environment", cfg.Server.Environment).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Starting mediapager")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled")
	}

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Mediapager stopped with error")
	}
	logging.Info().Msg("Mediapager stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database, cfg.Breaker)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedItems > 0 {
		n, err := db.SeedDemoData(ctx, cfg.Database.SeedItems)
		if err != nil {
			return err
		}
		logging.Info().Int("inserted", n).Msg("Demo catalogue seeded")
	}

	perf := monitor.New(cfg.Monitor.Capacity,
		monitor.WithWindow(cfg.Monitor.Window),
		monitor.WithSlowQueryThreshold(cfg.Monitor.SlowQueryThreshold),
	)
	opts := []pagination.Option{pagination.WithRecorder(perf)}

	// Interfaces stay nil when caching is off so handlers can tell.
	var (
		pageCache  pagination.PageCache
		adminCache api.PageCache
	)
	if cfg.Cache.Enabled {
		c := cache.New(cfg.Cache.Capacity, cfg.Cache.PageTTL, cache.WithName("pages"))
		pageCache, adminCache = c, c
		opts = append(opts, pagination.WithCache(c))
	}

	pages := pagination.NewService(db, cursor.NewMediaRegistry(), pagination.ConfigFrom(cfg), opts...)
	catalog := pagination.NewCatalog(db, pageCache)

	handler := api.NewHandler(pages, catalog, adminCache, perf, db)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}
	tree.AddTelemetryService(services.NewGradeService(perf, cfg.Monitor.Window/2))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	err = <-tree.ServeBackground(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
