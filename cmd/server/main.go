// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package main is the entry point for the Strategist server.
//
// Strategist builds personalized conference schedules: it scores an enriched
// session catalog against an attendee profile, resolves time-slot conflicts,
// and serves the assembled plan over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, YAML file, and
//     environment variables (Koanf v2)
//  2. Logging: zerolog, JSON by default
//  3. Catalog: initial snapshot load plus a supervised background refresher
//  4. Engine: scoring weights, tier thresholds, and assembly knobs, with
//     optional JSON overrides
//  5. Store: plan persistence (in-memory or BadgerDB), optionally wrapped
//     in a circuit breaker
//  6. HTTP server: Chi router under Suture supervision
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (STRATEGIST_ prefix, e.g. STRATEGIST_SERVER_PORT)
//   - Config file (strategist.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops accepting
// connections, drains in-flight requests within the configured timeout, and
// closes the plan store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"

	"github.com/summitry/strategist/internal/api"
	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/config"
	"github.com/summitry/strategist/internal/engine"
	"github.com/summitry/strategist/internal/logging"
	"github.com/summitry/strategist/internal/store"
	"github.com/summitry/strategist/internal/supervisor"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting strategist")

	engCfg, err := loadEngineConfig(cfg.Engine.ConfigPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load engine config")
	}
	eng, err := engine.New(engCfg, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize engine")
	}

	// The first catalog load is fatal on failure: a server with no catalog
	// cannot answer anything. Later refresh failures only log and keep the
	// previous snapshot.
	loader := catalog.NewLoader(cfg.Catalog.EventsPath, cfg.Catalog.ExhibitorsPath)
	snap, err := loader.Load()
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.EventsPath).Msg("Failed to load catalog")
	}
	logging.Info().
		Str("fingerprint", snap.Fingerprint).
		Int("events", len(snap.Events)).
		Int("exhibitors", len(snap.Exhibitors)).
		Msg("Catalog loaded")

	refresher := catalog.NewRefresher(loader, snap, cfg.Catalog.RefreshInterval, logging.Logger())

	planStore, closeStore, err := buildStore(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize plan store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			logging.Error().Err(err).Msg("Error closing plan store")
		}
	}()

	handler := api.NewHandler(eng, refresher, planStore, logging.Logger())
	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		CORSOrigins:        cfg.Server.CORSOrigins,
	})
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddCatalogService(refresher)
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
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

	logging.Info().Msg("Server stopped gracefully")
}

// loadEngineConfig returns the engine defaults, optionally overlaid with a
// JSON overrides file. Overrides are partial: absent fields keep their
// defaults.
func loadEngineConfig(path string) (*engine.Config, error) {
	cfg := engine.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read engine config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse engine config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config %s: %w", path, err)
	}

	logging.Info().Str("path", path).Msg("Engine config overrides applied")
	return cfg, nil
}

// buildStore constructs the configured plan store and returns it with its
// close function.
func buildStore(cfg *config.Config) (store.PlanStore, func() error, error) {
	var (
		planStore  store.PlanStore
		closeStore = func() error { return nil }
	)

	switch cfg.Store.Backend {
	case "badger":
		badgerStore, err := store.NewBadgerStore(cfg.Store.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open badger store at %s: %w", cfg.Store.Dir, err)
		}
		planStore = badgerStore
		closeStore = badgerStore.Close
		logging.Info().Str("dir", cfg.Store.Dir).Msg("BadgerDB plan store opened")
	default:
		planStore = store.NewMemoryStore()
		logging.Info().Msg("In-memory plan store (plans do not survive restarts)")
	}

	if cfg.Store.Breaker {
		planStore = store.NewBreakerStore(planStore, logging.Logger())
	}
	return planStore, closeStore, nil
}
