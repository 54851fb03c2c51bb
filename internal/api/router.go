// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the transport-level knobs the router needs.
type RouterConfig struct {
	// RateLimitPerMinute bounds requests per client IP across the API
	// surface. Zero disables rate limiting.
	RateLimitPerMinute int

	// CORSOrigins lists allowed browser origins. Empty disables CORS
	// entirely, which rejects all cross-origin browser requests.
	CORSOrigins []string
}

// NewRouter builds the HTTP handler tree.
//
// Health endpoints bypass rate limiting so orchestrator probes are never
// throttled; everything under /api/v1 shares one per-IP limit.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogging(h.logger))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimitPerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
		}

		r.Get("/catalog", h.Catalog)

		r.Route("/plans", func(r chi.Router) {
			r.Post("/", h.CreatePlan)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPlan)
				r.Delete("/", h.DeletePlan)
				r.Post("/edits", h.EditPlan)
				r.Post("/regenerate", h.RegeneratePlan)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
