// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package metrics defines the Prometheus instrumentation for the service.
// All collectors are registered on the default registry at init time and
// exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansGenerated counts assembled plans by outcome.
	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategist_plans_generated_total",
			Help: "Total recommendation plans generated, by outcome",
		},
		[]string{"outcome"},
	)

	// PlanGenerationDuration observes end-to-end plan assembly latency.
	PlanGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "strategist_plan_generation_duration_seconds",
			Help:    "Time to score the catalog and assemble a plan",
			Buckets: prometheus.DefBuckets,
		},
	)

	// PlansRegenerated counts plan regenerations triggered by stale catalogs.
	PlansRegenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "strategist_plans_regenerated_total",
			Help: "Total plans regenerated against a newer catalog",
		},
	)

	// StalePlansDetected counts loads that found the plan out of date.
	StalePlansDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "strategist_stale_plans_detected_total",
			Help: "Total plan loads that detected catalog staleness",
		},
	)

	// PlanEditsApplied counts edit operations by kind (pin, dismiss, swap).
	PlanEditsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategist_plan_edits_applied_total",
			Help: "Total plan edit operations applied, by kind",
		},
		[]string{"kind"},
	)

	// CatalogRefreshes counts background catalog reloads by result.
	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategist_catalog_refreshes_total",
			Help: "Total background catalog reload attempts, by result",
		},
		[]string{"result"},
	)

	// CatalogEvents reports the size of the active catalog snapshot.
	CatalogEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "strategist_catalog_events",
			Help: "Events in the active catalog snapshot",
		},
	)

	// CatalogExhibitors reports exhibitors in the active snapshot.
	CatalogExhibitors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "strategist_catalog_exhibitors",
			Help: "Exhibitors in the active catalog snapshot",
		},
	)

	// StoreOperations counts plan store calls by operation and status.
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategist_store_operations_total",
			Help: "Total plan store operations, by operation and status",
		},
		[]string{"operation", "status"},
	)

	// StoreBreakerState reports the persistence circuit breaker state
	// (0=closed, 1=half-open, 2=open).
	StoreBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "strategist_store_breaker_state",
			Help: "Plan store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// HTTPRequestDuration observes API request latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "strategist_http_request_duration_seconds",
			Help:    "HTTP request latency, by method, route, and status class",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordCatalogRefresh records one background reload attempt.
func RecordCatalogRefresh(result string) {
	CatalogRefreshes.WithLabelValues(result).Inc()
}

// SetCatalogSize updates the active snapshot size gauges.
func SetCatalogSize(events, exhibitors int) {
	CatalogEvents.Set(float64(events))
	CatalogExhibitors.Set(float64(exhibitors))
}

// RecordStoreOperation records one plan store call.
func RecordStoreOperation(operation, status string) {
	StoreOperations.WithLabelValues(operation, status).Inc()
}
