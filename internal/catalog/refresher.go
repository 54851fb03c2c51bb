// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/summitry/strategist/internal/metrics"
)

// Provider exposes the current catalog snapshot to readers.
type Provider interface {
	// Current returns the active snapshot. It never returns nil once the
	// initial load has succeeded.
	Current() *Snapshot
}

// Refresher owns the active snapshot and periodically reloads the catalog
// files, swapping in a new snapshot when the content fingerprint changes.
// It implements suture.Service and is run under the process supervisor.
type Refresher struct {
	loader   *Loader
	interval time.Duration
	logger   zerolog.Logger
	current  atomic.Pointer[Snapshot]
}

// NewRefresher builds a refresher around an already-loaded initial snapshot.
// If interval is zero or negative, periodic refresh is disabled and Serve
// blocks until the context is done.
func NewRefresher(loader *Loader, initial *Snapshot, interval time.Duration, logger zerolog.Logger) *Refresher {
	r := &Refresher{
		loader:   loader,
		interval: interval,
		logger:   logger.With().Str("component", "catalog_refresher").Logger(),
	}
	r.current.Store(initial)
	return r
}

// Current implements Provider.
func (r *Refresher) Current() *Snapshot {
	return r.current.Load()
}

// Serve runs the refresh loop until ctx is done.
func (r *Refresher) Serve(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.Info().Msg("periodic catalog refresh disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	r.logger.Info().
		Dur("interval", r.interval).
		Str("fingerprint", r.Current().Fingerprint).
		Msg("catalog refresher started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.refresh()
		}
	}
}

// refresh reloads the catalog files and swaps the snapshot if content
// changed. A failed reload keeps the previous snapshot; readers are never
// left without a catalog.
func (r *Refresher) refresh() {
	next, err := r.loader.Load()
	if err != nil {
		metrics.RecordCatalogRefresh("error")
		r.logger.Warn().Err(err).Msg("catalog reload failed, keeping previous snapshot")
		return
	}

	prev := r.Current()
	if next.Fingerprint == prev.Fingerprint {
		metrics.RecordCatalogRefresh("unchanged")
		return
	}

	r.current.Store(next)
	metrics.RecordCatalogRefresh("swapped")
	metrics.SetCatalogSize(len(next.Events), len(next.Exhibitors))
	r.logger.Info().
		Str("old_fingerprint", prev.Fingerprint).
		Str("new_fingerprint", next.Fingerprint).
		Int("events", len(next.Events)).
		Int("exhibitors", len(next.Exhibitors)).
		Msg("catalog snapshot swapped")
}

// StaticProvider wraps a fixed snapshot, for tests and one-shot tooling.
type StaticProvider struct {
	Snapshot *Snapshot
}

// Current implements Provider.
func (p *StaticProvider) Current() *Snapshot {
	return p.Snapshot
}
