// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package engine implements the recommendation pipeline: scoring catalog
// events and exhibitors against an attendee profile, resolving slot
// conflicts, classifying tiers, and assembling a day-partitioned plan.
//
// The pipeline is pure computation over immutable inputs. An Engine is
// safe for concurrent use; each call owns its profile and produces its own
// plan, and the same catalog snapshot and profile always yield the same
// plan.
package engine

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Engine scores events and assembles recommendation plans.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// New creates an engine with the given configuration. A nil config uses
// DefaultConfig.
func New(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "engine").Logger(),
	}, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}
