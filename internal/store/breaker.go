// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/summitry/strategist/internal/metrics"
)

// BreakerStore wraps a PlanStore with a circuit breaker so a failing
// backend cannot stall plan sessions. When the circuit is open, saves and
// deletes fail fast and the caller keeps operating on its in-memory plan;
// loads fail fast with the breaker error and the caller falls back to
// regeneration.
type BreakerStore struct {
	inner  PlanStore
	cb     *gobreaker.CircuitBreaker[*PlanRecord]
	logger zerolog.Logger
}

// NewBreakerStore wraps inner with a circuit breaker that opens after a
// 60% failure rate over at least 10 requests and probes recovery after 30
// seconds.
func NewBreakerStore(inner PlanStore, logger zerolog.Logger) *BreakerStore {
	log := logger.With().Str("component", "plan_store_breaker").Logger()

	metrics.StoreBreakerState.Set(0)

	cb := gobreaker.NewCircuitBreaker[*PlanRecord](gobreaker.Settings{
		Name:        "plan-store",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		// A missing plan is an answer, not a backend failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrPlanNotFound)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("plan store circuit state changed")
			metrics.StoreBreakerState.Set(stateToFloat(to))
		},
	})

	return &BreakerStore{inner: inner, cb: cb, logger: log}
}

// SavePlan implements PlanStore.
func (s *BreakerStore) SavePlan(ctx context.Context, record *PlanRecord) error {
	_, err := s.cb.Execute(func() (*PlanRecord, error) {
		if err := s.inner.SavePlan(ctx, record); err != nil {
			return nil, err
		}
		return nil, nil
	})
	recordOutcome("save", err)
	return err
}

// LoadPlan implements PlanStore.
func (s *BreakerStore) LoadPlan(ctx context.Context, id string) (*PlanRecord, error) {
	record, err := s.cb.Execute(func() (*PlanRecord, error) {
		return s.inner.LoadPlan(ctx, id)
	})
	recordOutcome("load", err)
	return record, err
}

// DeletePlan implements PlanStore.
func (s *BreakerStore) DeletePlan(ctx context.Context, id string) error {
	_, err := s.cb.Execute(func() (*PlanRecord, error) {
		return nil, s.inner.DeletePlan(ctx, id)
	})
	recordOutcome("delete", err)
	return err
}

func recordOutcome(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordStoreOperation(operation, status)
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
