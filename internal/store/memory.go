// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements PlanStore in process memory. It is used when no
// data directory is configured and in tests; plans do not survive restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]*PlanRecord
}

// NewMemoryStore creates an empty in-memory plan store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]*PlanRecord)}
}

// SavePlan implements PlanStore.
func (s *MemoryStore) SavePlan(ctx context.Context, record *PlanRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.UpdatedAt = time.Now().UTC()

	clone := *record
	s.mu.Lock()
	s.plans[record.ID] = &clone
	s.mu.Unlock()
	return nil
}

// LoadPlan implements PlanStore.
func (s *MemoryStore) LoadPlan(ctx context.Context, id string) (*PlanRecord, error) {
	s.mu.RLock()
	record, ok := s.plans[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrPlanNotFound
	}
	clone := *record
	return &clone, nil
}

// DeletePlan implements PlanStore.
func (s *MemoryStore) DeletePlan(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.plans, id)
	s.mu.Unlock()
	return nil
}
