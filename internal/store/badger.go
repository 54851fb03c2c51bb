// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const planKeyPrefix = "plan:"

// BadgerStore implements PlanStore on BadgerDB for durable storage across
// restarts.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a BadgerDB-backed plan store at dir.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStoreWithDB wraps an already-open BadgerDB handle.
func NewBadgerStoreWithDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// SavePlan implements PlanStore.
func (s *BadgerStore) SavePlan(ctx context.Context, record *PlanRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(planKeyPrefix+record.ID), data)
	})
}

// LoadPlan implements PlanStore.
func (s *BadgerStore) LoadPlan(ctx context.Context, id string) (*PlanRecord, error) {
	var record PlanRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(planKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrPlanNotFound
		}
		if err != nil {
			return fmt.Errorf("get plan: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeletePlan implements PlanStore.
func (s *BadgerStore) DeletePlan(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(planKeyPrefix + id))
	})
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
