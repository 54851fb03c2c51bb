// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package catalog

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Loader reads catalog files from disk and produces validated snapshots.
type Loader struct {
	eventsPath     string
	exhibitorsPath string
	validate       *validator.Validate
}

// NewLoader returns a loader for the given catalog file paths. The
// exhibitors path may be empty, in which case snapshots carry no exhibitors.
func NewLoader(eventsPath, exhibitorsPath string) *Loader {
	return &Loader{
		eventsPath:     eventsPath,
		exhibitorsPath: exhibitorsPath,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads, validates, and normalizes the catalog files into a snapshot.
// A record that fails validation fails the whole load; a partially valid
// catalog is worse than a stale one.
func (l *Loader) Load() (*Snapshot, error) {
	events, err := loadJSONFile[Event](l.eventsPath)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("load events: %s contains no events", l.eventsPath)
	}

	var exhibitors []Exhibitor
	if l.exhibitorsPath != "" {
		exhibitors, err = loadJSONFile[Exhibitor](l.exhibitorsPath)
		if err != nil {
			return nil, fmt.Errorf("load exhibitors: %w", err)
		}
	}

	for i := range events {
		events[i].normalize()
		if err := l.validate.Struct(&events[i]); err != nil {
			return nil, fmt.Errorf("event %d (id=%d): %w", i, events[i].ID, err)
		}
	}
	for i := range exhibitors {
		exhibitors[i].normalize()
		if err := l.validate.Struct(&exhibitors[i]); err != nil {
			return nil, fmt.Errorf("exhibitor %d (id=%d): %w", i, exhibitors[i].ID, err)
		}
	}

	return NewSnapshot(events, exhibitors), nil
}

func loadJSONFile[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
