// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"fmt"

	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/metrics"
	"github.com/summitry/strategist/internal/profile"
)

// StalenessReport describes how a persisted plan relates to the current
// catalog. Staleness is always an explicit signal, never an exception; a
// stale plan remains fully usable until the attendee decides otherwise.
type StalenessReport struct {
	// Stale is true when the plan no longer matches the current catalog.
	Stale bool `json:"stale"`

	// MissingIDs lists referenced event ids absent from the catalog.
	MissingIDs []int `json:"missingIds,omitempty"`

	// FingerprintChanged is true when the catalog content changed since
	// the plan was saved, even if every referenced id still resolves.
	FingerprintChanged bool `json:"fingerprintChanged"`
}

// CheckStaleness compares a persisted plan's event ids and catalog
// fingerprint against the current snapshot.
func CheckStaleness(saved []SavedPlanEvent, storedFingerprint string, snap *catalog.Snapshot) StalenessReport {
	report := StalenessReport{
		FingerprintChanged: storedFingerprint != snap.Fingerprint,
	}
	for _, sp := range saved {
		if snap.EventByID(sp.ID) == nil {
			report.MissingIDs = append(report.MissingIDs, sp.ID)
		}
	}
	report.Stale = report.FingerprintChanged || len(report.MissingIDs) > 0
	if report.Stale {
		metrics.StalePlansDetected.Inc()
	}
	return report
}

// Regenerate rebuilds a stale plan against the current catalog. The old
// plan's manual events are re-inserted when their ids still resolve, and
// pinned events are carried over verbatim. The old plan is never modified;
// if regeneration fails the caller keeps it untouched. Plan edits do not
// transfer: pins, dismissals, and swaps are tied to the old plan's slot
// identities, so the caller must clear them after a successful
// regeneration.
func (e *Engine) Regenerate(old *Plan, snap *catalog.Snapshot, p *profile.UserProfile) (*Plan, error) {
	if p == nil {
		return nil, fmt.Errorf("regenerate: profile inputs unavailable")
	}

	plan, err := e.BuildPlan(snap, p)
	if err != nil {
		return nil, fmt.Errorf("regenerate: %w", err)
	}

	if old != nil {
		e.carryOverManual(plan, old, snap)
		e.carryOverPinned(plan, old, snap)
	}

	metrics.PlansRegenerated.Inc()
	e.logger.Info().
		Str("fingerprint", snap.Fingerprint).
		Int("primaries", plan.TotalEvents).
		Msg("plan regenerated against current catalog")
	return plan, nil
}

// carryOverManual re-inserts the old plan's manual events whose ids still
// exist in the catalog, skipping ones the new plan already scheduled.
func (e *Engine) carryOverManual(plan, old *Plan, snap *catalog.Snapshot) {
	scheduled := scheduledEventIDs(plan)
	for d := range old.Schedule {
		for i := range old.Schedule[d].Events {
			se := &old.Schedule[d].Events[i]
			if !se.IsManual {
				continue
			}
			current := snap.EventByID(se.Event.ID)
			if current == nil {
				continue
			}
			if _, exists := scheduled[current.EventID]; exists {
				continue
			}
			e.InsertManual(plan, current)
			scheduled[current.EventID] = struct{}{}
		}
	}
}

// carryOverPinned preserves pinned events verbatim: already-scheduled ones
// keep their pin, vanished ones are re-inserted with their old score and
// tier as long as their id still resolves.
func (e *Engine) carryOverPinned(plan, old *Plan, snap *catalog.Snapshot) {
	scheduled := scheduledEventIDs(plan)
	for d := range old.Schedule {
		for i := range old.Schedule[d].Events {
			se := &old.Schedule[d].Events[i]
			if !se.Pinned {
				continue
			}
			current := snap.EventByID(se.Event.ID)
			if current == nil {
				continue
			}
			if _, exists := scheduled[current.EventID]; exists {
				pinEvent(plan, current.EventID)
				continue
			}
			carried := *se
			carried.Event = current
			carried.IsFallback = false
			carried.FallbackFor = ""
			carried.Alternatives = nil
			insertIntoDay(plan, carried)
			scheduled[current.EventID] = struct{}{}
		}
	}
	recountPrimaries(plan)
}

func insertIntoDay(plan *Plan, se ScoredEvent) {
	for d := range plan.Schedule {
		day := &plan.Schedule[d]
		if day.Date != se.Event.Date {
			continue
		}
		day.Events = append(day.Events, se)
		sortChronologically(day.Events)
		return
	}
	plan.Schedule = append(plan.Schedule, DaySchedule{Date: se.Event.Date, Events: []ScoredEvent{se}})
	sortDays(plan.Schedule)
}

func scheduledEventIDs(plan *Plan) map[string]struct{} {
	ids := make(map[string]struct{})
	for d := range plan.Schedule {
		for i := range plan.Schedule[d].Events {
			ids[plan.Schedule[d].Events[i].Event.EventID] = struct{}{}
		}
	}
	return ids
}
