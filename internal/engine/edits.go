// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"sort"

	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/metrics"
)

// ApplyEdits merges an attendee's accumulated edits into an assembled
// plan, in place. Edits are intent, not data: entries that no longer
// resolve against the plan or the catalog are skipped silently rather
// than failing the merge.
//
// Swaps replace a slot's primary with the named catalog event, zeroed and
// flagged manual, while keeping the outgoing primary's alternatives so the
// picker still works. Dismissals remove the primary and its fallback from
// the day; a replacement requires the swap path. Pins mark events to be
// preserved across regeneration.
func (e *Engine) ApplyEdits(plan *Plan, edits *PlanEdits, snap *catalog.Snapshot) {
	if edits.IsZero() {
		return
	}

	for slotKey, eventID := range edits.Swapped {
		if e.swapSlot(plan, slotKey, eventID, snap) {
			metrics.PlanEditsApplied.WithLabelValues("swap").Inc()
		}
	}
	for _, eventID := range edits.Dismissed {
		if dismissPrimary(plan, eventID) {
			metrics.PlanEditsApplied.WithLabelValues("dismiss").Inc()
		}
	}
	for _, eventID := range edits.Pinned {
		if pinEvent(plan, eventID) {
			metrics.PlanEditsApplied.WithLabelValues("pin").Inc()
		}
	}

	recountPrimaries(plan)
}

// swapSlot replaces the primary occupying slotKey with the named catalog
// event. The replacement carries a zero score and breakdown under the
// manual flag; a hand-picked event has no meaningful machine score. The
// slot's fallback stays with the slot and is re-pointed at the new
// primary, unless the fallback itself is what was swapped in.
func (e *Engine) swapSlot(plan *Plan, slotKey, eventID string, snap *catalog.Snapshot) bool {
	replacement := snap.EventByEventID(eventID)
	if replacement == nil {
		e.logger.Debug().Str("event_id", eventID).Msg("swap target missing from catalog, skipping")
		return false
	}

	for d := range plan.Schedule {
		day := &plan.Schedule[d]
		for i := range day.Events {
			se := &day.Events[i]
			if se.IsFallback || se.SlotKey() != slotKey {
				continue
			}
			outgoing := se.Event.EventID
			alternatives := se.Alternatives
			day.Events[i] = ScoredEvent{
				Event:        replacement,
				Tier:         TierWildcard,
				IsManual:     true,
				Alternatives: alternatives,
			}
			repointFallback(day, outgoing, replacement.EventID)
			sortChronologically(day.Events)
			return true
		}
	}
	return false
}

// repointFallback keeps a slot's fallback attached to whichever primary
// now occupies the slot. A fallback promoted by the swap itself is
// removed instead of left referencing itself.
func repointFallback(day *DaySchedule, outgoing, incoming string) {
	for i := range day.Events {
		fb := &day.Events[i]
		if !fb.IsFallback || fb.FallbackFor != outgoing {
			continue
		}
		if fb.Event.EventID == incoming {
			day.Events = append(day.Events[:i], day.Events[i+1:]...)
		} else {
			fb.FallbackFor = incoming
		}
		return
	}
}

// dismissPrimary removes the named primary and its fallback from its day.
func dismissPrimary(plan *Plan, eventID string) bool {
	for d := range plan.Schedule {
		day := &plan.Schedule[d]
		for i := range day.Events {
			se := &day.Events[i]
			if se.IsFallback || se.Event.EventID != eventID {
				continue
			}
			kept := day.Events[:0]
			for j := range day.Events {
				other := &day.Events[j]
				if other.Event.EventID == eventID {
					continue
				}
				if other.IsFallback && other.FallbackFor == eventID {
					continue
				}
				kept = append(kept, *other)
			}
			day.Events = kept
			return true
		}
	}
	return false
}

// pinEvent marks the named event as pinned.
func pinEvent(plan *Plan, eventID string) bool {
	for d := range plan.Schedule {
		day := &plan.Schedule[d]
		for i := range day.Events {
			if day.Events[i].Event.EventID == eventID {
				day.Events[i].Pinned = true
				return true
			}
		}
	}
	return false
}

// InsertManual adds an attendee-chosen event to its day as a manual
// primary, re-sorting the day by start time. Days not present in the plan
// are created in date order. Manual events survive regeneration for as
// long as their id remains in the catalog.
func (e *Engine) InsertManual(plan *Plan, ev *catalog.Event) {
	se := ScoredEvent{
		Event:    ev,
		Tier:     TierWildcard,
		IsManual: true,
	}

	for d := range plan.Schedule {
		day := &plan.Schedule[d]
		if day.Date != ev.Date {
			continue
		}
		day.Events = append(day.Events, se)
		sortChronologically(day.Events)
		recountPrimaries(plan)
		return
	}

	plan.Schedule = append(plan.Schedule, DaySchedule{Date: ev.Date, Events: []ScoredEvent{se}})
	sortDays(plan.Schedule)
	recountPrimaries(plan)
}

func recountPrimaries(plan *Plan) {
	total := 0
	for d := range plan.Schedule {
		for i := range plan.Schedule[d].Events {
			if !plan.Schedule[d].Events[i].IsFallback {
				total++
			}
		}
	}
	plan.TotalEvents = total
}

func sortDays(days []DaySchedule) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
}
