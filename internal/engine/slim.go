// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/profile"
)

// ToSaved projects a plan into its slim persistence form: ids and
// plan-specific flags only, no event payloads. Fallback references are
// converted from event_id strings to numeric ids so the saved form is
// self-contained.
func ToSaved(plan *Plan) []SavedPlanEvent {
	idByEventID := make(map[string]int)
	for d := range plan.Schedule {
		for i := range plan.Schedule[d].Events {
			ev := plan.Schedule[d].Events[i].Event
			idByEventID[ev.EventID] = ev.ID
		}
	}

	var saved []SavedPlanEvent
	for d := range plan.Schedule {
		for i := range plan.Schedule[d].Events {
			se := &plan.Schedule[d].Events[i]
			saved = append(saved, SavedPlanEvent{
				ID:             se.Event.ID,
				Tier:           se.Tier,
				Score:          se.Score,
				Pinned:         se.Pinned,
				IsFallback:     se.IsFallback,
				FallbackFor:    idByEventID[se.FallbackFor],
				IsManual:       se.IsManual,
				IsTimeSlotFill: se.IsTimeSlotFill,
			})
		}
	}
	return saved
}

// Rehydrate joins a saved plan against the current catalog. Saved entries
// whose id is no longer in the catalog are dropped from the result and
// returned as missing; the caller feeds them to the staleness check rather
// than treating them as an error. Alternatives are recomputed from the
// current catalog since the slim form does not carry them.
func (e *Engine) Rehydrate(saved []SavedPlanEvent, snap *catalog.Snapshot, p *profile.UserProfile) (*Plan, []int) {
	eventIDByID := make(map[int]string, len(saved))
	var missing []int
	byDate := make(map[string][]ScoredEvent)

	for _, sp := range saved {
		ev := snap.EventByID(sp.ID)
		if ev == nil {
			missing = append(missing, sp.ID)
			continue
		}
		eventIDByID[sp.ID] = ev.EventID
		byDate[ev.Date] = append(byDate[ev.Date], ScoredEvent{
			Event:          ev,
			Score:          sp.Score,
			Tier:           sp.Tier,
			Pinned:         sp.Pinned,
			IsFallback:     sp.IsFallback,
			IsManual:       sp.IsManual,
			IsTimeSlotFill: sp.IsTimeSlotFill,
		})
	}

	// Second pass: restore fallback references that survived the join.
	for _, sp := range saved {
		if !sp.IsFallback || sp.FallbackFor == 0 {
			continue
		}
		primaryEventID, ok := eventIDByID[sp.FallbackFor]
		if !ok {
			continue
		}
		fallbackEventID := eventIDByID[sp.ID]
		for date := range byDate {
			for i := range byDate[date] {
				if byDate[date][i].Event.EventID == fallbackEventID {
					byDate[date][i].FallbackFor = primaryEventID
				}
			}
		}
	}

	var schedule []DaySchedule
	for date, events := range byDate {
		sortChronologically(events)
		schedule = append(schedule, DaySchedule{Date: date, Events: events})
	}
	sortDays(schedule)

	plan := &Plan{
		Schedule:           schedule,
		Profile:            p,
		CatalogFingerprint: snap.Fingerprint,
	}
	if p != nil {
		plan.Headline = p.Headline()
		plan.StrategyNote = p.StrategyNote()
		plan.Exhibitors = e.TopExhibitors(snap.Exhibitors, p)
	}
	for d := range plan.Schedule {
		day := &plan.Schedule[d]
		fallbackByPrimary := make(map[string]string)
		for i := range day.Events {
			if day.Events[i].IsFallback {
				fallbackByPrimary[day.Events[i].FallbackFor] = day.Events[i].Event.EventID
			}
		}
		for i := range day.Events {
			se := &day.Events[i]
			if !se.IsFallback {
				se.Alternatives = e.FindAlternatives(se, fallbackByPrimary[se.Event.EventID], snap, p)
			}
		}
	}
	recountPrimaries(plan)
	return plan, missing
}
