// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"testing"

	"github.com/summitry/strategist/internal/catalog"
)

// editFixture builds a plan with one contested slot (primary 1, fallback 2)
// and one uncontested primary (4), plus event 3 unscheduled in the catalog.
func editFixture(t *testing.T) (*Engine, *Plan, *catalog.Snapshot) {
	t.Helper()
	e := newTestEngine(t)

	events := []catalog.Event{
		event(1, "10:00", "11:00"),
		event(2, "10:00", "11:00"),
		event(3, "12:00", "13:00"),
		event(4, "15:00", "16:00"),
	}
	snap := catalog.NewSnapshot(events, nil)

	primary := ScoredEvent{Event: snap.EventByID(1), Score: 80, Tier: TierMustAttend,
		Alternatives: []AlternativeEvent{{EventID: eventID(3), Title: "Session ev-03"}}}
	fallback := ScoredEvent{Event: snap.EventByID(2), Score: 60, Tier: TierShouldAttend,
		IsFallback: true, FallbackFor: eventID(1)}
	late := ScoredEvent{Event: snap.EventByID(4), Score: 40, Tier: TierNiceToHave}

	plan := &Plan{
		Schedule: []DaySchedule{
			{Date: "2026-02-10", Events: []ScoredEvent{primary, fallback, late}},
		},
		TotalEvents: 2,
	}
	return e, plan, snap
}

func TestApplyEditsSwap(t *testing.T) {
	e, plan, snap := editFixture(t)
	slotKey := "2026-02-10T10:00"

	e.ApplyEdits(plan, &PlanEdits{Swapped: map[string]string{slotKey: eventID(3)}}, snap)

	var swapped *ScoredEvent
	for i := range plan.Schedule[0].Events {
		se := &plan.Schedule[0].Events[i]
		if se.Event.ID == 3 {
			swapped = se
		}
		if se.Event.ID == 1 && !se.IsFallback {
			t.Error("outgoing primary still scheduled after swap")
		}
	}
	if swapped == nil {
		t.Fatal("swap target not scheduled")
	}
	if !swapped.IsManual {
		t.Error("swapped event not flagged manual")
	}
	if swapped.Score != 0 || swapped.Breakdown != (ScoreBreakdown{}) {
		t.Error("swapped event should carry a zeroed score and breakdown")
	}
	if len(swapped.Alternatives) == 0 {
		t.Error("swap dropped the outgoing primary's alternatives")
	}
}

func TestApplyEditsSwapRepointsFallback(t *testing.T) {
	e, plan, snap := editFixture(t)

	e.ApplyEdits(plan, &PlanEdits{Swapped: map[string]string{"2026-02-10T10:00": eventID(3)}}, snap)

	var fb *ScoredEvent
	for i := range plan.Schedule[0].Events {
		if plan.Schedule[0].Events[i].IsFallback {
			fb = &plan.Schedule[0].Events[i]
		}
	}
	if fb == nil {
		t.Fatal("slot fallback dropped by swap")
	}
	if fb.FallbackFor != eventID(3) {
		t.Errorf("FallbackFor = %q, want swapped-in %q", fb.FallbackFor, eventID(3))
	}
}

func TestApplyEditsSwapInFallbackRemovesIt(t *testing.T) {
	e, plan, snap := editFixture(t)

	e.ApplyEdits(plan, &PlanEdits{Swapped: map[string]string{"2026-02-10T10:00": eventID(2)}}, snap)

	sawPromoted := false
	for i := range plan.Schedule[0].Events {
		se := &plan.Schedule[0].Events[i]
		if se.IsFallback {
			t.Errorf("fallback remains after being swapped in: %+v", se)
		}
		if se.Event.ID == 2 && se.IsManual {
			sawPromoted = true
		}
	}
	if !sawPromoted {
		t.Error("swapped-in fallback not scheduled as the manual primary")
	}
}

func TestApplyEditsSwapUnknownTargetSkipped(t *testing.T) {
	e, plan, snap := editFixture(t)
	before := len(plan.Schedule[0].Events)

	e.ApplyEdits(plan, &PlanEdits{Swapped: map[string]string{"2026-02-10T10:00": "ev-99"}}, snap)

	if len(plan.Schedule[0].Events) != before {
		t.Error("swap with unknown target changed the plan")
	}
	if plan.Schedule[0].Events[0].Event.ID != 1 {
		t.Error("original primary displaced by failed swap")
	}
}

func TestApplyEditsDismiss(t *testing.T) {
	e, plan, snap := editFixture(t)

	e.ApplyEdits(plan, &PlanEdits{Dismissed: []string{eventID(1)}}, snap)

	for i := range plan.Schedule[0].Events {
		se := &plan.Schedule[0].Events[i]
		if se.Event.ID == 1 {
			t.Error("dismissed primary still scheduled")
		}
		if se.Event.ID == 2 {
			t.Error("fallback of dismissed primary still scheduled")
		}
	}
	if plan.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1", plan.TotalEvents)
	}
}

func TestApplyEditsPin(t *testing.T) {
	e, plan, snap := editFixture(t)

	e.ApplyEdits(plan, &PlanEdits{Pinned: []string{eventID(4)}}, snap)

	var pinned bool
	for i := range plan.Schedule[0].Events {
		if plan.Schedule[0].Events[i].Event.ID == 4 {
			pinned = plan.Schedule[0].Events[i].Pinned
		}
	}
	if !pinned {
		t.Error("pin edit not applied")
	}
}

func TestApplyEditsZeroIsNoOp(t *testing.T) {
	e, plan, snap := editFixture(t)
	before := len(plan.Schedule[0].Events)
	e.ApplyEdits(plan, &PlanEdits{}, snap)
	e.ApplyEdits(plan, nil, snap)
	if len(plan.Schedule[0].Events) != before {
		t.Error("empty edits changed the plan")
	}
}

func TestInsertManual(t *testing.T) {
	e, plan, snap := editFixture(t)

	e.InsertManual(plan, snap.EventByID(3))

	day := plan.Schedule[0]
	var inserted *ScoredEvent
	for i := range day.Events {
		if day.Events[i].Event.ID == 3 {
			inserted = &day.Events[i]
		}
	}
	if inserted == nil {
		t.Fatal("manual event not inserted")
	}
	if !inserted.IsManual {
		t.Error("inserted event not flagged manual")
	}
	// 12:00 slots between the 10:00 pair and the 15:00 primary.
	if day.Events[len(day.Events)-1].Event.ID != 4 {
		t.Error("day not re-sorted chronologically after insert")
	}
	if plan.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", plan.TotalEvents)
	}
}

func TestInsertManualCreatesMissingDay(t *testing.T) {
	e, plan, _ := editFixture(t)

	other := event(9, "09:00", "10:00")
	other.Date = "2026-02-09"
	e.InsertManual(plan, &other)

	if len(plan.Schedule) != 2 {
		t.Fatalf("days = %d, want 2", len(plan.Schedule))
	}
	if plan.Schedule[0].Date != "2026-02-09" {
		t.Errorf("days not sorted: first = %s", plan.Schedule[0].Date)
	}
}
