// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"testing"

	"github.com/summitry/strategist/internal/catalog"
)

func TestToSavedAndRehydrateRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	snap := fixtureSnapshot()
	p := fixtureProfile()

	plan, err := e.BuildPlan(snap, p)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	saved := ToSaved(plan)
	if len(saved) == 0 {
		t.Fatal("ToSaved produced no entries")
	}
	for _, sp := range saved {
		if sp.ID == 0 {
			t.Error("saved entry missing id")
		}
	}

	restored, missing := e.Rehydrate(saved, snap, p)
	if len(missing) != 0 {
		t.Fatalf("missing = %v, want none", missing)
	}
	if restored.TotalEvents != plan.TotalEvents {
		t.Errorf("TotalEvents = %d, want %d", restored.TotalEvents, plan.TotalEvents)
	}
	if len(restored.Schedule) != len(plan.Schedule) {
		t.Fatalf("days = %d, want %d", len(restored.Schedule), len(plan.Schedule))
	}
	for d := range plan.Schedule {
		if restored.Schedule[d].Date != plan.Schedule[d].Date {
			t.Errorf("day %d = %s, want %s", d, restored.Schedule[d].Date, plan.Schedule[d].Date)
		}
		if len(restored.Schedule[d].Events) != len(plan.Schedule[d].Events) {
			t.Errorf("day %s events = %d, want %d", plan.Schedule[d].Date,
				len(restored.Schedule[d].Events), len(plan.Schedule[d].Events))
			continue
		}
		for i := range plan.Schedule[d].Events {
			want := &plan.Schedule[d].Events[i]
			got := &restored.Schedule[d].Events[i]
			if got.Event.ID != want.Event.ID {
				t.Errorf("day %s event %d = id %d, want %d", plan.Schedule[d].Date, i, got.Event.ID, want.Event.ID)
			}
			if got.Score != want.Score || got.Tier != want.Tier {
				t.Errorf("event %d lost score or tier in round trip", want.Event.ID)
			}
			if got.IsFallback != want.IsFallback || got.FallbackFor != want.FallbackFor {
				t.Errorf("event %d lost fallback linkage in round trip", want.Event.ID)
			}
		}
	}
}

func TestRehydrateReportsMissingIDs(t *testing.T) {
	e := newTestEngine(t)
	snap := fixtureSnapshot()

	saved := []SavedPlanEvent{
		{ID: 1, Score: 50, Tier: TierShouldAttend},
		{ID: 999, Score: 40, Tier: TierNiceToHave},
	}
	restored, missing := e.Rehydrate(saved, snap, fixtureProfile())

	if len(missing) != 1 || missing[0] != 999 {
		t.Errorf("missing = %v, want [999]", missing)
	}
	if restored.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1 surviving event", restored.TotalEvents)
	}
}

func TestCheckStaleness(t *testing.T) {
	snap := fixtureSnapshot()

	tests := []struct {
		name        string
		saved       []SavedPlanEvent
		fingerprint string
		wantStale   bool
		wantMissing int
	}{
		{
			name:        "fresh",
			saved:       []SavedPlanEvent{{ID: 1}, {ID: 2}},
			fingerprint: snap.Fingerprint,
		},
		{
			name:        "missing id",
			saved:       []SavedPlanEvent{{ID: 1}, {ID: 999}},
			fingerprint: snap.Fingerprint,
			wantStale:   true,
			wantMissing: 1,
		},
		{
			name:        "fingerprint drift",
			saved:       []SavedPlanEvent{{ID: 1}},
			fingerprint: "deadbeefdeadbeef",
			wantStale:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CheckStaleness(tt.saved, tt.fingerprint, snap)
			if report.Stale != tt.wantStale {
				t.Errorf("Stale = %v, want %v", report.Stale, tt.wantStale)
			}
			if len(report.MissingIDs) != tt.wantMissing {
				t.Errorf("MissingIDs = %v, want %d entries", report.MissingIDs, tt.wantMissing)
			}
			if tt.fingerprint != snap.Fingerprint && !report.FingerprintChanged {
				t.Error("FingerprintChanged = false for differing fingerprints")
			}
		})
	}
}

func TestRegenerateRequiresProfile(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.Regenerate(nil, fixtureSnapshot(), nil); err == nil {
		t.Error("Regenerate succeeded without profile inputs")
	}
}

func TestRegenerateCarriesManualAndPinned(t *testing.T) {
	e := newTestEngine(t)
	snap := fixtureSnapshot()
	p := fixtureProfile()

	old, err := e.BuildPlan(snap, p)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	// Event 7 is outside the selected dates; insert it manually and pin event 1.
	e.InsertManual(old, snap.EventByID(7))
	e.ApplyEdits(old, &PlanEdits{Pinned: []string{eventID(1)}}, snap)

	plan, err := e.Regenerate(old, snap, p)
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}

	var manualKept, pinKept bool
	for _, day := range plan.Schedule {
		for i := range day.Events {
			se := &day.Events[i]
			if se.Event.ID == 7 && se.IsManual {
				manualKept = true
			}
			if se.Event.ID == 1 && se.Pinned {
				pinKept = true
			}
		}
	}
	if !manualKept {
		t.Error("manual event not carried across regeneration")
	}
	if !pinKept {
		t.Error("pinned event lost its pin across regeneration")
	}
}

func TestRegenerateDropsVanishedManualEvents(t *testing.T) {
	e := newTestEngine(t)
	snap := fixtureSnapshot()
	p := fixtureProfile()

	old, err := e.BuildPlan(snap, p)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	e.InsertManual(old, snap.EventByID(7))

	// New catalog without event 7.
	var remaining []catalog.Event
	for _, ev := range fixtureSnapshot().Events {
		if ev.ID != 7 {
			remaining = append(remaining, ev)
		}
	}
	next := catalog.NewSnapshot(remaining, nil)

	plan, err := e.Regenerate(old, next, p)
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	for _, day := range plan.Schedule {
		for i := range day.Events {
			if day.Events[i].Event.ID == 7 {
				t.Error("vanished manual event resurrected by regeneration")
			}
		}
	}
	if plan.CatalogFingerprint != next.Fingerprint {
		t.Error("regenerated plan does not carry the new fingerprint")
	}
}
