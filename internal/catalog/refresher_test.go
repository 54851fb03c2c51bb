// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const refresherEventsV1 = `[
	{"id": 1, "event_id": "ev-1", "title": "Opening Keynote",
	 "date": "2026-02-10", "start_time": "09:00"}
]`

const refresherEventsV2 = `[
	{"id": 1, "event_id": "ev-1", "title": "Opening Keynote",
	 "date": "2026-02-10", "start_time": "09:30"}
]`

func TestRefresherSwapsOnContentChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(refresherEventsV1), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(path, "")
	initial, err := loader.Load()
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}

	r := NewRefresher(loader, initial, time.Minute, zerolog.Nop())
	if r.Current() != initial {
		t.Fatal("Current does not return initial snapshot")
	}

	// Unchanged content keeps the same snapshot pointer.
	r.refresh()
	if r.Current() != initial {
		t.Error("snapshot swapped despite identical content")
	}

	if err := os.WriteFile(path, []byte(refresherEventsV2), 0o600); err != nil {
		t.Fatal(err)
	}
	r.refresh()
	next := r.Current()
	if next == initial {
		t.Fatal("snapshot not swapped after content change")
	}
	if next.Events[0].StartTime != "09:30" {
		t.Errorf("StartTime = %q, want 09:30", next.Events[0].StartTime)
	}
	if next.Fingerprint == initial.Fingerprint {
		t.Error("fingerprint unchanged after swap")
	}
}

func TestRefresherKeepsSnapshotOnReloadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(refresherEventsV1), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(path, "")
	initial, err := loader.Load()
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}

	r := NewRefresher(loader, initial, time.Minute, zerolog.Nop())
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	r.refresh()
	if r.Current() != initial {
		t.Error("snapshot replaced after failed reload")
	}
}

func TestRefresherServeStopsOnContextCancel(t *testing.T) {
	snap := NewSnapshot(testEvents(), nil)
	r := NewRefresher(nil, snap, 0, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
