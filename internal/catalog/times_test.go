// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package catalog

import "testing"

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "hour and minute", input: "09:30", want: 570},
		{name: "with seconds", input: "14:05:00", want: 845},
		{name: "fractional seconds", input: "14:05:00.000", want: 845},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "missing minute", input: "14", wantErr: true},
		{name: "non numeric", input: "ab:cd", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinuteOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("MinuteOfDay(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("MinuteOfDay(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("MinuteOfDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEndMinuteDefaultsToThirtyMinutes(t *testing.T) {
	e := &Event{StartTime: "10:00", EndTime: ""}
	got, err := e.EndMinute()
	if err != nil {
		t.Fatalf("EndMinute: %v", err)
	}
	if got != 630 {
		t.Errorf("EndMinute = %d, want 630", got)
	}
}

func TestOverlaps(t *testing.T) {
	mk := func(date, start, end string) *Event {
		return &Event{Date: date, StartTime: start, EndTime: end}
	}

	tests := []struct {
		name string
		a, b *Event
		want bool
	}{
		{
			name: "overlapping",
			a:    mk("2026-02-10", "10:00", "11:00"),
			b:    mk("2026-02-10", "10:30", "11:30"),
			want: true,
		},
		{
			name: "back to back",
			a:    mk("2026-02-10", "10:00", "11:00"),
			b:    mk("2026-02-10", "11:00", "12:00"),
			want: false,
		},
		{
			name: "contained",
			a:    mk("2026-02-10", "10:00", "12:00"),
			b:    mk("2026-02-10", "10:30", "11:00"),
			want: true,
		},
		{
			name: "different dates",
			a:    mk("2026-02-10", "10:00", "11:00"),
			b:    mk("2026-02-11", "10:00", "11:00"),
			want: false,
		},
		{
			name: "missing end uses default duration",
			a:    mk("2026-02-10", "10:00", ""),
			b:    mk("2026-02-10", "10:15", "10:45"),
			want: true,
		},
		{
			name: "unparseable time",
			a:    mk("2026-02-10", "bogus", "11:00"),
			b:    mk("2026-02-10", "10:00", "11:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotKey(t *testing.T) {
	e := &Event{Date: "2026-02-10", StartTime: "09:30:00"}
	if got, want := e.SlotKey(), "2026-02-10T09:30:00"; got != want {
		t.Errorf("SlotKey = %q, want %q", got, want)
	}
}
