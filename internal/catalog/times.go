// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSessionMinutes is assumed for events whose end time is unknown.
const DefaultSessionMinutes = 30

// MinuteOfDay parses a catalog time string ("HH:MM" or "HH:MM:SS", with an
// optional fractional second suffix) into minutes since midnight.
func MinuteOfDay(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed time %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hour in %q: %w", t, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed minute in %q: %w", t, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", t)
	}
	return h*60 + m, nil
}

// StartMinute returns the event's start as minutes since midnight.
func (e *Event) StartMinute() (int, error) {
	return MinuteOfDay(e.StartTime)
}

// EndMinute returns the event's end as minutes since midnight. Events
// without a recorded end time are assumed to run DefaultSessionMinutes.
func (e *Event) EndMinute() (int, error) {
	if e.EndTime == "" {
		start, err := e.StartMinute()
		if err != nil {
			return 0, err
		}
		return start + DefaultSessionMinutes, nil
	}
	return MinuteOfDay(e.EndTime)
}

// SlotKey identifies the exact schedule slot an event occupies.
// Two events share a slot only when both date and start time are equal.
func (e *Event) SlotKey() string {
	return e.Date + "T" + e.StartTime
}

// Overlaps reports whether two events on the same date overlap in time.
// Back-to-back events (one ending exactly when the other starts) do not
// overlap. Events on different dates never overlap. Unparseable times are
// treated as non-overlapping.
func Overlaps(a, b *Event) bool {
	if a.Date != b.Date {
		return false
	}
	aStart, err := a.StartMinute()
	if err != nil {
		return false
	}
	aEnd, err := a.EndMinute()
	if err != nil {
		return false
	}
	bStart, err := b.StartMinute()
	if err != nil {
		return false
	}
	bEnd, err := b.EndMinute()
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}
