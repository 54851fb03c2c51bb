// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is an immutable view of the catalog at a point in time. All
// lookup indices are built once at construction; a Snapshot is safe for
// concurrent readers and is replaced wholesale when the catalog changes.
type Snapshot struct {
	Events      []Event
	Exhibitors  []Exhibitor
	Fingerprint string

	byID          map[int]*Event
	byEventID     map[string]*Event
	exhibitorByID map[int]*Exhibitor
}

// NewSnapshot builds a snapshot over the given records. Events are ordered
// by date, start time, then ID so iteration order is deterministic
// regardless of source file ordering.
func NewSnapshot(events []Event, exhibitors []Exhibitor) *Snapshot {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].StartTime != events[j].StartTime {
			return events[i].StartTime < events[j].StartTime
		}
		return events[i].ID < events[j].ID
	})
	sort.Slice(exhibitors, func(i, j int) bool {
		return exhibitors[i].ID < exhibitors[j].ID
	})

	s := &Snapshot{
		Events:        events,
		Exhibitors:    exhibitors,
		byID:          make(map[int]*Event, len(events)),
		byEventID:     make(map[string]*Event, len(events)),
		exhibitorByID: make(map[int]*Exhibitor, len(exhibitors)),
	}
	for i := range s.Events {
		e := &s.Events[i]
		s.byID[e.ID] = e
		s.byEventID[e.EventID] = e
	}
	for i := range s.Exhibitors {
		x := &s.Exhibitors[i]
		s.exhibitorByID[x.ID] = x
	}
	s.Fingerprint = s.computeFingerprint()
	return s
}

// EventByID returns the event with the given numeric ID, or nil.
func (s *Snapshot) EventByID(id int) *Event {
	return s.byID[id]
}

// EventByEventID returns the event with the given string identity, or nil.
func (s *Snapshot) EventByEventID(eventID string) *Event {
	return s.byEventID[eventID]
}

// ExhibitorByID returns the exhibitor with the given ID, or nil.
func (s *Snapshot) ExhibitorByID(id int) *Exhibitor {
	return s.exhibitorByID[id]
}

// Dates returns the distinct event dates in ascending order.
func (s *Snapshot) Dates() []string {
	seen := make(map[string]struct{})
	var dates []string
	for i := range s.Events {
		d := s.Events[i].Date
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}

// computeFingerprint digests the identity-bearing fields of every record.
// Two snapshots with the same fingerprint describe the same catalog content
// for staleness purposes.
func (s *Snapshot) computeFingerprint() string {
	d := xxhash.New()
	for i := range s.Events {
		e := &s.Events[i]
		d.WriteString(strconv.Itoa(e.ID))
		d.WriteString("\x1f")
		d.WriteString(e.EventID)
		d.WriteString("\x1f")
		d.WriteString(e.Title)
		d.WriteString("\x1f")
		d.WriteString(e.Date)
		d.WriteString("\x1f")
		d.WriteString(e.StartTime)
		d.WriteString("\x1f")
		d.WriteString(e.EndTime)
		d.WriteString("\x1e")
	}
	d.WriteString("\x1d")
	for i := range s.Exhibitors {
		x := &s.Exhibitors[i]
		d.WriteString(strconv.Itoa(x.ID))
		d.WriteString("\x1f")
		d.WriteString(x.Name)
		d.WriteString("\x1e")
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
