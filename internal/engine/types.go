// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/profile"
)

// Tier is the qualitative confidence band of a recommendation.
type Tier string

// Tier values, from highest confidence to lowest.
const (
	TierMustAttend   Tier = "Must Attend"
	TierShouldAttend Tier = "Should Attend"
	TierNiceToHave   Tier = "Nice to Have"
	TierWildcard     Tier = "Wildcard"
)

// rank orders tiers for monotonicity checks; higher is better.
func (t Tier) rank() int {
	switch t {
	case TierMustAttend:
		return 3
	case TierShouldAttend:
		return 2
	case TierNiceToHave:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether t is the same tier as other or a higher one.
func (t Tier) AtLeast(other Tier) bool {
	return t.rank() >= other.rank()
}

// ScoreBreakdown is the fixed-shape audit record of an event score. Every
// field is always present, zero when the component did not contribute, and
// the field sum always equals the clamped pre-floor total.
type ScoreBreakdown struct {
	Keyword            int `json:"keywordScore"`
	Persona            int `json:"personaScore"`
	Depth              int `json:"depthScore"`
	GoalRelevance      int `json:"goalRelevanceScore"`
	NetworkingSignal   int `json:"networkingSignalScore"`
	Sector             int `json:"sectorScore"`
	Seniority          int `json:"seniorityScore"`
	DealBreakerPenalty int `json:"dealBreakerPenalty"`
}

// Sum returns the unclamped component total.
func (b ScoreBreakdown) Sum() int {
	return b.Keyword + b.Persona + b.Depth + b.GoalRelevance +
		b.NetworkingSignal + b.Sector + b.Seniority + b.DealBreakerPenalty
}

// ScoredEvent is one catalog event with its score, audit breakdown, and
// plan placement flags.
type ScoredEvent struct {
	Event     *catalog.Event `json:"event"`
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Tier      Tier           `json:"tier"`

	// IsFallback marks the runner-up in a contested slot. FallbackFor
	// holds the primary's event_id.
	IsFallback  bool   `json:"isFallback"`
	FallbackFor string `json:"fallbackFor,omitempty"`

	// Pinned marks an event the attendee chose to keep across regeneration.
	Pinned bool `json:"pinned,omitempty"`

	// IsManual marks an event inserted by the attendee, not the scorer.
	IsManual bool `json:"isManual,omitempty"`

	// IsTimeSlotFill marks a primary promoted into an otherwise empty slot.
	IsTimeSlotFill bool `json:"isTimeSlotFill,omitempty"`

	Alternatives []AlternativeEvent `json:"alternatives,omitempty"`
}

// SlotKey returns the schedule slot this event occupies.
func (se *ScoredEvent) SlotKey() string {
	return se.Event.SlotKey()
}

// AlternativeEvent is a compact view of an event that overlaps a primary,
// offered in the swap picker.
type AlternativeEvent struct {
	EventID       string `json:"event_id"`
	Title         string `json:"title"`
	Tier          Tier   `json:"tier"`
	Score         int    `json:"score"`
	Venue         string `json:"venue"`
	Room          string `json:"room"`
	OneLiner      string `json:"one_liner"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Speakers      string `json:"speakers"`
	IsHeavyHitter bool   `json:"is_heavy_hitter"`
}

// ExhibitorBreakdown is the audit record of an exhibitor score.
type ExhibitorBreakdown struct {
	Keyword int `json:"keywordScore"`
	Persona int `json:"personaScore"`
}

// ScoredExhibitor is one exhibitor with its match score.
type ScoredExhibitor struct {
	Exhibitor *catalog.Exhibitor `json:"exhibitor"`
	Score     int                `json:"score"`
	Breakdown ExhibitorBreakdown `json:"breakdown"`
}

// DaySchedule is one conference day of the plan, events sorted by start time.
type DaySchedule struct {
	Date   string        `json:"date"`
	Events []ScoredEvent `json:"events"`
}

// Plan is the assembled recommendation plan for one attendee.
type Plan struct {
	Headline           string               `json:"headline"`
	StrategyNote       string               `json:"strategyNote"`
	Schedule           []DaySchedule        `json:"schedule"`
	Exhibitors         []ScoredExhibitor    `json:"exhibitors"`
	TotalEvents        int                  `json:"totalEvents"`
	Profile            *profile.UserProfile `json:"profile"`
	CatalogFingerprint string               `json:"catalogFingerprint"`
}

// EventIDs returns the numeric ids of every event the plan references,
// primaries and fallbacks alike.
func (p *Plan) EventIDs() []int {
	var ids []int
	for _, day := range p.Schedule {
		for i := range day.Events {
			ids = append(ids, day.Events[i].Event.ID)
		}
	}
	return ids
}

// Primaries returns every non-fallback event in schedule order.
func (p *Plan) Primaries() []*ScoredEvent {
	var out []*ScoredEvent
	for d := range p.Schedule {
		for i := range p.Schedule[d].Events {
			se := &p.Schedule[d].Events[i]
			if !se.IsFallback {
				out = append(out, se)
			}
		}
	}
	return out
}

// SavedPlanEvent is the slim persistence projection of a scheduled event.
// It carries no event payload; loads rehydrate against the current catalog
// by id.
type SavedPlanEvent struct {
	ID             int  `json:"id"`
	Tier           Tier `json:"tier"`
	Score          int  `json:"score"`
	Pinned         bool `json:"pinned"`
	IsFallback     bool `json:"is_fallback"`
	FallbackFor    int  `json:"fallback_for,omitempty"`
	IsManual       bool `json:"is_manual"`
	IsTimeSlotFill bool `json:"is_time_slot_fill"`
}

// PlanEdits is the attendee's accumulated intent against a plan: pins,
// dismissals, and per-slot swaps. Keys reference event_id strings; swap
// keys are slot keys (date + "T" + start_time). Edits outlive any single
// plan instance but are cleared when the plan is regenerated against a
// changed catalog.
type PlanEdits struct {
	Pinned    []string          `json:"pinned"`
	Dismissed []string          `json:"dismissed"`
	Swapped   map[string]string `json:"swapped"`
}

// IsZero reports whether the edits record carries no intent.
func (e *PlanEdits) IsZero() bool {
	return e == nil || (len(e.Pinned) == 0 && len(e.Dismissed) == 0 && len(e.Swapped) == 0)
}
