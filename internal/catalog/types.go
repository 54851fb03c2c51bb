// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package catalog defines the immutable conference catalog consumed by the
// recommendation engine: events, exhibitors, and versioned snapshots with
// constructed-once lookup indices.
//
// Catalog records are produced by an external ingestion and enrichment
// pipeline and are read-only here. Optional fields are materialized to
// explicit defaults once at the load boundary so downstream scoring never
// needs nil checks.
package catalog

import (
	"strings"
)

// DecisionMakerDensity classifies how many decision makers an event's room
// is expected to attract.
type DecisionMakerDensity string

// DecisionMakerDensity values.
const (
	DensityHigh   DecisionMakerDensity = "High"
	DensityMedium DecisionMakerDensity = "Medium"
	DensityLow    DecisionMakerDensity = "Low"
)

// InvestorPresence classifies the likelihood of investors attending.
type InvestorPresence string

// InvestorPresence values.
const (
	InvestorsLikely   InvestorPresence = "Likely"
	InvestorsUnlikely InvestorPresence = "Unlikely"
)

// Keyword is a categorized topic tag attached to events, exhibitors, and
// user interests.
type Keyword struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

// EqualFold reports whether two keywords match on both category and keyword,
// case-insensitively.
func (k Keyword) EqualFold(other Keyword) bool {
	return strings.EqualFold(k.Keyword, other.Keyword) &&
		strings.EqualFold(k.Category, other.Category)
}

// SameCategory reports whether two keywords share a category, case-insensitively.
func (k Keyword) SameCategory(other Keyword) bool {
	return strings.EqualFold(k.Category, other.Category)
}

// NetworkingSignals carries the enrichment pipeline's engagement signals
// for an event.
type NetworkingSignals struct {
	IsHeavyHitter        bool                 `json:"is_heavy_hitter"`
	DecisionMakerDensity DecisionMakerDensity `json:"decision_maker_density"`
	InvestorPresence     InvestorPresence     `json:"investor_presence"`
}

// Event is a single session in the conference catalog.
//
// ID is the stable numeric identity used for plan persistence and diffing;
// EventID is the stable string identity used inside assembled plans. Both
// must remain constant across catalog updates.
type Event struct {
	ID                int               `json:"id" validate:"required"`
	Title             string            `json:"title" validate:"required"`
	Description       string            `json:"description"`
	Date              string            `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         string            `json:"start_time" validate:"required"`
	EndTime           string            `json:"end_time"`
	Venue             string            `json:"venue"`
	Room              string            `json:"room"`
	Speakers          string            `json:"speakers"` // semicolon-separated names
	KnowledgePartners string            `json:"knowledge_partners"`
	SessionType       string            `json:"session_type"`
	EventID           string            `json:"event_id" validate:"required"`
	SummaryOneLiner   string            `json:"summary_one_liner"`
	TechnicalDepth    int               `json:"technical_depth" validate:"min=0,max=5"`
	TargetPersonas    []string          `json:"target_personas"`
	NetworkingSignals NetworkingSignals `json:"networking_signals"`
	Keywords          []Keyword         `json:"keywords"`
	GoalRelevance     []string          `json:"goal_relevance"`
	Icebreaker        string            `json:"icebreaker"`
	NetworkingTip     string            `json:"networking_tip"`
	LogoURLs          []string          `json:"logo_urls"`
}

// Exhibitor is a single expo-floor exhibitor in the catalog.
type Exhibitor struct {
	ID             int       `json:"id" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	LogoURL        string    `json:"logo_url"`
	AltText        string    `json:"alt_text"`
	Keywords       []Keyword `json:"keywords"`
	TargetPersonas []string  `json:"target_personas"`
	GoalRelevance  []string  `json:"goal_relevance"`
	OneLiner       string    `json:"one_liner"`
	NetworkingTip  string    `json:"networking_tip"`
	Category       string    `json:"category"`
	SubCategory    string    `json:"subCategory"`
}

// normalize materializes defaults for absent optional fields so that the
// scorer never has to distinguish nil from empty.
func (e *Event) normalize() {
	if e.TargetPersonas == nil {
		e.TargetPersonas = []string{}
	}
	if e.Keywords == nil {
		e.Keywords = []Keyword{}
	}
	if e.GoalRelevance == nil {
		e.GoalRelevance = []string{}
	}
	if e.LogoURLs == nil {
		e.LogoURLs = []string{}
	}
	if e.NetworkingSignals.DecisionMakerDensity == "" {
		e.NetworkingSignals.DecisionMakerDensity = DensityLow
	}
	if e.NetworkingSignals.InvestorPresence == "" {
		e.NetworkingSignals.InvestorPresence = InvestorsUnlikely
	}
	if e.TechnicalDepth == 0 {
		e.TechnicalDepth = 1
	}
}

// normalize materializes defaults for absent optional exhibitor fields.
func (x *Exhibitor) normalize() {
	if x.Keywords == nil {
		x.Keywords = []Keyword{}
	}
	if x.TargetPersonas == nil {
		x.TargetPersonas = []string{}
	}
	if x.GoalRelevance == nil {
		x.GoalRelevance = []string{}
	}
}
