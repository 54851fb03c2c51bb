// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import "fmt"

// Config contains all tunable parameters of the recommendation engine.
// The weights and caps were calibrated empirically against past summit
// catalogs; they are configuration, not invariants, and may be re-tuned
// without code changes.
type Config struct {
	// Scoring contains the event scoring weights and caps.
	Scoring ScoringConfig `json:"scoring"`

	// Exhibitor contains the exhibitor scoring weights and caps.
	Exhibitor ExhibitorScoringConfig `json:"exhibitor"`

	// Tiers contains the score thresholds for tier classification.
	Tiers TierThresholds `json:"tiers"`

	// Assembly contains schedule assembly limits.
	Assembly AssemblyConfig `json:"assembly"`
}

// ScoringConfig defines the independently capped components of an event
// score. Caps bound each component before components are summed.
type ScoringConfig struct {
	// KeywordCap bounds the keyword match component.
	KeywordCap int `json:"keyword_cap"`

	// KeywordExactPoints is awarded per exact keyword+category match.
	KeywordExactPoints int `json:"keyword_exact_points"`

	// KeywordCategoryPoints is awarded per category-only match.
	KeywordCategoryPoints int `json:"keyword_category_points"`

	// PersonaCap bounds the persona match component.
	PersonaCap int `json:"persona_cap"`

	// PersonaPoints is awarded per matching target persona.
	PersonaPoints int `json:"persona_points"`

	// DepthCap is awarded when event depth equals the preference exactly.
	// A distance of 1 scores half, 2 a fifth, 3 or more zero.
	DepthCap int `json:"depth_cap"`

	// GoalRelevanceCap bounds the mission overlap component. One matching
	// mission scores 60% of the cap, two or more score the full cap.
	GoalRelevanceCap int `json:"goal_relevance_cap"`

	// NetworkingSignalCap bounds the networking signal component.
	NetworkingSignalCap int `json:"networking_signal_cap"`

	// SectorCap bounds the sector overlap component.
	SectorCap int `json:"sector_cap"`

	// SeniorityCap bounds the speaker seniority component.
	SeniorityCap int `json:"seniority_cap"`

	// DealBreakerPenalty is applied once per matched deal breaker.
	// Must be negative; penalties stack and may drive a total below zero.
	DealBreakerPenalty int `json:"deal_breaker_penalty"`
}

// ExhibitorScoringConfig defines the two-component exhibitor score.
type ExhibitorScoringConfig struct {
	// KeywordCap bounds the keyword match component.
	KeywordCap int `json:"keyword_cap"`

	// KeywordExactPoints is awarded per exact keyword+category match.
	KeywordExactPoints int `json:"keyword_exact_points"`

	// KeywordCategoryPoints is awarded per category-only match.
	KeywordCategoryPoints int `json:"keyword_category_points"`

	// PersonaCap bounds the persona match component.
	PersonaCap int `json:"persona_cap"`

	// PersonaPoints is awarded per matching target persona.
	PersonaPoints int `json:"persona_points"`

	// TopN is how many exhibitors a plan carries.
	TopN int `json:"top_n"`
}

// TierThresholds maps scores to qualitative tiers. A score at or above
// MustAttend classifies highest; below NiceToHave classifies Wildcard.
// Thresholds must be strictly descending so classification is monotonic.
type TierThresholds struct {
	// MustAttend is the minimum score for the Must Attend tier.
	MustAttend int `json:"must_attend"`

	// ShouldAttend is the minimum score for the Should Attend tier.
	ShouldAttend int `json:"should_attend"`

	// NiceToHave is the minimum score for the Nice to Have tier.
	NiceToHave int `json:"nice_to_have"`
}

// AssemblyConfig bounds the schedule assembler's work.
type AssemblyConfig struct {
	// CandidatesPerDay truncates each day's scored pool before conflict
	// resolution.
	CandidatesPerDay int `json:"candidates_per_day"`

	// MaxPrimariesPerPlan caps the total primaries across all days.
	MaxPrimariesPerPlan int `json:"max_primaries_per_plan"`

	// DensePerDayQuota is the per-day primary quota when the attendee
	// selected at most two dates.
	DensePerDayQuota int `json:"dense_per_day_quota"`

	// SparsePerDayQuota is the per-day primary quota when the attendee
	// selected three or more dates.
	SparsePerDayQuota int `json:"sparse_per_day_quota"`

	// MaxAlternativesPerSlot caps the alternatives attached to a primary.
	MaxAlternativesPerSlot int `json:"max_alternatives_per_slot"`

	// GapThresholdMinutes is the smallest schedule gap worth filling.
	GapThresholdMinutes int `json:"gap_threshold_minutes"`

	// MaxGapFillsPerDay caps time-slot fills inserted into one day.
	MaxGapFillsPerDay int `json:"max_gap_fills_per_day"`

	// DayEndMinute is the minute of day after which gaps are not filled.
	DayEndMinute int `json:"day_end_minute"`
}

// DefaultConfig returns the calibrated production configuration.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			KeywordCap:            20,
			KeywordExactPoints:    4,
			KeywordCategoryPoints: 2,
			PersonaCap:            20,
			PersonaPoints:         7,
			DepthCap:              10,
			GoalRelevanceCap:      15,
			NetworkingSignalCap:   15,
			SectorCap:             10,
			SeniorityCap:          10,
			DealBreakerPenalty:    -40,
		},
		Exhibitor: ExhibitorScoringConfig{
			KeywordCap:            60,
			KeywordExactPoints:    10,
			KeywordCategoryPoints: 5,
			PersonaCap:            40,
			PersonaPoints:         10,
			TopN:                  5,
		},
		Tiers: TierThresholds{
			MustAttend:   70,
			ShouldAttend: 50,
			NiceToHave:   30,
		},
		Assembly: AssemblyConfig{
			CandidatesPerDay:       30,
			MaxPrimariesPerPlan:    12,
			DensePerDayQuota:       5,
			SparsePerDayQuota:      4,
			MaxAlternativesPerSlot: 10,
			GapThresholdMinutes:    60,
			MaxGapFillsPerDay:      5,
			DayEndMinute:           18*60 + 30,
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	s := c.Scoring
	for _, check := range []struct {
		name  string
		value int
	}{
		{"scoring.keyword_cap", s.KeywordCap},
		{"scoring.persona_cap", s.PersonaCap},
		{"scoring.depth_cap", s.DepthCap},
		{"scoring.goal_relevance_cap", s.GoalRelevanceCap},
		{"scoring.networking_signal_cap", s.NetworkingSignalCap},
		{"scoring.sector_cap", s.SectorCap},
		{"scoring.seniority_cap", s.SeniorityCap},
	} {
		if check.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", check.name, check.value)
		}
	}
	if s.DealBreakerPenalty >= 0 {
		return fmt.Errorf("scoring.deal_breaker_penalty must be negative, got %d", s.DealBreakerPenalty)
	}
	if c.Exhibitor.KeywordCap <= 0 || c.Exhibitor.PersonaCap <= 0 {
		return fmt.Errorf("exhibitor caps must be positive")
	}
	if c.Exhibitor.TopN <= 0 {
		return fmt.Errorf("exhibitor.top_n must be positive, got %d", c.Exhibitor.TopN)
	}
	t := c.Tiers
	if t.MustAttend <= t.ShouldAttend || t.ShouldAttend <= t.NiceToHave {
		return fmt.Errorf("tier thresholds must be strictly descending: %d, %d, %d",
			t.MustAttend, t.ShouldAttend, t.NiceToHave)
	}
	a := c.Assembly
	if a.CandidatesPerDay <= 0 {
		return fmt.Errorf("assembly.candidates_per_day must be positive, got %d", a.CandidatesPerDay)
	}
	if a.MaxPrimariesPerPlan <= 0 {
		return fmt.Errorf("assembly.max_primaries_per_plan must be positive, got %d", a.MaxPrimariesPerPlan)
	}
	if a.DensePerDayQuota <= 0 || a.SparsePerDayQuota <= 0 {
		return fmt.Errorf("assembly per-day quotas must be positive")
	}
	if a.MaxAlternativesPerSlot < 0 || a.MaxGapFillsPerDay < 0 {
		return fmt.Errorf("assembly limits must not be negative")
	}
	if a.DayEndMinute <= 0 || a.DayEndMinute >= 24*60 {
		return fmt.Errorf("assembly.day_end_minute out of range: %d", a.DayEndMinute)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
