// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package profile defines the attendee profile the recommendation engine
// scores against. Profiles are produced by the quiz flow in the client and
// arrive fully mapped; this package owns their shape, validation, and the
// role-keyed presentation text.
package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/summitry/strategist/internal/catalog"
)

// Role is the attendee's self-selected conference role.
type Role string

// Role values.
const (
	RoleFounder  Role = "founder"
	RoleInvestor Role = "investor"
	RoleProduct  Role = "product"
	RoleEngineer Role = "engineer"
	RolePolicy   Role = "policy"
	RoleStudent  Role = "student"
)

// NetworkingDensity is the attendee's preferred networking style.
type NetworkingDensity string

// NetworkingDensity values. Empty is treated as DensityBalanced.
const (
	DensityHighPower  NetworkingDensity = "high_power"
	DensityHighVolume NetworkingDensity = "high_volume"
	DensityBalanced   NetworkingDensity = "balanced"
)

// UserProfile is the scoring input derived from an attendee's quiz answers.
// Optional fields may be empty; the scorer defines their defaults.
type UserProfile struct {
	Name                     string            `json:"name,omitempty"`
	Role                     Role              `json:"role" validate:"required,oneof=founder investor product engineer policy student"`
	FocusAreas               []string          `json:"focusAreas" validate:"max=3"`
	Missions                 []string          `json:"missions" validate:"max=2"`
	AvailableDates           []string          `json:"availableDates" validate:"required,min=1,dive,datetime=2006-01-02"`
	TechnicalDepthPreference int               `json:"technicalDepthPreference" validate:"min=0,max=5"`
	KeywordInterests         []catalog.Keyword `json:"keywordInterests"`
	PersonaInterests         []string          `json:"personaInterests"`
	NetworkingDensityPref    NetworkingDensity `json:"networkingDensity,omitempty" validate:"omitempty,oneof=high_power high_volume balanced"`
	OrgSize                  string            `json:"orgSize,omitempty"`
	Sectors                  []string          `json:"sectors,omitempty"`
	DealBreakers             []string          `json:"dealBreakers,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the profile against its structural constraints.
func (p *UserProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// AvailableOn reports whether the attendee is available on the given date.
func (p *UserProfile) AvailableOn(date string) bool {
	for _, d := range p.AvailableDates {
		if d == date {
			return true
		}
	}
	return false
}

// Density returns the networking density preference with the empty value
// mapped to balanced.
func (p *UserProfile) Density() NetworkingDensity {
	if p.NetworkingDensityPref == "" {
		return DensityBalanced
	}
	return p.NetworkingDensityPref
}

var roleHeadlines = map[Role]string{
	RoleFounder:  "The Founder Track",
	RoleInvestor: "The Investor Track",
	RoleProduct:  "The Product Leader Track",
	RoleEngineer: "The Engineer Track",
	RolePolicy:   "The Policy & Governance Track",
	RoleStudent:  "The Explorer Track",
}

var roleStrategyNotes = map[Role]string{
	RoleFounder:  "Your schedule prioritizes high-density networking rooms with decision makers, investors, and potential partners. We have identified sessions where you can make the connections that matter most for your venture.",
	RoleInvestor: "Your schedule focuses on deal-flow rich sessions featuring promising startups, government policy shifts, and emerging technology trends. Expect to meet founders, co-investors, and policy makers shaping the AI landscape.",
	RoleProduct:  "Your schedule balances implementation-focused sessions with strategic networking opportunities. We have targeted rooms where you can learn from practitioners and connect with potential collaborators.",
	RoleEngineer: "Your schedule leans into technically deep sessions and research talks while ensuring you still meet the people building cutting-edge AI. Expect a mix of learning and high-quality peer networking.",
	RolePolicy:   "Your schedule is built around governance, regulation, and responsible AI discussions where you will find fellow policy leaders, government officials, and thought leaders shaping AI frameworks.",
	RoleStudent:  "Your schedule mixes accessible learning sessions with high-profile keynotes so you can both upskill and start building your professional network in the AI ecosystem.",
}

// Headline returns the plan headline for the profile's role.
func (p *UserProfile) Headline() string {
	if h, ok := roleHeadlines[p.Role]; ok {
		return h
	}
	return "Your Personalized Track"
}

// StrategyNote returns the plan strategy note for the profile's role.
func (p *UserProfile) StrategyNote() string {
	if n, ok := roleStrategyNotes[p.Role]; ok {
		return n
	}
	return "Your schedule has been optimized for the best networking opportunities at the summit."
}
