// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"strings"

	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/profile"
)

// missionGoals maps quiz mission ids to the goal_relevance values the
// enrichment pipeline emits. Sales missions also match partnership events.
var missionGoals = map[string][]string{
	"hiring":      {"hiring"},
	"fundraising": {"fundraising"},
	"sales":       {"sales", "partnerships"},
	"upskilling":  {"upskilling"},
	"networking":  {"networking"},
}

// sectorCategories maps quiz sector ids to catalog keyword categories.
var sectorCategories = map[string][]string{
	"developer_tools": {"AI Technology & Architecture"},
	"fintech":         {"Business & Entrepreneurship"},
	"healthcare":      {"Social Impact & Inclusion"},
	"ecommerce":       {"Industry Applications"},
	"edtech":          {"Skills & Workforce Development"},
	"manufacturing":   {"Industry Applications"},
	"agriculture":     {"Social Impact & Inclusion"},
	"defense":         {"Geopolitics & Global Strategy"},
	"media":           {"Digital Transformation & Services"},
	"government":      {"AI Governance & Ethics"},
}

// Speaker title tiers for the seniority heuristic, matched as substrings
// of the upper-cased speakers string.
var (
	seniorityHighTitles = []string{
		"CEO", "CTO", "CXO", "MINISTER", "SECRETARY",
		"DIRECTOR GENERAL", "CHAIRMAN", "CHAIRPERSON",
	}
	seniorityMidTitles   = []string{"VP", "VICE PRESIDENT", "DIRECTOR", "HEAD", "PARTNER"}
	seniorityLowerTitles = []string{"MANAGER", "LEAD", "PRINCIPAL"}
)

// ScoreEvent scores one event against a profile. Events on dates the
// attendee is not available score zero with an all-zero breakdown and are
// excluded downstream. The total is the sum of independently capped
// components, floored at zero; the breakdown always carries the raw
// components so any score can be audited.
func (e *Engine) ScoreEvent(ev *catalog.Event, p *profile.UserProfile) ScoredEvent {
	if !p.AvailableOn(ev.Date) {
		return ScoredEvent{Event: ev, Tier: TierWildcard}
	}

	s := e.config.Scoring
	breakdown := ScoreBreakdown{
		Keyword:            keywordScore(ev.Keywords, p.KeywordInterests, s.KeywordCap, s.KeywordExactPoints, s.KeywordCategoryPoints),
		Persona:            personaScore(ev.TargetPersonas, p.PersonaInterests, s.PersonaCap, s.PersonaPoints),
		Depth:              depthScore(ev.TechnicalDepth, p.TechnicalDepthPreference, s.DepthCap),
		GoalRelevance:      goalRelevanceScore(ev.GoalRelevance, p.Missions, s.GoalRelevanceCap),
		NetworkingSignal:   networkingSignalScore(ev, p.Density(), s.NetworkingSignalCap),
		Sector:             sectorScore(ev.Keywords, p.Sectors, s.SectorCap),
		Seniority:          seniorityScore(ev.Speakers, s.SeniorityCap),
		DealBreakerPenalty: dealBreakerPenalty(ev, p.DealBreakers, s.DealBreakerPenalty),
	}

	score := breakdown.Sum()
	if score < 0 {
		score = 0
	}

	return ScoredEvent{
		Event:     ev,
		Score:     score,
		Breakdown: breakdown,
		Tier:      TierWildcard,
	}
}

// keywordScore awards exactPoints per exact keyword+category match and
// categoryPoints per category-only match, case-insensitively, capped.
func keywordScore(item, interests []catalog.Keyword, maxScore, exactPoints, categoryPoints int) int {
	score := 0
	for _, want := range interests {
		for _, have := range item {
			switch {
			case want.EqualFold(have):
				score += exactPoints
			case want.SameCategory(have):
				score += categoryPoints
			}
		}
	}
	return min(score, maxScore)
}

// personaScore awards points per event persona present in the attendee's
// interests, capped.
func personaScore(itemPersonas, interests []string, maxScore, points int) int {
	score := 0
	for _, persona := range itemPersonas {
		for _, want := range interests {
			if strings.EqualFold(persona, want) {
				score += points
				break
			}
		}
	}
	return min(score, maxScore)
}

// depthScore decays with the distance between event depth and preference:
// exact match scores the cap, distance 1 half, distance 2 a fifth, 3+ zero.
func depthScore(eventDepth, preferred, maxScore int) int {
	diff := eventDepth - preferred
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return maxScore
	case 1:
		return maxScore / 2
	case 2:
		return maxScore / 5
	default:
		return 0
	}
}

// goalRelevanceScore matches the attendee's missions against the event's
// goal_relevance values. One matching mission scores 60% of the cap, two
// or more the full cap. An attendee who skipped the mission step defaults
// to the networking mission at half weight.
func goalRelevanceScore(eventGoals, missions []string, maxScore int) int {
	weight := 1.0
	if len(missions) == 0 {
		missions = []string{"networking"}
		weight = 0.5
	}
	if len(eventGoals) == 0 {
		return 0
	}

	matches := 0
	for _, mission := range missions {
		goals, ok := missionGoals[strings.ToLower(mission)]
		if !ok {
			continue
		}
	goalLoop:
		for _, goal := range goals {
			for _, have := range eventGoals {
				if strings.EqualFold(goal, have) {
					matches++
					break goalLoop
				}
			}
		}
	}

	if matches == 0 {
		return 0
	}
	raw := float64(maxScore)
	if matches < 2 {
		raw *= 0.6
	}
	return int(raw*weight + 0.5)
}

// networkingSignalScore weighs the event's engagement signals against the
// attendee's density preference. High-power attendees want rooms that are
// both heavy hitter and decision-maker dense; high-volume attendees want
// the main venue floor; balanced attendees get a flat half-cap.
func networkingSignalScore(ev *catalog.Event, density profile.NetworkingDensity, maxScore int) int {
	switch density {
	case profile.DensityHighPower:
		highDensity := ev.NetworkingSignals.DecisionMakerDensity == catalog.DensityHigh
		heavyHitter := ev.NetworkingSignals.IsHeavyHitter
		switch {
		case highDensity && heavyHitter:
			return maxScore
		case highDensity || heavyHitter:
			return 8
		default:
			return 0
		}
	case profile.DensityHighVolume:
		venue := strings.ToLower(ev.Venue)
		if strings.Contains(venue, "bharat mandapam") && !strings.Contains(venue, "expo") {
			return maxScore
		}
		if strings.Contains(venue, "bharat mandapam") || strings.Contains(venue, "expo") {
			return 5
		}
		return 0
	default:
		return int(float64(maxScore)*0.5 + 0.5)
	}
}

// sectorScore maps the attendee's sectors to keyword categories and counts
// distinct sector hits: one scores half the cap, two 80%, three or more
// the full cap.
func sectorScore(eventKeywords []catalog.Keyword, sectors []string, maxScore int) int {
	if len(sectors) == 0 {
		return 0
	}

	categories := make(map[string]struct{}, len(eventKeywords))
	for _, kw := range eventKeywords {
		categories[strings.ToLower(kw.Category)] = struct{}{}
	}

	matches := 0
	for _, sector := range sectors {
		wanted, ok := sectorCategories[strings.ToLower(sector)]
		if !ok {
			continue
		}
		for _, category := range wanted {
			if _, hit := categories[strings.ToLower(category)]; hit {
				matches++
				break
			}
		}
	}

	switch {
	case matches == 0:
		return 0
	case matches >= 3:
		return maxScore
	case matches == 2:
		return int(float64(maxScore)*0.8 + 0.5)
	default:
		return int(float64(maxScore)*0.5 + 0.5)
	}
}

// seniorityScore is a title-keyword heuristic over the speakers string:
// C-suite and minister-level speakers score the cap, VP and director level
// 7, manager level 4.
func seniorityScore(speakers string, maxScore int) int {
	if speakers == "" {
		return 0
	}
	upper := strings.ToUpper(speakers)
	for _, title := range seniorityHighTitles {
		if strings.Contains(upper, title) {
			return maxScore
		}
	}
	for _, title := range seniorityMidTitles {
		if strings.Contains(upper, title) {
			return 7
		}
	}
	for _, title := range seniorityLowerTitles {
		if strings.Contains(upper, title) {
			return 4
		}
	}
	return 0
}

// dealBreakerPenalty applies one penalty unit per matched deal breaker.
// Penalties stack across breakers.
func dealBreakerPenalty(ev *catalog.Event, breakers []string, penalty int) int {
	total := 0
	for _, breaker := range breakers {
		switch strings.ToLower(breaker) {
		case "pure_policy":
			if ev.TechnicalDepth <= 2 && hasKeywordCategory(ev.Keywords, "ai governance & ethics") {
				total += penalty
			}
		case "highly_technical":
			if ev.TechnicalDepth >= 4 {
				total += penalty
			}
		case "global_south":
			for _, kw := range ev.Keywords {
				if strings.Contains(strings.ToLower(kw.Keyword), "global south") {
					total += penalty
					break
				}
			}
		case "large_keynote":
			sessionType := strings.ToLower(ev.SessionType)
			if strings.Contains(sessionType, "keynote") || strings.Contains(sessionType, "plenary") {
				total += penalty
			}
		case "sushma_swaraj_bhavan":
			if strings.Contains(strings.ToLower(ev.Venue), "sushma swaraj bhavan") {
				total += penalty
			}
		}
	}
	return total
}

func hasKeywordCategory(keywords []catalog.Keyword, category string) bool {
	for _, kw := range keywords {
		if strings.ToLower(kw.Category) == category {
			return true
		}
	}
	return false
}
