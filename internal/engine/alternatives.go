// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"sort"

	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/profile"
)

// FindAlternatives scans the catalog for events that overlap the primary's
// time window on the same date, excluding the primary itself and its
// designated fallback (the fallback already has its own entry in the plan
// and would duplicate a picker row). fallbackID may be empty when the slot
// was uncontested. Heavy hitters sort first, then title, so the picker
// order is stable across runs. Each candidate carries its real score
// against p so the picker can rank honestly; a nil profile scores all
// candidates zero. The result is capped at MaxAlternativesPerSlot.
func (e *Engine) FindAlternatives(primary *ScoredEvent, fallbackID string, snap *catalog.Snapshot, p *profile.UserProfile) []AlternativeEvent {
	exclude := map[string]struct{}{
		primary.Event.EventID: {},
	}
	if fallbackID != "" {
		exclude[fallbackID] = struct{}{}
	}

	var candidates []*catalog.Event
	for i := range snap.Events {
		ev := &snap.Events[i]
		if _, skip := exclude[ev.EventID]; skip {
			continue
		}
		if catalog.Overlaps(primary.Event, ev) {
			candidates = append(candidates, ev)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		hi, hj := candidates[i].NetworkingSignals.IsHeavyHitter, candidates[j].NetworkingSignals.IsHeavyHitter
		if hi != hj {
			return hi
		}
		return candidates[i].Title < candidates[j].Title
	})

	limit := e.config.Assembly.MaxAlternativesPerSlot
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	alts := make([]AlternativeEvent, 0, len(candidates))
	for _, ev := range candidates {
		score := 0
		if p != nil {
			score = e.ScoreEvent(ev, p).Score
		}
		alts = append(alts, AlternativeEvent{
			EventID:       ev.EventID,
			Title:         ev.Title,
			Tier:          TierWildcard,
			Score:         score,
			Venue:         ev.Venue,
			Room:          ev.Room,
			OneLiner:      ev.SummaryOneLiner,
			StartTime:     ev.StartTime,
			EndTime:       ev.EndTime,
			Speakers:      ev.Speakers,
			IsHeavyHitter: ev.NetworkingSignals.IsHeavyHitter,
		})
	}
	return alts
}
