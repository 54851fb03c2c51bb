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

// ScoreExhibitor scores one exhibitor against a profile. Exhibitors have
// no date or slot, so there is no hard filter; the score is the sum of the
// capped keyword and persona components.
func (e *Engine) ScoreExhibitor(x *catalog.Exhibitor, p *profile.UserProfile) ScoredExhibitor {
	cfg := e.config.Exhibitor
	breakdown := ExhibitorBreakdown{
		Keyword: keywordScore(x.Keywords, p.KeywordInterests, cfg.KeywordCap, cfg.KeywordExactPoints, cfg.KeywordCategoryPoints),
		Persona: personaScore(x.TargetPersonas, p.PersonaInterests, cfg.PersonaCap, cfg.PersonaPoints),
	}
	return ScoredExhibitor{
		Exhibitor: x,
		Score:     breakdown.Keyword + breakdown.Persona,
		Breakdown: breakdown,
	}
}

// TopExhibitors scores every exhibitor and returns the best TopN, ordered
// by score descending with ties broken by exhibitor id.
func (e *Engine) TopExhibitors(exhibitors []catalog.Exhibitor, p *profile.UserProfile) []ScoredExhibitor {
	scored := make([]ScoredExhibitor, 0, len(exhibitors))
	for i := range exhibitors {
		scored = append(scored, e.ScoreExhibitor(&exhibitors[i], p))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Exhibitor.ID < scored[j].Exhibitor.ID
	})
	if len(scored) > e.config.Exhibitor.TopN {
		scored = scored[:e.config.Exhibitor.TopN]
	}
	return scored
}
