// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

// ClassifyTier maps a score to its confidence band. Classification is
// monotonic in the score: a higher score never yields a lower tier.
func (e *Engine) ClassifyTier(score int) Tier {
	t := e.config.Tiers
	switch {
	case score >= t.MustAttend:
		return TierMustAttend
	case score >= t.ShouldAttend:
		return TierShouldAttend
	case score >= t.NiceToHave:
		return TierNiceToHave
	default:
		return TierWildcard
	}
}
