// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import "sort"

// ResolveConflicts partitions one day's candidate pool into slot winners
// and fallbacks. Events are grouped by exact start slot; within a slot the
// highest-scoring candidate becomes the primary, the runner-up becomes its
// fallback, and further candidates are dropped from the plan (they remain
// reachable through the alternatives picker). Ties are broken by the pool
// order, which is score-then-catalog order, so resolution is deterministic
// for a given catalog and profile.
func ResolveConflicts(pool []ScoredEvent) []ScoredEvent {
	if len(pool) == 0 {
		return nil
	}

	type slotGroup struct {
		key     string
		members []ScoredEvent
	}

	groups := make(map[string]*slotGroup, len(pool))
	var order []*slotGroup
	for _, se := range pool {
		key := se.SlotKey()
		g, ok := groups[key]
		if !ok {
			g = &slotGroup{key: key}
			groups[key] = g
			order = append(order, g)
		}
		g.members = append(g.members, se)
	}

	// Slot groups come out in start-time order so fallbacks always follow
	// their primary in the resolved list.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].key < order[j].key
	})

	var resolved []ScoredEvent
	for _, g := range order {
		sort.SliceStable(g.members, func(i, j int) bool {
			return g.members[i].Score > g.members[j].Score
		})

		primary := g.members[0]
		primary.IsFallback = false
		primary.FallbackFor = ""
		resolved = append(resolved, primary)

		if len(g.members) >= 2 {
			fallback := g.members[1]
			fallback.IsFallback = true
			fallback.FallbackFor = primary.Event.EventID
			resolved = append(resolved, fallback)
		}
	}
	return resolved
}
