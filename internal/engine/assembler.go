// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"errors"
	"sort"
	"time"

	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/metrics"
	"github.com/summitry/strategist/internal/profile"
)

// ErrNoAvailableDates is returned when the profile selects no dates at
// all. This is a caller error, not a data error; bad catalog data never
// fails assembly.
var ErrNoAvailableDates = errors.New("profile has no available dates")

// BuildPlan runs the full pipeline for one attendee: per selected date it
// scores the day's events, drops zero scores, resolves slot conflicts,
// bounds the day to its primary quota, fills long gaps, attaches
// alternatives, and classifies tiers. Exhibitors are scored across the
// whole catalog. The result is deterministic for a given snapshot and
// profile.
func (e *Engine) BuildPlan(snap *catalog.Snapshot, p *profile.UserProfile) (*Plan, error) {
	if len(p.AvailableDates) == 0 {
		return nil, ErrNoAvailableDates
	}

	start := time.Now()

	dates := append([]string(nil), p.AvailableDates...)
	sort.Strings(dates)
	perDayCap := e.perDayPrimaryCap(len(dates))

	var schedule []DaySchedule
	totalPrimaries := 0
	for _, date := range dates {
		day := e.assembleDay(snap, p, date, perDayCap)
		for i := range day.Events {
			if !day.Events[i].IsFallback {
				totalPrimaries++
			}
		}
		schedule = append(schedule, day)
	}

	plan := &Plan{
		Headline:           p.Headline(),
		StrategyNote:       p.StrategyNote(),
		Schedule:           schedule,
		Exhibitors:         e.TopExhibitors(snap.Exhibitors, p),
		TotalEvents:        totalPrimaries,
		Profile:            p,
		CatalogFingerprint: snap.Fingerprint,
	}

	elapsed := time.Since(start)
	metrics.PlanGenerationDuration.Observe(elapsed.Seconds())
	metrics.PlansGenerated.WithLabelValues("ok").Inc()
	e.logger.Debug().
		Str("role", string(p.Role)).
		Int("dates", len(dates)).
		Int("primaries", totalPrimaries).
		Dur("elapsed", elapsed).
		Msg("plan assembled")

	return plan, nil
}

// perDayPrimaryCap derives the per-day primary quota. Fewer selected dates
// get denser days; the plan-wide total is still bounded.
func (e *Engine) perDayPrimaryCap(numDates int) int {
	a := e.config.Assembly
	quota := a.SparsePerDayQuota
	if numDates <= 2 {
		quota = a.DensePerDayQuota
	}
	target := min(a.MaxPrimariesPerPlan, quota*numDates)
	perDay := (target + numDates - 1) / numDates
	if perDay < 1 {
		perDay = 1
	}
	return perDay
}

// assembleDay builds one DaySchedule.
func (e *Engine) assembleDay(snap *catalog.Snapshot, p *profile.UserProfile, date string, perDayCap int) DaySchedule {
	a := e.config.Assembly

	// Score the day's events and keep only positive scores. Zero means
	// either no overlap with the profile or a hard filter.
	var pool []ScoredEvent
	for i := range snap.Events {
		ev := &snap.Events[i]
		if ev.Date != date {
			continue
		}
		se := e.ScoreEvent(ev, p)
		if se.Score > 0 {
			pool = append(pool, se)
		}
	}

	sortByScoreThenID(pool)

	// Conflict resolution works on a bounded candidate pool, but gap
	// filling draws from every positive-scored event of the day so a
	// quiet slot can still be covered by a low-ranked event.
	candidates := pool
	if len(candidates) > a.CandidatesPerDay {
		candidates = pool[:a.CandidatesPerDay]
	}

	resolved := ResolveConflicts(candidates)
	kept, fallbackByPrimary := e.selectPrimaries(resolved, perDayCap)
	fills := e.fillGaps(kept, pool, date)
	kept = append(kept, fills...)

	for i := range kept {
		se := &kept[i]
		se.Tier = e.ClassifyTier(se.Score)
		if !se.IsFallback {
			se.Alternatives = e.FindAlternatives(se, fallbackByPrimary[se.Event.EventID], snap, p)
		}
	}

	sortChronologically(kept)
	return DaySchedule{Date: date, Events: kept}
}

// selectPrimaries bounds a resolved day to perDayCap primaries, keeping
// the highest scores and the fallbacks that reference a kept primary. It
// also returns the fallback event_id per kept primary so the alternatives
// finder can exclude it.
func (e *Engine) selectPrimaries(resolved []ScoredEvent, perDayCap int) ([]ScoredEvent, map[string]string) {
	var primaries []ScoredEvent
	fallbacks := make(map[string]ScoredEvent)
	for _, se := range resolved {
		if se.IsFallback {
			fallbacks[se.FallbackFor] = se
		} else {
			primaries = append(primaries, se)
		}
	}

	sortByScoreThenID(primaries)
	if len(primaries) > perDayCap {
		primaries = primaries[:perDayCap]
	}

	fallbackByPrimary := make(map[string]string, len(primaries))
	kept := make([]ScoredEvent, 0, len(primaries)*2)
	for _, primary := range primaries {
		kept = append(kept, primary)
		if fb, ok := fallbacks[primary.Event.EventID]; ok {
			fallbackByPrimary[primary.Event.EventID] = fb.Event.EventID
			kept = append(kept, fb)
		}
	}
	return kept, fallbackByPrimary
}

// fillGaps promotes the best unused events into schedule gaps longer than
// the configured threshold, including the stretch between the last primary
// and the end of the conference day. Fills are flagged IsTimeSlotFill and
// capped per day.
func (e *Engine) fillGaps(kept, pool []ScoredEvent, date string) []ScoredEvent {
	a := e.config.Assembly

	used := make(map[string]struct{}, len(kept))
	var primaries []ScoredEvent
	for _, se := range kept {
		used[se.Event.EventID] = struct{}{}
		if !se.IsFallback {
			primaries = append(primaries, se)
		}
	}
	if len(primaries) == 0 {
		return nil
	}

	var fills []ScoredEvent
	for pass := 0; pass < a.MaxGapFillsPerDay; pass++ {
		timeline := append(append([]ScoredEvent(nil), primaries...), fills...)
		sortChronologically(timeline)

		gaps := scheduleGaps(timeline, a.GapThresholdMinutes, a.DayEndMinute)
		if len(gaps) == 0 {
			break
		}

		filled := false
		for _, gap := range gaps {
			if best := bestFillFor(pool, used, gap); best != nil {
				fill := *best
				fill.IsFallback = false
				fill.FallbackFor = ""
				fill.IsTimeSlotFill = true
				fills = append(fills, fill)
				used[fill.Event.EventID] = struct{}{}
				filled = true
				break
			}
		}
		if !filled {
			break
		}
	}
	return fills
}

type gapWindow struct {
	startMin int
	endMin   int
}

// scheduleGaps finds the windows longer than threshold between consecutive
// timeline events, plus the window after the last event until dayEnd.
func scheduleGaps(timeline []ScoredEvent, threshold, dayEnd int) []gapWindow {
	var gaps []gapWindow
	for i := 0; i < len(timeline)-1; i++ {
		end, err := timeline[i].Event.EndMinute()
		if err != nil {
			continue
		}
		nextStart, err := timeline[i+1].Event.StartMinute()
		if err != nil {
			continue
		}
		if nextStart-end > threshold {
			gaps = append(gaps, gapWindow{startMin: end, endMin: nextStart})
		}
	}
	last := timeline[len(timeline)-1]
	if end, err := last.Event.EndMinute(); err == nil && dayEnd-end > threshold {
		gaps = append(gaps, gapWindow{startMin: end, endMin: dayEnd})
	}
	return gaps
}

// bestFillFor returns the highest-scoring unused pool event starting
// inside the gap, or nil.
func bestFillFor(pool []ScoredEvent, used map[string]struct{}, gap gapWindow) *ScoredEvent {
	var best *ScoredEvent
	for i := range pool {
		se := &pool[i]
		if _, taken := used[se.Event.EventID]; taken {
			continue
		}
		start, err := se.Event.StartMinute()
		if err != nil || start < gap.startMin || start >= gap.endMin {
			continue
		}
		if best == nil || se.Score > best.Score {
			best = se
		}
	}
	return best
}

func sortByScoreThenID(events []ScoredEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Score != events[j].Score {
			return events[i].Score > events[j].Score
		}
		return events[i].Event.ID < events[j].Event.ID
	})
}

func sortChronologically(events []ScoredEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Event.StartTime != events[j].Event.StartTime {
			return events[i].Event.StartTime < events[j].Event.StartTime
		}
		return events[i].Event.ID < events[j].Event.ID
	})
}
