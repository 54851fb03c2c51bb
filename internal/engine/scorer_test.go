// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package engine

import (
	"testing"

	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/profile"
)

func TestScoreEventUnavailableDateIsHardFilter(t *testing.T) {
	e := newTestEngine(t)
	p := baseProfile()
	ev := event(1, "10:00", "11:00")
	ev.Date = "2026-02-20" // not selected
	ev.Keywords = []catalog.Keyword{{Category: "AI", Keyword: "agents"}}
	p.KeywordInterests = ev.Keywords

	se := e.ScoreEvent(&ev, p)
	if se.Score != 0 {
		t.Errorf("Score = %d, want 0", se.Score)
	}
	if se.Breakdown != (ScoreBreakdown{}) {
		t.Errorf("breakdown not all-zero: %+v", se.Breakdown)
	}
}

func TestKeywordScore(t *testing.T) {
	interests := []catalog.Keyword{
		{Category: "AI Technology & Architecture", Keyword: "Agents"},
	}

	tests := []struct {
		name string
		item []catalog.Keyword
		want int
	}{
		{name: "no keywords", item: nil, want: 0},
		{
			name: "exact match case insensitive",
			item: []catalog.Keyword{{Category: "ai technology & architecture", Keyword: "agents"}},
			want: 4,
		},
		{
			name: "category only",
			item: []catalog.Keyword{{Category: "AI Technology & Architecture", Keyword: "inference"}},
			want: 2,
		},
		{
			name: "unrelated category",
			item: []catalog.Keyword{{Category: "Business", Keyword: "agents"}},
			want: 0,
		},
		{
			name: "capped at twenty",
			item: []catalog.Keyword{
				{Category: "AI Technology & Architecture", Keyword: "Agents"},
				{Category: "AI Technology & Architecture", Keyword: "Agents"},
				{Category: "AI Technology & Architecture", Keyword: "Agents"},
				{Category: "AI Technology & Architecture", Keyword: "Agents"},
				{Category: "AI Technology & Architecture", Keyword: "Agents"},
				{Category: "AI Technology & Architecture", Keyword: "Agents"},
			},
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywordScore(tt.item, interests, 20, 4, 2)
			if got != tt.want {
				t.Errorf("keywordScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPersonaScore(t *testing.T) {
	tests := []struct {
		name      string
		personas  []string
		interests []string
		want      int
	}{
		{name: "no match", personas: []string{"founder"}, interests: []string{"investor"}, want: 0},
		{name: "single match", personas: []string{"Founder"}, interests: []string{"founder"}, want: 7},
		{name: "two matches", personas: []string{"founder", "investor"}, interests: []string{"founder", "investor"}, want: 14},
		{name: "capped", personas: []string{"a", "b", "c"}, interests: []string{"a", "b", "c"}, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := personaScore(tt.personas, tt.interests, 20, 7)
			if got != tt.want {
				t.Errorf("personaScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDepthScoreBands(t *testing.T) {
	tests := []struct {
		depth, preferred, want int
	}{
		{3, 3, 10},
		{4, 3, 5},
		{2, 3, 5},
		{5, 3, 2},
		{1, 3, 2},
		{1, 5, 0},
		{5, 1, 0},
	}

	for _, tt := range tests {
		got := depthScore(tt.depth, tt.preferred, 10)
		if got != tt.want {
			t.Errorf("depthScore(%d, %d) = %d, want %d", tt.depth, tt.preferred, got, tt.want)
		}
	}

	// Monotonic decay: further distance never scores higher.
	prev := depthScore(3, 3, 10)
	for depth := 4; depth <= 8; depth++ {
		cur := depthScore(depth, 3, 10)
		if cur > prev {
			t.Errorf("depthScore not monotonic at distance %d", depth-3)
		}
		prev = cur
	}
}

func TestGoalRelevanceScore(t *testing.T) {
	tests := []struct {
		name     string
		goals    []string
		missions []string
		want     int
	}{
		{name: "no event goals", goals: nil, missions: []string{"hiring"}, want: 0},
		{name: "no mission match", goals: []string{"upskilling"}, missions: []string{"hiring"}, want: 0},
		{name: "one match", goals: []string{"hiring"}, missions: []string{"hiring"}, want: 9},
		{name: "two matches", goals: []string{"hiring", "networking"}, missions: []string{"hiring", "networking"}, want: 15},
		{name: "sales matches partnerships", goals: []string{"partnerships"}, missions: []string{"sales"}, want: 9},
		{name: "unknown mission ignored", goals: []string{"hiring"}, missions: []string{"world_domination"}, want: 0},
		{name: "skipped missions default half weight", goals: []string{"networking"}, missions: nil, want: 5},
		{name: "skipped missions no match", goals: []string{"hiring"}, missions: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := goalRelevanceScore(tt.goals, tt.missions, 15)
			if got != tt.want {
				t.Errorf("goalRelevanceScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNetworkingSignalScore(t *testing.T) {
	heavyDense := &catalog.Event{NetworkingSignals: catalog.NetworkingSignals{
		IsHeavyHitter: true, DecisionMakerDensity: catalog.DensityHigh,
	}}
	heavyOnly := &catalog.Event{NetworkingSignals: catalog.NetworkingSignals{
		IsHeavyHitter: true, DecisionMakerDensity: catalog.DensityLow,
	}}
	quiet := &catalog.Event{NetworkingSignals: catalog.NetworkingSignals{
		DecisionMakerDensity: catalog.DensityLow,
	}}
	mainVenue := &catalog.Event{Venue: "Bharat Mandapam, Hall 3"}
	expoVenue := &catalog.Event{Venue: "Bharat Mandapam Expo Area"}

	tests := []struct {
		name    string
		ev      *catalog.Event
		density profile.NetworkingDensity
		want    int
	}{
		{name: "high power both signals", ev: heavyDense, density: profile.DensityHighPower, want: 15},
		{name: "high power one signal", ev: heavyOnly, density: profile.DensityHighPower, want: 8},
		{name: "high power no signal", ev: quiet, density: profile.DensityHighPower, want: 0},
		{name: "high volume main venue", ev: mainVenue, density: profile.DensityHighVolume, want: 15},
		{name: "high volume expo", ev: expoVenue, density: profile.DensityHighVolume, want: 5},
		{name: "high volume other venue", ev: quiet, density: profile.DensityHighVolume, want: 0},
		{name: "balanced flat half", ev: quiet, density: profile.DensityBalanced, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := networkingSignalScore(tt.ev, tt.density, 15)
			if got != tt.want {
				t.Errorf("networkingSignalScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSectorScore(t *testing.T) {
	keywords := []catalog.Keyword{
		{Category: "AI Technology & Architecture", Keyword: "agents"},
		{Category: "Business & Entrepreneurship", Keyword: "gtm"},
		{Category: "AI Governance & Ethics", Keyword: "policy"},
	}

	tests := []struct {
		name    string
		sectors []string
		want    int
	}{
		{name: "no sectors", sectors: nil, want: 0},
		{name: "no category hit", sectors: []string{"healthcare"}, want: 0},
		{name: "one sector", sectors: []string{"developer_tools"}, want: 5},
		{name: "two sectors", sectors: []string{"developer_tools", "fintech"}, want: 8},
		{name: "three sectors", sectors: []string{"developer_tools", "fintech", "government"}, want: 10},
		{name: "unknown sector ignored", sectors: []string{"space_mining", "fintech"}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sectorScore(keywords, tt.sectors, 10)
			if got != tt.want {
				t.Errorf("sectorScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeniorityScore(t *testing.T) {
	tests := []struct {
		name     string
		speakers string
		want     int
	}{
		{name: "empty", speakers: "", want: 0},
		{name: "ceo", speakers: "Jane Roe, CEO of Acme", want: 10},
		{name: "minister", speakers: "Hon. Minister of IT", want: 10},
		{name: "vp", speakers: "Sam Lee, VP Engineering", want: 7},
		{name: "partner", speakers: "Alex Kim, Partner at Fund", want: 7},
		{name: "manager", speakers: "Pat Chen, Product Manager", want: 4},
		{name: "no title", speakers: "Jordan Diaz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seniorityScore(tt.speakers, 10)
			if got != tt.want {
				t.Errorf("seniorityScore(%q) = %d, want %d", tt.speakers, got, tt.want)
			}
		})
	}
}

func TestDealBreakerPenalty(t *testing.T) {
	governance := &catalog.Event{
		TechnicalDepth: 1,
		Keywords:       []catalog.Keyword{{Category: "AI Governance & Ethics", Keyword: "regulation"}},
	}
	deep := &catalog.Event{TechnicalDepth: 5}
	keynote := &catalog.Event{TechnicalDepth: 1, SessionType: "Plenary Keynote"}
	venue := &catalog.Event{TechnicalDepth: 1, Venue: "Sushma Swaraj Bhavan, Hall 2"}
	globalSouth := &catalog.Event{
		TechnicalDepth: 1,
		Keywords:       []catalog.Keyword{{Category: "Social Impact & Inclusion", Keyword: "Global South innovation"}},
	}

	tests := []struct {
		name     string
		ev       *catalog.Event
		breakers []string
		want     int
	}{
		{name: "none", ev: deep, breakers: nil, want: 0},
		{name: "pure policy hits shallow governance", ev: governance, breakers: []string{"pure_policy"}, want: -40},
		{name: "pure policy spares deep events", ev: deep, breakers: []string{"pure_policy"}, want: 0},
		{name: "highly technical", ev: deep, breakers: []string{"highly_technical"}, want: -40},
		{name: "global south keyword", ev: globalSouth, breakers: []string{"global_south"}, want: -40},
		{name: "large keynote", ev: keynote, breakers: []string{"large_keynote"}, want: -40},
		{name: "venue", ev: venue, breakers: []string{"sushma_swaraj_bhavan"}, want: -40},
		{name: "stacking", ev: keynote, breakers: []string{"large_keynote", "sushma_swaraj_bhavan", "highly_technical"}, want: -40},
		{name: "unknown breaker ignored", ev: deep, breakers: []string{"mystery"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dealBreakerPenalty(tt.ev, tt.breakers, -40)
			if got != tt.want {
				t.Errorf("dealBreakerPenalty = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreEventClampsNegativeTotals(t *testing.T) {
	e := newTestEngine(t)
	p := baseProfile()
	p.DealBreakers = []string{"highly_technical"}
	p.NetworkingDensityPref = profile.DensityHighPower

	ev := event(1, "10:00", "11:00")
	ev.TechnicalDepth = 5 // distance 2 from preference, plus the breaker

	se := e.ScoreEvent(&ev, p)
	if se.Score != 0 {
		t.Errorf("Score = %d, want 0 (clamped)", se.Score)
	}
	if se.Breakdown.DealBreakerPenalty != -40 {
		t.Errorf("penalty = %d, want -40 preserved in breakdown", se.Breakdown.DealBreakerPenalty)
	}
}

func TestScoreEventBreakdownSumsToScore(t *testing.T) {
	e := newTestEngine(t)
	p := baseProfile()
	p.KeywordInterests = []catalog.Keyword{{Category: "AI Technology & Architecture", Keyword: "agents"}}
	p.PersonaInterests = []string{"founder"}
	p.Sectors = []string{"developer_tools"}
	p.NetworkingDensityPref = profile.DensityHighPower

	ev := event(1, "10:00", "11:00")
	ev.Keywords = []catalog.Keyword{{Category: "AI Technology & Architecture", Keyword: "agents"}}
	ev.TargetPersonas = []string{"founder"}
	ev.GoalRelevance = []string{"fundraising"}
	ev.Speakers = "Jane Roe, CEO"
	ev.NetworkingSignals.IsHeavyHitter = true
	ev.NetworkingSignals.DecisionMakerDensity = catalog.DensityHigh

	se := e.ScoreEvent(&ev, p)
	if se.Score != se.Breakdown.Sum() {
		t.Errorf("Score %d != breakdown sum %d", se.Score, se.Breakdown.Sum())
	}
	want := 4 + 7 + 10 + 9 + 15 + 5 + 10 // keyword, persona, depth, goal, networking, sector, seniority
	if se.Score != want {
		t.Errorf("Score = %d, want %d (breakdown %+v)", se.Score, want, se.Breakdown)
	}
}

func TestScoreExhibitor(t *testing.T) {
	e := newTestEngine(t)
	p := baseProfile()
	p.KeywordInterests = []catalog.Keyword{{Category: "AI Technology & Architecture", Keyword: "agents"}}
	p.PersonaInterests = []string{"founder"}

	x := catalog.Exhibitor{
		ID:   1,
		Name: "Acme",
		Keywords: []catalog.Keyword{
			{Category: "AI Technology & Architecture", Keyword: "agents"},
		},
		TargetPersonas: []string{"founder", "investor"},
	}

	sx := e.ScoreExhibitor(&x, p)
	if sx.Breakdown.Keyword != 10 {
		t.Errorf("keyword = %d, want 10", sx.Breakdown.Keyword)
	}
	if sx.Breakdown.Persona != 10 {
		t.Errorf("persona = %d, want 10", sx.Breakdown.Persona)
	}
	if sx.Score != 20 {
		t.Errorf("Score = %d, want 20", sx.Score)
	}
}

func TestTopExhibitorsLimitsAndOrders(t *testing.T) {
	e := newTestEngine(t)
	p := baseProfile()
	p.PersonaInterests = []string{"founder"}

	var pool []catalog.Exhibitor
	for i := 1; i <= 8; i++ {
		x := catalog.Exhibitor{ID: i, Name: "X"}
		if i%2 == 0 {
			x.TargetPersonas = []string{"founder"}
		}
		pool = append(pool, x)
	}

	top := e.TopExhibitors(pool, p)
	if len(top) != 5 {
		t.Fatalf("len = %d, want 5", len(top))
	}
	// The four persona matches come first, then the lowest-id zero scorer.
	for i := 0; i < 4; i++ {
		if top[i].Score == 0 {
			t.Errorf("top[%d] has zero score before scored exhibitors exhausted", i)
		}
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Error("TopExhibitors not sorted by score descending")
		}
	}
}
