//go:build !integration

package recommend

import (
	"math"
	"testing"
	"time"

	"plateRank/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExplorationScoreUnratedItem(t *testing.T) {
	item := domain.CatalogItem{ID: 1}

	got := explorationScore(item, 0.2, 0)
	if !almostEqual(got, 0.5) {
		t.Fatalf("unrated item with zero draw: got %v, want 0.5", got)
	}
}

func TestExplorationScoreHighRated(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Rating: 5, RatingCount: 100}

	got := explorationScore(item, 0, 0)
	// successes=100, failures=0 -> mean 101/102
	want := 101.0 / 102.0
	if !almostEqual(got, want) {
		t.Fatalf("high-rated item: got %v, want %v", got, want)
	}
}

func TestExplorationScoreClipsAtOne(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Rating: 5, RatingCount: 1000}

	got := explorationScore(item, 0.5, 1.0)
	if got != 1.0 {
		t.Fatalf("score should clip at 1.0, got %v", got)
	}
}

func TestCollaborativeColdStart(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Category: "pizza"}

	got := collaborativeScore(item, nil, nil)
	if got != 0.5 {
		t.Fatalf("cold start must be exactly 0.5, got %v", got)
	}
}

func TestCollaborativeFullOverlap(t *testing.T) {
	item := domain.CatalogItem{ID: 9, Category: "pizza"}
	history := []uint64{1, 2, 3}
	categories := map[uint64]string{1: "pizza", 2: "pizza", 3: "pizza"}

	got := collaborativeScore(item, history, categories)
	if !almostEqual(got, 0.95) {
		t.Fatalf("full overlap: got %v, want 0.95", got)
	}
}

func TestCollaborativeNoOverlap(t *testing.T) {
	item := domain.CatalogItem{ID: 9, Category: "sushi"}
	history := []uint64{1, 2}
	categories := map[uint64]string{1: "pizza", 2: "pizza"}

	got := collaborativeScore(item, history, categories)
	if !almostEqual(got, 0.3) {
		t.Fatalf("no overlap: got %v, want 0.3", got)
	}
}

func TestCollaborativeMissingCategoriesDegrades(t *testing.T) {
	item := domain.CatalogItem{ID: 9, Category: "pizza"}
	history := []uint64{1, 2, 3}

	got := collaborativeScore(item, history, map[uint64]string{})
	if got != 0.5 {
		t.Fatalf("missing category data must degrade to 0.5, got %v", got)
	}
}

func TestCollaborativeRecentEntriesWeighDouble(t *testing.T) {
	item := domain.CatalogItem{ID: 9, Category: "pizza"}
	// first 3 entries (recent) match, the 4th does not
	history := []uint64{1, 2, 3, 4}
	categories := map[uint64]string{1: "pizza", 2: "pizza", 3: "pizza", 4: "sushi"}

	got := collaborativeScore(item, history, categories)
	// matched 6 of total 7 weighted
	want := 0.3 + 0.65*(6.0/7.0)
	if !almostEqual(got, want) {
		t.Fatalf("recency weighting: got %v, want %v", got, want)
	}
}

func morningContext() RequestContext {
	// Wednesday 09:00
	return NewRequestContext("s1", time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC))
}

func TestContextualBreakfastInMorning(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Tags: []string{"breakfast"}}

	got := contextualScore(item, morningContext())
	if got < 0.8 {
		t.Fatalf("breakfast item in morning: got %v, want >= 0.8", got)
	}
}

func TestContextualNoMatches(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Tags: []string{"dinner"}}

	got := contextualScore(item, morningContext())
	if got != 0.5 {
		t.Fatalf("no situational match: got %v, want 0.5", got)
	}
}

func TestContextualBonusesStackAndClip(t *testing.T) {
	item := domain.CatalogItem{
		ID:          1,
		Tags:        []string{"breakfast", "comfort", "family", "quick"},
		PrepTimeMin: 10,
	}
	// Saturday 09:00, cold, mobile
	rctx := NewRequestContext("s1", time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC))
	rctx.Weather = "cold"
	rctx.Device = "mobile"

	got := contextualScore(item, rctx)
	if got != 1.0 {
		t.Fatalf("stacked bonuses should clip at 1.0, got %v", got)
	}
}

func TestContextualQuickNeedsShortPrep(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Tags: []string{"quick"}, PrepTimeMin: 30}
	rctx := morningContext()
	rctx.Device = "mobile"

	got := contextualScore(item, rctx)
	if got != 0.5 {
		t.Fatalf("slow quick-tagged item should get no bonus, got %v", got)
	}
}

func TestTrendingFlatVelocity(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Popularity: 0.5}

	got := trendingScore(item, nil)
	if !almostEqual(got, 0.5) {
		t.Fatalf("flat velocity: got %v, want 0.5", got)
	}
}

func TestTrendingRisingClipsAtOne(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Popularity: 0.9}

	got := trendingScore(item, map[uint64]float64{1: 2.0})
	if got != 1.0 {
		t.Fatalf("rising velocity should clip at 1.0, got %v", got)
	}
}

func TestTrendingZeroPopularityUsesNeutral(t *testing.T) {
	item := domain.CatalogItem{ID: 1}

	got := trendingScore(item, map[uint64]float64{1: 1.2})
	if !almostEqual(got, 0.6) {
		t.Fatalf("zero popularity should start from 0.5: got %v, want 0.6", got)
	}
}

func TestAffinityEmptyCart(t *testing.T) {
	item := domain.CatalogItem{ID: 1, Category: "sides"}

	got := affinityScore(item, nil, DefaultRules(), 0.3, nil, nil)
	if got != 0.5 {
		t.Fatalf("empty cart must be exactly 0.5, got %v", got)
	}
}

func TestAffinityCategoryRuleMatch(t *testing.T) {
	item := domain.CatalogItem{ID: 9, Category: "sides"}
	cart := []uint64{1}
	categories := map[uint64]string{1: "main_course"}

	got := affinityScore(item, cart, DefaultRules(), 0.3, categories, nil)
	// main_course -> sides rule has confidence 0.6
	want := 0.5 + 0.6*0.5
	if !almostEqual(got, want) {
		t.Fatalf("category rule match: got %v, want %v", got, want)
	}
}

func TestAffinityTagRuleMatch(t *testing.T) {
	item := domain.CatalogItem{ID: 9, Category: "beverage", Tags: []string{"cooling"}}
	cart := []uint64{1}
	tags := map[uint64][]string{1: {"spicy"}}

	got := affinityScore(item, cart, DefaultRules(), 0.3, nil, tags)
	want := 0.5 + 0.65*0.5
	if !almostEqual(got, want) {
		t.Fatalf("tag rule match: got %v, want %v", got, want)
	}
}

func TestAffinityBelowMinConfidenceIgnored(t *testing.T) {
	item := domain.CatalogItem{ID: 9, Category: "sides"}
	cart := []uint64{1}
	categories := map[uint64]string{1: "main_course"}

	got := affinityScore(item, cart, DefaultRules(), 0.7, categories, nil)
	if got != 0.5 {
		t.Fatalf("rules below min confidence must not contribute, got %v", got)
	}
}

func TestAffinityStrongestRuleWins(t *testing.T) {
	rules := []domain.AssociationRule{
		{AntecedentKind: "category", Antecedent: "main_course", ConsequentKind: "category", Consequent: "sides", Confidence: 0.4},
		{AntecedentKind: "category", Antecedent: "main_course", ConsequentKind: "category", Consequent: "sides", Confidence: 0.8},
	}
	item := domain.CatalogItem{ID: 9, Category: "sides"}
	cart := []uint64{1}
	categories := map[uint64]string{1: "main_course"}

	got := affinityScore(item, cart, rules, 0.3, categories, nil)
	want := 0.5 + 0.8*0.5
	if !almostEqual(got, want) {
		t.Fatalf("strongest rule should win: got %v, want %v", got, want)
	}
}
