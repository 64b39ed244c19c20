//go:build !integration

package recommend

import (
	"testing"
	"time"

	"plateRank/domain"
)

func testProfile() Profile {
	p := ProfileFor(VerticalFoodDelivery)
	p.ExplorationRate = 0 // deterministic unless a test opts in
	p.DiversityFactor = 0
	return p
}

func testPool(n int) []domain.CatalogItem {
	categories := []string{"pizza", "sushi", "dessert", "beverage"}
	items := make([]domain.CatalogItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, domain.CatalogItem{
			ID:          uint64(i),
			ItemName:    "item",
			Category:    categories[i%len(categories)],
			Price:       9.99,
			Rating:      float64(i%5) + 0.5,
			RatingCount: 10 * i,
			Popularity:  float64(i) / float64(n),
			IsOrderable: true,
		})
	}
	return items
}

func testRequest() RequestContext {
	return NewRequestContext("session-1", time.Date(2025, 6, 4, 12, 30, 0, 0, time.UTC))
}

func TestRecommendReturnsAtMostN(t *testing.T) {
	e := NewEngine(testProfile(), WithSeed(42))

	recs := e.Recommend(testRequest(), testPool(5), Signals{}, 3)
	if len(recs) != 3 {
		t.Fatalf("pool 5, n 3: got %d results", len(recs))
	}
}

func TestRecommendSmallPool(t *testing.T) {
	e := NewEngine(testProfile(), WithSeed(42))

	recs := e.Recommend(testRequest(), testPool(2), Signals{}, 10)
	if len(recs) != 2 {
		t.Fatalf("pool 2, n 10: got %d results, want 2", len(recs))
	}
}

func TestRecommendEmptyPool(t *testing.T) {
	e := NewEngine(testProfile(), WithSeed(42))

	recs := e.Recommend(testRequest(), nil, Signals{}, 10)
	if recs == nil || len(recs) != 0 {
		t.Fatalf("empty pool must return empty non-nil slice, got %v", recs)
	}
}

func TestRecommendNonPositiveN(t *testing.T) {
	e := NewEngine(testProfile(), WithSeed(42))

	for _, n := range []int{0, -1} {
		if recs := e.Recommend(testRequest(), testPool(5), Signals{}, n); len(recs) != 0 {
			t.Fatalf("n=%d must return no results, got %d", n, len(recs))
		}
	}
}

func TestRecommendRanksContiguous(t *testing.T) {
	e := NewEngine(testProfile(), WithSeed(42))

	recs := e.Recommend(testRequest(), testPool(10), Signals{}, 10)
	for i, r := range recs {
		if r.Rank != i+1 {
			t.Fatalf("rank at position %d is %d, want %d", i, r.Rank, i+1)
		}
	}
}

func TestRecommendSeededIdempotence(t *testing.T) {
	p := ProfileFor(VerticalFoodDelivery) // exploration on
	pool := testPool(20)
	req := testRequest()

	a := NewEngine(p, WithSeed(7)).Recommend(req, pool, Signals{}, 10)
	b := NewEngine(p, WithSeed(7)).Recommend(req, pool, Signals{}, 10)

	if len(a) != len(b) {
		t.Fatalf("seeded runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ItemID != b[i].ItemID || a[i].Score != b[i].Score {
			t.Fatalf("seeded runs diverge at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRecommendSkipsNegativePrice(t *testing.T) {
	pool := testPool(4)
	pool[1].Price = -1

	e := NewEngine(testProfile(), WithSeed(42))
	recs := e.Recommend(testRequest(), pool, Signals{}, 10)

	if len(recs) != 3 {
		t.Fatalf("negative-price item must be skipped: got %d results", len(recs))
	}
	for _, r := range recs {
		if r.ItemID == pool[1].ID {
			t.Fatalf("negative-price item %d leaked into results", r.ItemID)
		}
	}
}

func TestRecommendZeroDiversityOrdersByCombined(t *testing.T) {
	e := NewEngine(testProfile(), WithSeed(42))

	recs := e.Recommend(testRequest(), testPool(8), Signals{}, 8)
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("diversity off: results must be sorted by score desc, %v after %v",
				recs[i].Score, recs[i-1].Score)
		}
	}
}

func TestRecommendExperimentGroupConsistent(t *testing.T) {
	e := NewEngine(testProfile(), WithSeed(42))

	recs := e.Recommend(testRequest(), testPool(6), Signals{}, 6)
	group := recs[0].ExperimentGroup
	if group != assignExperimentGroup("session-1") {
		t.Fatalf("experiment group %q does not match session hash", group)
	}
	for _, r := range recs {
		if r.ExperimentGroup != group {
			t.Fatalf("mixed experiment groups within one response")
		}
	}
}

func TestSetProfileSwapsAtRuntime(t *testing.T) {
	e := NewEngine(testProfile())

	grocery := ProfileFor(VerticalGrocery)
	e.SetProfile(grocery)

	if got := e.Profile().Vertical; got != VerticalGrocery {
		t.Fatalf("profile not swapped: got %v", got)
	}
}

func TestExplainMatchesRecommendOrder(t *testing.T) {
	p := testProfile()
	pool := testPool(10)
	req := testRequest()

	recs := NewEngine(p, WithSeed(3)).Recommend(req, pool, Signals{}, 5)
	dbg := NewEngine(p, WithSeed(3)).Explain(req, pool, Signals{}, 5)

	if len(recs) != len(dbg) {
		t.Fatalf("explain length %d, recommend length %d", len(dbg), len(recs))
	}
	for i := range recs {
		if recs[i].ItemID != dbg[i].ItemID {
			t.Fatalf("explain order diverges at %d: %d vs %d", i, dbg[i].ItemID, recs[i].ItemID)
		}
		if dbg[i].Rank != i+1 {
			t.Fatalf("explain rank at %d is %d", i, dbg[i].Rank)
		}
	}
}

func TestExplainKeepsRelevanceRank(t *testing.T) {
	p := ProfileFor(VerticalFoodDelivery)
	p.ExplorationRate = 0
	p.DiversityFactor = 0.6

	dbg := NewEngine(p, WithSeed(3)).Explain(testRequest(), testPool(10), Signals{}, 10)
	for _, d := range dbg {
		if d.RelevanceRank < 1 || d.RelevanceRank > len(dbg) {
			t.Fatalf("relevance rank out of range: %+v", d)
		}
	}
}
