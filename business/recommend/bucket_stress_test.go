//go:build !integration

package recommend

import (
	"fmt"
	"testing"
	"time"
)

// scenario params
const (
	stressNumSessions = 30000
	stressPoolSize    = 400
)

func TestBucketDistributionRoughlyUniform(t *testing.T) {
	counts := map[string]int{}
	for i := 0; i < stressNumSessions; i++ {
		counts[assignExperimentGroup(fmt.Sprintf("stress-session-%d", i))]++
	}

	t.Logf("bucket counts: %v", counts)

	// each bucket should land near 1/3; allow a wide tolerance
	lo := stressNumSessions / 4
	hi := stressNumSessions / 2
	for _, g := range experimentGroups {
		if counts[g] < lo || counts[g] > hi {
			t.Fatalf("bucket %q count %d outside [%d,%d]", g, counts[g], lo, hi)
		}
	}
}

func TestLargePoolRankingSane(t *testing.T) {
	p := ProfileFor(VerticalFoodDelivery)
	e := NewEngine(p, WithSeed(99))

	pool := testPool(stressPoolSize)
	rctx := NewRequestContext("stress-session", time.Date(2025, 6, 4, 19, 0, 0, 0, time.UTC))

	recs := e.Recommend(rctx, pool, Signals{}, 50)
	if len(recs) != 50 {
		t.Fatalf("got %d results, want 50", len(recs))
	}

	seen := map[uint64]bool{}
	for i, r := range recs {
		if r.Rank != i+1 {
			t.Fatalf("rank gap at %d: %d", i, r.Rank)
		}
		if r.Score < 0 || r.Score > 1 {
			t.Fatalf("score out of range: %v", r.Score)
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Fatalf("confidence out of range: %v", r.Confidence)
		}
		if seen[r.ItemID] {
			t.Fatalf("duplicate item %d in results", r.ItemID)
		}
		seen[r.ItemID] = true
	}
}
