//go:build !integration

package recommend

import (
	"math"
	"testing"
)

func TestVerticalWeightsSumToOne(t *testing.T) {
	for _, v := range Verticals() {
		p := ProfileFor(v)
		if sum := p.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("vertical %s: weights sum to %v, want 1.0", v, sum)
		}
	}
}

func TestVerticalBoundsSane(t *testing.T) {
	for _, v := range Verticals() {
		p := ProfileFor(v)
		if p.DiversityFactor < 0 || p.DiversityFactor > 1 {
			t.Fatalf("vertical %s: diversity factor %v out of [0,1]", v, p.DiversityFactor)
		}
		if p.ExplorationRate < 0 || p.ExplorationRate > 1 {
			t.Fatalf("vertical %s: exploration rate %v out of [0,1]", v, p.ExplorationRate)
		}
		if p.TrendingWindowHours <= 0 {
			t.Fatalf("vertical %s: trending window %d must be positive", v, p.TrendingWindowHours)
		}
		if p.AffinityMinConfidence <= 0 || p.AffinityMinConfidence > 1 {
			t.Fatalf("vertical %s: affinity min confidence %v out of (0,1]", v, p.AffinityMinConfidence)
		}
	}
}

func TestUnknownVerticalFallsBackToGeneral(t *testing.T) {
	p := ProfileFor(Vertical("does_not_exist"))
	if p.Vertical != VerticalGeneral {
		t.Fatalf("unknown vertical should fall back to general, got %v", p.Vertical)
	}
}

func TestProfileForReturnsMatchingVertical(t *testing.T) {
	for _, v := range Verticals() {
		if got := ProfileFor(v).Vertical; got != v {
			t.Fatalf("ProfileFor(%s) returned vertical %s", v, got)
		}
	}
}
