//go:build !integration

package recommend

import (
	"fmt"
	"testing"

	"plateRank/domain"
)

func TestCombineIsConvex(t *testing.T) {
	w := Weights{Exploration: 0.2, Collaborative: 0.2, Contextual: 0.2, Trending: 0.2, Affinity: 0.2}

	all1 := domain.StrategyScores{Exploration: 1, Collaborative: 1, Contextual: 1, Trending: 1, Affinity: 1}
	if got := combine(all1, w); !almostEqual(got, 1.0) {
		t.Fatalf("all ones: got %v, want 1.0", got)
	}

	all0 := domain.StrategyScores{}
	if got := combine(all0, w); got != 0 {
		t.Fatalf("all zeros: got %v, want 0", got)
	}

	mixed := domain.StrategyScores{Exploration: 0.5, Collaborative: 0.5, Contextual: 0.5, Trending: 0.5, Affinity: 0.5}
	if got := combine(mixed, w); !almostEqual(got, 0.5) {
		t.Fatalf("all halves: got %v, want 0.5", got)
	}
}

func TestCombineClipsSloppyWeights(t *testing.T) {
	w := Weights{Exploration: 1, Collaborative: 1, Contextual: 1, Trending: 1, Affinity: 1}
	all1 := domain.StrategyScores{Exploration: 1, Collaborative: 1, Contextual: 1, Trending: 1, Affinity: 1}

	if got := combine(all1, w); got != 1.0 {
		t.Fatalf("overweighted combine should clip at 1.0, got %v", got)
	}
}

func TestReasonTagsThreshold(t *testing.T) {
	s := domain.StrategyScores{
		Exploration:   0.71,
		Collaborative: 0.7, // exactly at threshold: excluded
		Contextual:    0.9,
		Trending:      0.1,
		Affinity:      0.75,
	}

	reasons := reasonTags(s)
	want := []string{"highly_rated", "fits_the_moment", "goes_well_with_cart"}
	if len(reasons) != len(want) {
		t.Fatalf("got %v, want %v", reasons, want)
	}
	for i := range want {
		if reasons[i] != want[i] {
			t.Fatalf("got %v, want %v", reasons, want)
		}
	}
}

func TestReasonTagsEmpty(t *testing.T) {
	if reasons := reasonTags(domain.StrategyScores{}); len(reasons) != 0 {
		t.Fatalf("no strategy above threshold should yield no reasons, got %v", reasons)
	}
}

func TestConfidenceAgreement(t *testing.T) {
	agree := domain.StrategyScores{Exploration: 0.8, Collaborative: 0.8, Contextual: 0.8}
	if got := confidence(agree); !almostEqual(got, 1.0) {
		t.Fatalf("perfect agreement: got %v, want 1.0", got)
	}

	disagree := domain.StrategyScores{Exploration: 1, Collaborative: 0, Contextual: 0.5}
	if got := confidence(disagree); got >= confidence(agree) {
		t.Fatalf("disagreement must lower confidence: got %v", got)
	}
}

func TestAssignExperimentGroupDeterministic(t *testing.T) {
	for _, sid := range []string{"a", "session-123", "xyz"} {
		first := assignExperimentGroup(sid)
		for i := 0; i < 10; i++ {
			if got := assignExperimentGroup(sid); got != first {
				t.Fatalf("session %q flipped bucket: %q vs %q", sid, first, got)
			}
		}
	}
}

func TestAssignExperimentGroupCoversAllBuckets(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[assignExperimentGroup(fmt.Sprintf("session-%d", i))] = true
	}
	for _, g := range experimentGroups {
		if !seen[g] {
			t.Fatalf("bucket %q never assigned over 1000 sessions", g)
		}
	}
}

func TestVariance(t *testing.T) {
	if got := variance(1, 1, 1); got != 0 {
		t.Fatalf("identical values: got %v, want 0", got)
	}
	if got := variance(); got != 0 {
		t.Fatalf("no values: got %v, want 0", got)
	}
	if got := variance(0, 1); !almostEqual(got, 0.25) {
		t.Fatalf("variance(0,1): got %v, want 0.25", got)
	}
}

func TestJaccard(t *testing.T) {
	if got := jaccard(nil, nil); got != 0 {
		t.Fatalf("empty sets: got %v, want 0", got)
	}
	if got := jaccard([]string{"a", "b"}, []string{"b", "c"}); !almostEqual(got, 1.0/3.0) {
		t.Fatalf("partial overlap: got %v, want 1/3", got)
	}
	if got := jaccard([]string{"a"}, []string{"a"}); !almostEqual(got, 1.0) {
		t.Fatalf("identical sets: got %v, want 1", got)
	}
}

func TestCosine(t *testing.T) {
	if got := cosine([]float64{1, 0}, []float64{1, 0, 0}); got != 0 {
		t.Fatalf("mismatched dims: got %v, want 0", got)
	}
	if got := cosine([]float64{0, 0}, []float64{1, 1}); got != 0 {
		t.Fatalf("zero norm: got %v, want 0", got)
	}
	if got := cosine([]float64{1, 2}, []float64{1, 2}); !almostEqual(got, 1.0) {
		t.Fatalf("identical vectors: got %v, want 1", got)
	}
}
