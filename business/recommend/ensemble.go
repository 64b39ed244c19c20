package recommend

import (
	"hash/fnv"

	"plateRank/domain"
)

// reasonThreshold marks a strategy as high-confidence for explainability tags.
const reasonThreshold = 0.7

// Experiment groups. Same session always maps to the same bucket within one
// deployment.
const (
	GroupControl  = "control"
	GroupVariantA = "variant_a"
	GroupVariantB = "variant_b"
)

var experimentGroups = []string{GroupControl, GroupVariantA, GroupVariantB}

// combine folds the five strategy scores into the ensemble score using the
// profile weights. With weights summing to ~1 and each score in [0,1] the
// result is already in range; clipping guards sloppy overrides.
func combine(s domain.StrategyScores, w Weights) float64 {
	sum := s.Exploration*w.Exploration +
		s.Collaborative*w.Collaborative +
		s.Contextual*w.Contextual +
		s.Trending*w.Trending +
		s.Affinity*w.Affinity
	return clip01(sum)
}

// reasonTags emits one human-readable tag per strategy scoring above the
// high-confidence threshold.
func reasonTags(s domain.StrategyScores) []string {
	var reasons []string
	if s.Exploration > reasonThreshold {
		reasons = append(reasons, "highly_rated")
	}
	if s.Collaborative > reasonThreshold {
		reasons = append(reasons, "similar_to_past_orders")
	}
	if s.Contextual > reasonThreshold {
		reasons = append(reasons, "fits_the_moment")
	}
	if s.Trending > reasonThreshold {
		reasons = append(reasons, "trending_now")
	}
	if s.Affinity > reasonThreshold {
		reasons = append(reasons, "goes_well_with_cart")
	}
	return reasons
}

// confidence estimates cross-strategy agreement: 1 − variance of the three
// primary strategies. High agreement between exploration, collaborative and
// contextual scores yields high confidence.
func confidence(s domain.StrategyScores) float64 {
	return clip01(1 - variance(s.Exploration, s.Collaborative, s.Contextual))
}

// assignExperimentGroup hashes the session id into one of the three buckets.
func assignExperimentGroup(sessionID string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return experimentGroups[int(h.Sum32()%uint32(len(experimentGroups)))]
}
