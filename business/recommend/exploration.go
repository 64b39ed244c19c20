package recommend

import "plateRank/domain"

// explorationScore is a Thompson-style sampler over the item's rating history.
// Successes = (rating/5)·ratingCount, failures = the rest; a Laplace prior
// (+1/+1) keeps unrated items at a valid 0.5 mean. The random exploration term
// is bounded by the profile's exploration rate.
func explorationScore(item domain.CatalogItem, rate float64, draw float64) float64 {
	count := float64(item.RatingCount)
	if count < 0 {
		count = 0
	}

	rating := item.Rating
	if rating < 0 {
		rating = 0
	} else if rating > 5 {
		rating = 5
	}

	successes := (rating / 5.0) * count
	failures := count - successes

	alpha := successes + 1.0
	beta := failures + 1.0
	mean := alpha / (alpha + beta)

	return clip01(mean + draw*rate)
}
