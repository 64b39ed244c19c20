package recommend

import "plateRank/domain"

// Similarity term weights: category equality dominates, then tag overlap,
// then flavor-vector cosine when both items carry one.
const (
	simCategoryWeight = 0.5
	simTagWeight      = 0.3
	simFlavorWeight   = 0.2
)

// itemSimilarity scores how interchangeable two items look to a user.
// Mismatched or missing flavor vectors contribute zero rather than erroring.
func itemSimilarity(a, b domain.CatalogItem) float64 {
	sim := 0.0
	if a.Category != "" && a.Category == b.Category {
		sim += simCategoryWeight
	}
	sim += simTagWeight * jaccard(a.Tags, b.Tags)
	sim += simFlavorWeight * cosine(a.FlavorVector, b.FlavorVector)
	return sim
}

// diversityRerank reorders a relevance-sorted candidate list with Maximal
// Marginal Relevance: the top-relevance item always goes first, then each
// slot takes the candidate maximizing
//
//	(1-λ)·relevance + λ·avgDissimilarity(selected)
//
// where λ is the profile's diversity factor. No-op when λ is 0 or fewer than
// 3 candidates exist.
func diversityRerank(sorted []candidate, lambda float64) []candidate {
	if lambda <= 0 || len(sorted) < 3 {
		return sorted
	}

	remaining := make([]candidate, len(sorted))
	copy(remaining, sorted)

	selected := make([]candidate, 0, len(sorted))
	selected = append(selected, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		bestIdx := 0
		bestScore := -1.0

		for i, cand := range remaining {
			dissim := 0.0
			for _, sel := range selected {
				dissim += 1 - itemSimilarity(cand.item, sel.item)
			}
			dissim /= float64(len(selected))

			mmr := (1-lambda)*cand.combined + lambda*dissim
			if mmr > bestScore {
				bestScore = mmr
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}
