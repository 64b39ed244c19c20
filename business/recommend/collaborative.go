package recommend

import "plateRank/domain"

const neutralScore = 0.5

// collaborativeScore is a category-overlap heuristic between the user's order
// history and the candidate. Cold start (no history) returns the neutral 0.5;
// missing category lookups degrade to the same neutral default instead of
// erroring. The most recent history entries weigh double.
func collaborativeScore(item domain.CatalogItem, history []uint64, categories map[uint64]string) float64 {
	if len(history) == 0 {
		return neutralScore
	}

	const recentSpan = 3

	var total, matched float64
	for i, id := range history {
		cat, ok := categories[id]
		if !ok || cat == "" {
			continue
		}

		weight := 1.0
		if i < recentSpan {
			weight = 2.0
		}
		total += weight
		if cat == item.Category {
			matched += weight
		}
	}

	if total == 0 {
		// no category data for any history item
		return neutralScore
	}

	overlap := matched / total
	return clip01(0.3 + 0.65*overlap)
}
