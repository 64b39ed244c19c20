package recommend

import "plateRank/domain"

// Situational bonuses added on top of the 0.5 base. Meal-time matches dominate;
// weather/device cues are softer nudges.
const (
	mealTimeBonus  = 0.3
	weatherBonus   = 0.15
	weekendBonus   = 0.1
	quickBonus     = 0.15
	quickPrepLimit = 15 // minutes
)

// contextualScore applies additive bonuses when item tags match situational
// cues from the request context. Pure; missing optional fields simply add
// nothing. Result is clipped to at most 1.0.
func contextualScore(item domain.CatalogItem, rctx RequestContext) float64 {
	score := neutralScore

	switch rctx.TimeBucket {
	case BucketMorning:
		if item.HasTag("breakfast") {
			score += mealTimeBonus
		}
	case BucketAfternoon:
		if item.HasTag("lunch") {
			score += mealTimeBonus
		}
	case BucketEvening:
		if item.HasTag("dinner") {
			score += mealTimeBonus
		}
	case BucketNight:
		if item.HasTag("late_night") || item.HasTag("snack") {
			score += mealTimeBonus
		}
	}

	switch rctx.Weather {
	case "cold", "rainy":
		if item.HasTag("comfort") || item.HasTag("hot") {
			score += weatherBonus
		}
	case "hot":
		if item.HasTag("refreshing") || item.HasTag("cold") {
			score += weatherBonus
		}
	}

	if rctx.Weekend && (item.HasTag("family") || item.HasTag("sharing")) {
		score += weekendBonus
	}

	if rctx.Device == "mobile" && item.HasTag("quick") &&
		item.PrepTimeMin > 0 && item.PrepTimeMin <= quickPrepLimit {
		score += quickBonus
	}

	return clip01(score)
}
