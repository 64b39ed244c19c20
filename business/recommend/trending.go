package recommend

import (
	"context"

	"plateRank/domain"
)

// VelocityProvider supplies precomputed order-rate velocity per item:
// recent rate over the trending window divided by the historical baseline
// rate. 1.0 means flat; >1 rising; <1 falling. The scorer never aggregates
// anything itself.
type VelocityProvider interface {
	Velocities(ctx context.Context, windowHours int) (map[uint64]float64, error)
}

// trendingScore adjusts the item's baseline popularity by its velocity.
// Items without a popularity figure start from the neutral 0.5; items without
// a velocity figure are treated as flat.
func trendingScore(item domain.CatalogItem, velocities map[uint64]float64) float64 {
	pop := item.Popularity
	if pop <= 0 {
		pop = neutralScore
	} else if pop > 1 {
		pop = 1
	}

	v, ok := velocities[item.ID]
	if !ok || v <= 0 {
		v = 1.0
	}

	return clip01(pop * v)
}
