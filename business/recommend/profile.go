package recommend

import (
	"context"

	"plateRank/domain"
)

// Vertical selects the business profile used to blend the strategies.
type Vertical string

const (
	VerticalFoodDelivery Vertical = "food_delivery"
	VerticalGrocery      Vertical = "grocery"
	VerticalPharmacy     Vertical = "pharmacy"
	VerticalFashion      Vertical = "fashion"
	VerticalElectronics  Vertical = "electronics"
	VerticalBooks        Vertical = "books"
	VerticalGeneral      Vertical = "general"
)

// Weights holds the five strategy weights. They should sum to ~1.0 so the
// combined score stays a convex combination of the strategy scores.
type Weights struct {
	Exploration   float64
	Collaborative float64
	Contextual    float64
	Trending      float64
	Affinity      float64
}

func (w Weights) Sum() float64 {
	return w.Exploration + w.Collaborative + w.Contextual + w.Trending + w.Affinity
}

type Profile struct {
	Vertical Vertical
	Weights  Weights

	// DiversityFactor is the MMR lambda in [0,1]; 0 disables re-ranking.
	DiversityFactor float64

	// ExplorationRate bounds the random exploration term in [0,1].
	ExplorationRate float64

	// TrendingWindowHours is the recent window for the velocity collaborator.
	TrendingWindowHours int

	// AffinityMinConfidence is the minimum confidence an association rule
	// needs before it contributes to the affinity score.
	AffinityMinConfidence float64
}

const (
	defaultTrendingWindowHours   = 6
	defaultAffinityMinConfidence = 0.3
)

// ProfileFor returns the compiled defaults for a vertical. Unknown verticals
// fall back to the general profile.
func ProfileFor(v Vertical) Profile {
	switch v {
	case VerticalFoodDelivery:
		return Profile{
			Vertical:              VerticalFoodDelivery,
			Weights:               Weights{Exploration: 0.15, Collaborative: 0.25, Contextual: 0.25, Trending: 0.20, Affinity: 0.15},
			DiversityFactor:       0.3,
			ExplorationRate:       0.2,
			TrendingWindowHours:   defaultTrendingWindowHours,
			AffinityMinConfidence: defaultAffinityMinConfidence,
		}
	case VerticalGrocery:
		return Profile{
			Vertical:              VerticalGrocery,
			Weights:               Weights{Exploration: 0.10, Collaborative: 0.30, Contextual: 0.15, Trending: 0.15, Affinity: 0.30},
			DiversityFactor:       0.2,
			ExplorationRate:       0.1,
			TrendingWindowHours:   24,
			AffinityMinConfidence: 0.25,
		}
	case VerticalPharmacy:
		return Profile{
			Vertical:              VerticalPharmacy,
			Weights:               Weights{Exploration: 0.05, Collaborative: 0.35, Contextual: 0.30, Trending: 0.10, Affinity: 0.20},
			DiversityFactor:       0.1,
			ExplorationRate:       0.05,
			TrendingWindowHours:   48,
			AffinityMinConfidence: 0.5,
		}
	case VerticalFashion:
		return Profile{
			Vertical:              VerticalFashion,
			Weights:               Weights{Exploration: 0.25, Collaborative: 0.25, Contextual: 0.15, Trending: 0.25, Affinity: 0.10},
			DiversityFactor:       0.5,
			ExplorationRate:       0.3,
			TrendingWindowHours:   12,
			AffinityMinConfidence: defaultAffinityMinConfidence,
		}
	case VerticalElectronics:
		return Profile{
			Vertical:              VerticalElectronics,
			Weights:               Weights{Exploration: 0.15, Collaborative: 0.35, Contextual: 0.10, Trending: 0.25, Affinity: 0.15},
			DiversityFactor:       0.25,
			ExplorationRate:       0.15,
			TrendingWindowHours:   24,
			AffinityMinConfidence: 0.4,
		}
	case VerticalBooks:
		return Profile{
			Vertical:              VerticalBooks,
			Weights:               Weights{Exploration: 0.20, Collaborative: 0.40, Contextual: 0.05, Trending: 0.15, Affinity: 0.20},
			DiversityFactor:       0.4,
			ExplorationRate:       0.25,
			TrendingWindowHours:   72,
			AffinityMinConfidence: defaultAffinityMinConfidence,
		}
	default:
		return Profile{
			Vertical:              VerticalGeneral,
			Weights:               Weights{Exploration: 0.20, Collaborative: 0.20, Contextual: 0.20, Trending: 0.20, Affinity: 0.20},
			DiversityFactor:       0.3,
			ExplorationRate:       0.2,
			TrendingWindowHours:   defaultTrendingWindowHours,
			AffinityMinConfidence: defaultAffinityMinConfidence,
		}
	}
}

// Verticals lists the closed set of supported profiles.
func Verticals() []Vertical {
	return []Vertical{
		VerticalFoodDelivery,
		VerticalGrocery,
		VerticalPharmacy,
		VerticalFashion,
		VerticalElectronics,
		VerticalBooks,
		VerticalGeneral,
	}
}

// read per-vertical profile overrides from DB.
type ProfileRepository interface {
	GetProfile(ctx context.Context, vertical string) (domain.RecoProfile, bool, error)
	UpsertProfile(ctx context.Context, p domain.RecoProfile) error
}
