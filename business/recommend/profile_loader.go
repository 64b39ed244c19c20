package recommend

import "context"

// loadProfile reads the vertical's profile from the repo, falling back to the
// compiled defaults for any missing row. Zero-valued override fields keep the
// default so partial rows stay sane.
func (s *RecommendService) loadProfile(ctx context.Context, v Vertical) Profile {
	base := ProfileFor(v)
	if s.profileRepo == nil {
		return base
	}

	row, ok, err := s.profileRepo.GetProfile(ctx, string(v))
	if err != nil || !ok {
		return base
	}

	p := base

	if sum := row.WExploration + row.WCollaborative + row.WContextual + row.WTrending + row.WAffinity; sum > 0 {
		p.Weights = Weights{
			Exploration:   row.WExploration,
			Collaborative: row.WCollaborative,
			Contextual:    row.WContextual,
			Trending:      row.WTrending,
			Affinity:      row.WAffinity,
		}
	}

	if row.DiversityFactor >= 0 && row.DiversityFactor <= 1 {
		p.DiversityFactor = row.DiversityFactor
	}
	if row.ExplorationRate >= 0 && row.ExplorationRate <= 1 {
		p.ExplorationRate = row.ExplorationRate
	}
	if row.TrendingWindowHours > 0 {
		p.TrendingWindowHours = row.TrendingWindowHours
	}
	if row.AffinityMinConfidence > 0 {
		p.AffinityMinConfidence = row.AffinityMinConfidence
	}

	return p
}
