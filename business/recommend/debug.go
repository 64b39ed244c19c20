package recommend

import (
	"context"
	"fmt"

	"plateRank/domain"
	"plateRank/pkg/logger"
)

// DebugRecommend returns detailed score components for inspection: the five
// raw strategy scores, the combined score, and both the pure-relevance rank
// and the final post-diversity rank.
func (s *RecommendService) DebugRecommend(
	ctx context.Context,
	sessionID string,
	userID uint,
	limit int,
	opts RequestOptions,
) ([]domain.DebugRecommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if limit <= 0 {
		limit = 10
	}

	profile := s.loadProfile(ctx, s.vertical)
	s.engine.SetProfile(profile)

	items, err := s.catalogRepo.FindOrderable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	if len(items) == 0 {
		return []domain.DebugRecommendation{}, nil
	}

	rctx := s.buildContext(ctx, sessionID, userID, opts)
	sig := s.gatherSignals(ctx, rctx, profile)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend_debug",
		"trace_id", tid,
		"session_id", sessionID,
		"user_id", userID,
		"vertical", string(profile.Vertical),
		"limit", limit,
		"candidate_count", len(items),
	)

	return s.engine.Explain(rctx, items, sig, limit), nil
}

// Explain runs the same pipeline as Recommend but keeps the pre-diversity
// relevance position of each result alongside the final rank.
func (e *Engine) Explain(
	rctx RequestContext,
	items []domain.CatalogItem,
	sig Signals,
	n int,
) []domain.DebugRecommendation {

	e.mu.Lock()
	defer e.mu.Unlock()

	if n <= 0 || len(items) == 0 {
		return []domain.DebugRecommendation{}
	}

	profile := e.profile

	scored := e.score(rctx, items, sig, profile)
	sortByRelevance(scored)

	relevanceRank := make(map[uint64]int, len(scored))
	for i, c := range scored {
		relevanceRank[c.item.ID] = i + 1
	}

	ranked := diversityRerank(scored, profile.DiversityFactor)
	if n > len(ranked) {
		n = len(ranked)
	}

	group := assignExperimentGroup(rctx.SessionID)
	ctxMap := rctx.asMap()

	out := make([]domain.DebugRecommendation, 0, n)
	for i := 0; i < n; i++ {
		c := ranked[i]
		out = append(out, domain.DebugRecommendation{
			ItemID:          c.item.ID,
			ItemName:        c.item.ItemName,
			Category:        c.item.Category,
			Scores:          c.scores,
			Combined:        c.combined,
			Rank:            i + 1,
			RelevanceRank:   relevanceRank[c.item.ID],
			Confidence:      confidence(c.scores),
			Reasons:         reasonTags(c.scores),
			ExperimentGroup: group,
			Context:         ctxMap,
		})
	}

	return out
}
