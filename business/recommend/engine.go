package recommend

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"plateRank/domain"
)

// Signals bundles the collaborator data resolved before scoring. Everything
// here is fully materialized in memory: the engine performs no I/O.
type Signals struct {
	// Velocities maps itemID → precomputed trending velocity (1.0 = flat).
	Velocities map[uint64]float64

	// Rules are the active association rules; nil falls back to DefaultRules.
	Rules []domain.AssociationRule

	// ItemCategories / ItemTags cover the cart and history item ids, which
	// are not part of the candidate pool snapshot.
	ItemCategories map[uint64]string
	ItemTags       map[uint64][]string
}

type candidate struct {
	item     domain.CatalogItem
	scores   domain.StrategyScores
	combined float64
}

// Engine is the pure scoring pipeline: five strategies → weighted ensemble →
// relevance sort → MMR diversity re-rank → rank assignment. It holds no state
// between calls beyond the profile and the injected random source.
type Engine struct {
	mu      sync.Mutex
	profile Profile
	rng     *rand.Rand
}

type Option func(*Engine)

// WithSeed pins the exploration sampler for reproducible output.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func NewEngine(profile Profile, opts ...Option) *Engine {
	e := &Engine{
		profile: profile,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Profile() Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

// SetProfile swaps the active profile at runtime.
func (e *Engine) SetProfile(p Profile) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile = p
}

// Recommend scores the candidate pool against the request context and returns
// min(n, poolSize) results ordered by final rank ascending. Empty pool or
// n <= 0 yields an empty list, never an error.
func (e *Engine) Recommend(
	rctx RequestContext,
	items []domain.CatalogItem,
	sig Signals,
	n int,
) []domain.ScoredCandidate {

	e.mu.Lock()
	defer e.mu.Unlock()

	if n <= 0 || len(items) == 0 {
		return []domain.ScoredCandidate{}
	}

	profile := e.profile
	ranked := e.rank(rctx, items, sig, profile)

	if n > len(ranked) {
		n = len(ranked)
	}

	group := assignExperimentGroup(rctx.SessionID)

	out := make([]domain.ScoredCandidate, 0, n)
	for i := 0; i < n; i++ {
		c := ranked[i]
		out = append(out, domain.ScoredCandidate{
			ItemID:          c.item.ID,
			Rank:            i + 1,
			Score:           c.combined,
			Confidence:      confidence(c.scores),
			Scores:          c.scores,
			Reasons:         reasonTags(c.scores),
			ExperimentGroup: group,
		})
	}

	return out
}

// rank runs scoring, relevance sort and diversity re-rank. Caller holds the
// engine lock.
func (e *Engine) rank(
	rctx RequestContext,
	items []domain.CatalogItem,
	sig Signals,
	profile Profile,
) []candidate {

	scored := e.score(rctx, items, sig, profile)
	sortByRelevance(scored)
	return diversityRerank(scored, profile.DiversityFactor)
}

// score evaluates the five strategies per item. Strategies are mutually
// independent pure functions; sequential evaluation keeps the exploration
// draw order deterministic for a fixed seed.
func (e *Engine) score(
	rctx RequestContext,
	items []domain.CatalogItem,
	sig Signals,
	profile Profile,
) []candidate {

	rules := sig.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	scored := make([]candidate, 0, len(items))
	for _, item := range items {
		// invariant: never score an item with a negative price
		if item.Price < 0 {
			continue
		}

		draw := e.rng.Float64()
		scores := domain.StrategyScores{
			Exploration:   explorationScore(item, profile.ExplorationRate, draw),
			Collaborative: collaborativeScore(item, rctx.HistoryItemIDs, sig.ItemCategories),
			Contextual:    contextualScore(item, rctx),
			Trending:      trendingScore(item, sig.Velocities),
			Affinity:      affinityScore(item, rctx.CartItemIDs, rules, profile.AffinityMinConfidence, sig.ItemCategories, sig.ItemTags),
		}

		scored = append(scored, candidate{
			item:     item,
			scores:   scores,
			combined: combine(scores, profile.Weights),
		})
	}

	return scored
}

// sortByRelevance orders candidates descending by combined score, with the
// item id as a stable tie-breaker so identical inputs produce identical
// output order.
func sortByRelevance(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].combined == cands[j].combined {
			return cands[i].item.ID < cands[j].item.ID
		}
		return cands[i].combined > cands[j].combined
	})
}
