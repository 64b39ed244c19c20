package recommend

import (
	"context"
	"fmt"
	"time"

	"plateRank/domain"
	"plateRank/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type CatalogRepository interface {
	FindOrderable(ctx context.Context) ([]domain.CatalogItem, error)
	FindCategories(ctx context.Context, ids []uint64) (map[uint64]string, error)
	FindTags(ctx context.Context, ids []uint64) (map[uint64][]string, error)
}

type HistoryRepository interface {
	// RecentItemIDs returns the user's ordered item ids, most recent first.
	RecentItemIDs(ctx context.Context, userID uint, limit int) ([]uint64, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.RecoEvent) error
}

// read user segment label from DB (if exists).
type SegmentRepository interface {
	GetSegment(ctx context.Context, userID uint) (string, bool, error)
	UpsertSegment(ctx context.Context, userID uint, segment string) error
}

// RequestOptions carries the client-provided situational fields.
type RequestOptions struct {
	Weather     string
	Device      string
	CartItemIDs []uint64
}

const historyLimit = 20

// ---- Usecase / Service ----

// RecommendService resolves every collaborator input (catalog snapshot,
// history, velocity, rules, segment) and then invokes the pure engine. All
// I/O happens here, before scoring.
type RecommendService struct {
	engine       *Engine
	vertical     Vertical
	catalogRepo  CatalogRepository
	historyRepo  HistoryRepository
	eventRepo    EventRepository
	velocityProv VelocityProvider
	ruleRepo     RuleRepository
	profileRepo  ProfileRepository
	segmentRepo  SegmentRepository
}

func NewRecommendService(
	engine *Engine,
	vertical Vertical,
	catalogRepo CatalogRepository,
	historyRepo HistoryRepository,
	eventRepo EventRepository,
	velocityProv VelocityProvider,
	ruleRepo RuleRepository,
	profileRepo ProfileRepository,
	segmentRepo SegmentRepository,
) *RecommendService {
	return &RecommendService{
		engine:       engine,
		vertical:     vertical,
		catalogRepo:  catalogRepo,
		historyRepo:  historyRepo,
		eventRepo:    eventRepo,
		velocityProv: velocityProv,
		ruleRepo:     ruleRepo,
		profileRepo:  profileRepo,
		segmentRepo:  segmentRepo,
	}
}

//  Recommendation / serving

// Recommend returns up to limit items for a session using the ensemble engine
// over the full orderable catalog snapshot.
func (s *RecommendService) Recommend(
	ctx context.Context,
	sessionID string,
	userID uint,
	limit int,
	opts RequestOptions,
) ([]domain.ScoredCandidate, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if limit <= 0 {
		limit = 10
	}

	// 1) profile (compiled defaults merged with DB overrides)
	profile := s.loadProfile(ctx, s.vertical)
	s.engine.SetProfile(profile)

	// 2) candidate pool snapshot
	items, err := s.catalogRepo.FindOrderable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	if len(items) == 0 {
		return []domain.ScoredCandidate{}, nil
	}

	// 3) request context + collaborator signals
	rctx := s.buildContext(ctx, sessionID, userID, opts)
	sig := s.gatherSignals(ctx, rctx, profile)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"session_id", sessionID,
		"user_id", userID,
		"vertical", string(profile.Vertical),
		"limit", limit,
		"candidate_count", len(items),
		"history_count", len(rctx.HistoryItemIDs),
		"cart_count", len(rctx.CartItemIDs),
	)

	// 4) pure scoring pass
	recs := s.engine.Recommend(rctx, items, sig, limit)

	RecommendServedTotal.WithLabelValues(string(profile.Vertical), assignExperimentGroup(sessionID)).Inc()

	return recs, nil
}

// buildContext assembles the request-time situation. Every optional lookup
// degrades to its neutral absence instead of failing the request.
func (s *RecommendService) buildContext(
	ctx context.Context,
	sessionID string,
	userID uint,
	opts RequestOptions,
) RequestContext {

	rctx := NewRequestContext(sessionID, time.Now())
	rctx.UserID = userID
	rctx.Weather = opts.Weather
	rctx.Device = opts.Device
	rctx.CartItemIDs = opts.CartItemIDs

	if userID != 0 && s.historyRepo != nil {
		if ids, err := s.historyRepo.RecentItemIDs(ctx, userID, historyLimit); err == nil {
			rctx.HistoryItemIDs = ids
		}
	}

	if userID != 0 && s.segmentRepo != nil {
		if seg, ok, err := s.segmentRepo.GetSegment(ctx, userID); err == nil && ok {
			rctx.Segment = seg
		}
	}

	return rctx
}

// gatherSignals resolves velocity, rules and category/tag lookups for the
// cart and history ids. The engine never sees an error from here: missing
// signals fall back to the scorers' documented neutral defaults.
func (s *RecommendService) gatherSignals(ctx context.Context, rctx RequestContext, profile Profile) Signals {
	var sig Signals

	if s.velocityProv != nil {
		v, err := s.velocityProv.Velocities(ctx, profile.TrendingWindowHours)
		if err != nil {
			logger.Warn("velocity lookup failed, trending falls back to flat", "error", err)
		} else {
			sig.Velocities = v
		}
	}

	if s.ruleRepo != nil {
		rules, err := s.ruleRepo.ActiveRules(ctx)
		if err != nil {
			logger.Warn("rule lookup failed, affinity falls back to seeded rules", "error", err)
		} else if len(rules) > 0 {
			sig.Rules = rules
		}
	}

	lookupIDs := make([]uint64, 0, len(rctx.CartItemIDs)+len(rctx.HistoryItemIDs))
	lookupIDs = append(lookupIDs, rctx.CartItemIDs...)
	lookupIDs = append(lookupIDs, rctx.HistoryItemIDs...)
	if len(lookupIDs) > 0 {
		if cats, err := s.catalogRepo.FindCategories(ctx, lookupIDs); err == nil {
			sig.ItemCategories = cats
		}
		if tags, err := s.catalogRepo.FindTags(ctx, rctx.CartItemIDs); err == nil {
			sig.ItemTags = tags
		}
	}

	return sig
}

//  Feedback / learning

var validEventTypes = map[string]bool{
	"impression": true,
	"click":      true,
	"atc":        true,
	"order":      true,
}

// LogFeedback persists an interaction event with the merged request context.
// These events feed the offline rating aggregates the exploration sampler
// reads back through the catalog snapshot.
func (s *RecommendService) LogFeedback(ctx context.Context, event domain.RecoEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if event.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if !validEventTypes[event.EventType] {
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}

	event.ExperimentGroup = assignExperimentGroup(event.SessionID)

	rctx := NewRequestContext(event.SessionID, time.Now())
	rctx.UserID = event.UserID
	merged := rctx.asMap()
	if event.Context != nil {
		for k, v := range event.Context {
			merged[k] = v
		}
	}
	merged["experiment_group"] = event.ExperimentGroup
	event.Context = datatypes.JSONMap(merged)

	tid := TraceIDFromContext(ctx)
	logger.Debug("reco_feedback",
		"trace_id", tid,
		"session_id", event.SessionID,
		"user_id", event.UserID,
		"item_id", event.ItemID,
		"event_type", event.EventType,
		"experiment_group", event.ExperimentGroup,
	)

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save reco event: %w", err)
	}

	FeedbackEventsTotal.
		WithLabelValues(string(s.vertical), event.EventType, event.ExperimentGroup).
		Inc()

	return nil
}
