//go:build !integration

package recommend

import (
	"context"
	"errors"
	"testing"

	"plateRank/domain"

	"gorm.io/datatypes"
)

// ---- fakes ----

type fakeCatalogRepo struct {
	items      []domain.CatalogItem
	categories map[uint64]string
	tags       map[uint64][]string
	findErr    error
}

func (f *fakeCatalogRepo) FindOrderable(ctx context.Context) ([]domain.CatalogItem, error) {
	return f.items, f.findErr
}

func (f *fakeCatalogRepo) FindCategories(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	return f.categories, nil
}

func (f *fakeCatalogRepo) FindTags(ctx context.Context, ids []uint64) (map[uint64][]string, error) {
	return f.tags, nil
}

type fakeHistoryRepo struct {
	ids []uint64
	err error
}

func (f *fakeHistoryRepo) RecentItemIDs(ctx context.Context, userID uint, limit int) ([]uint64, error) {
	return f.ids, f.err
}

type fakeEventRepo struct {
	saved []domain.RecoEvent
	err   error
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event domain.RecoEvent) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, event)
	return nil
}

type fakeVelocityProvider struct {
	velocities map[uint64]float64
	err        error
	calls      int
}

func (f *fakeVelocityProvider) Velocities(ctx context.Context, windowHours int) (map[uint64]float64, error) {
	f.calls++
	return f.velocities, f.err
}

type fakeRuleRepo struct {
	rules []domain.AssociationRule
	err   error
}

func (f *fakeRuleRepo) ActiveRules(ctx context.Context) ([]domain.AssociationRule, error) {
	return f.rules, f.err
}

type fakeProfileRepo struct {
	row domain.RecoProfile
	ok  bool
	err error
}

func (f *fakeProfileRepo) GetProfile(ctx context.Context, vertical string) (domain.RecoProfile, bool, error) {
	return f.row, f.ok, f.err
}

func (f *fakeProfileRepo) UpsertProfile(ctx context.Context, p domain.RecoProfile) error {
	f.row = p
	f.ok = true
	return nil
}

type fakeSegmentRepo struct {
	segment string
	ok      bool
}

func (f *fakeSegmentRepo) GetSegment(ctx context.Context, userID uint) (string, bool, error) {
	return f.segment, f.ok, nil
}

func (f *fakeSegmentRepo) UpsertSegment(ctx context.Context, userID uint, segment string) error {
	f.segment = segment
	f.ok = true
	return nil
}

func newTestService(catalogRepo *fakeCatalogRepo, eventRepo *fakeEventRepo, vel *fakeVelocityProvider) *RecommendService {
	return NewRecommendService(
		NewEngine(testProfile(), WithSeed(1)),
		VerticalFoodDelivery,
		catalogRepo,
		&fakeHistoryRepo{},
		eventRepo,
		vel,
		&fakeRuleRepo{},
		&fakeProfileRepo{},
		&fakeSegmentRepo{},
	)
}

// ---- Recommend ----

func TestServiceRecommendHappyPath(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{items: testPool(8)}
	svc := newTestService(catalogRepo, &fakeEventRepo{}, &fakeVelocityProvider{})

	recs, err := svc.Recommend(context.Background(), "session-1", 42, 5, RequestOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("got %d results, want 5", len(recs))
	}
}

func TestServiceRecommendRequiresSession(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{items: testPool(3)}, &fakeEventRepo{}, &fakeVelocityProvider{})

	if _, err := svc.Recommend(context.Background(), "", 1, 5, RequestOptions{}); err == nil {
		t.Fatal("missing session id must error")
	}
}

func TestServiceRecommendEmptyCatalog(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, &fakeEventRepo{}, &fakeVelocityProvider{})

	recs, err := svc.Recommend(context.Background(), "session-1", 1, 5, RequestOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("empty catalog should yield no results, got %d", len(recs))
	}
}

func TestServiceRecommendCatalogError(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{findErr: errors.New("db down")}, &fakeEventRepo{}, &fakeVelocityProvider{})

	if _, err := svc.Recommend(context.Background(), "session-1", 1, 5, RequestOptions{}); err == nil {
		t.Fatal("catalog failure must surface as error")
	}
}

func TestServiceRecommendDegradesOnVelocityError(t *testing.T) {
	vel := &fakeVelocityProvider{err: errors.New("redis down")}
	svc := newTestService(&fakeCatalogRepo{items: testPool(5)}, &fakeEventRepo{}, vel)

	recs, err := svc.Recommend(context.Background(), "session-1", 1, 5, RequestOptions{})
	if err != nil {
		t.Fatalf("velocity failure must not fail the request: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("got %d results, want 5", len(recs))
	}
	if vel.calls == 0 {
		t.Fatal("velocity provider was never consulted")
	}
}

func TestServiceRecommendCancelledContext(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{items: testPool(3)}, &fakeEventRepo{}, &fakeVelocityProvider{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Recommend(ctx, "session-1", 1, 5, RequestOptions{}); err == nil {
		t.Fatal("cancelled context must error")
	}
}

// ---- LogFeedback ----

func TestServiceLogFeedbackSavesEvent(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	svc := newTestService(&fakeCatalogRepo{}, eventRepo, &fakeVelocityProvider{})

	err := svc.LogFeedback(context.Background(), domain.RecoEvent{
		SessionID: "session-1",
		ItemID:    7,
		EventType: "click",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eventRepo.saved) != 1 {
		t.Fatalf("event not saved")
	}

	saved := eventRepo.saved[0]
	if saved.ExperimentGroup != assignExperimentGroup("session-1") {
		t.Fatalf("experiment group not assigned from session hash: %q", saved.ExperimentGroup)
	}
	if saved.Context["experiment_group"] != saved.ExperimentGroup {
		t.Fatalf("experiment group missing from merged context: %v", saved.Context)
	}
	if saved.Context["session_id"] != "session-1" {
		t.Fatalf("request context not merged into event context: %v", saved.Context)
	}
}

func TestServiceLogFeedbackKeepsCallerContext(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	svc := newTestService(&fakeCatalogRepo{}, eventRepo, &fakeVelocityProvider{})

	err := svc.LogFeedback(context.Background(), domain.RecoEvent{
		SessionID: "session-1",
		ItemID:    7,
		EventType: "order",
		Context:   datatypes.JSONMap{"source": "checkout"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eventRepo.saved[0].Context["source"] != "checkout" {
		t.Fatalf("caller-provided context dropped: %v", eventRepo.saved[0].Context)
	}
}

func TestServiceLogFeedbackRejectsBadEventType(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, &fakeEventRepo{}, &fakeVelocityProvider{})

	err := svc.LogFeedback(context.Background(), domain.RecoEvent{
		SessionID: "session-1",
		ItemID:    7,
		EventType: "hover",
	})
	if err == nil {
		t.Fatal("unknown event type must error")
	}
}

func TestServiceLogFeedbackRequiresSession(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, &fakeEventRepo{}, &fakeVelocityProvider{})

	err := svc.LogFeedback(context.Background(), domain.RecoEvent{
		ItemID:    7,
		EventType: "click",
	})
	if err == nil {
		t.Fatal("missing session id must error")
	}
}

// ---- profile loading ----

func TestServiceLoadProfileMergesOverrides(t *testing.T) {
	profileRepo := &fakeProfileRepo{
		row: domain.RecoProfile{
			Vertical:       string(VerticalFoodDelivery),
			WExploration:   0.4,
			WCollaborative: 0.2,
			WContextual:    0.2,
			WTrending:      0.1,
			WAffinity:      0.1,
		},
		ok: true,
	}
	svc := NewRecommendService(
		NewEngine(testProfile(), WithSeed(1)),
		VerticalFoodDelivery,
		&fakeCatalogRepo{},
		&fakeHistoryRepo{},
		&fakeEventRepo{},
		&fakeVelocityProvider{},
		&fakeRuleRepo{},
		profileRepo,
		&fakeSegmentRepo{},
	)

	p := svc.loadProfile(context.Background(), VerticalFoodDelivery)
	if !almostEqual(p.Weights.Exploration, 0.4) {
		t.Fatalf("override weights not applied: %+v", p.Weights)
	}
	// fields left zero in the row keep the compiled defaults
	if p.TrendingWindowHours != ProfileFor(VerticalFoodDelivery).TrendingWindowHours {
		t.Fatalf("zero-valued override clobbered default window: %d", p.TrendingWindowHours)
	}
}

func TestServiceLoadProfileRepoErrorFallsBack(t *testing.T) {
	profileRepo := &fakeProfileRepo{err: errors.New("db down")}
	svc := NewRecommendService(
		NewEngine(testProfile(), WithSeed(1)),
		VerticalGrocery,
		&fakeCatalogRepo{},
		&fakeHistoryRepo{},
		&fakeEventRepo{},
		&fakeVelocityProvider{},
		&fakeRuleRepo{},
		profileRepo,
		&fakeSegmentRepo{},
	)

	p := svc.loadProfile(context.Background(), VerticalGrocery)
	if p.Weights != ProfileFor(VerticalGrocery).Weights {
		t.Fatalf("repo error must fall back to defaults: %+v", p.Weights)
	}
}
