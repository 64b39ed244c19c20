package rest

import (
	"context"
	"net/http"
	"strconv"

	"plateRank/business/recommend"
	"plateRank/domain"

	"github.com/labstack/echo/v4"
)

// RuleAdminRepository extends the read-only rule store with the bulk swap
// the offline mining job performs.
type RuleAdminRepository interface {
	ActiveRules(ctx context.Context) ([]domain.AssociationRule, error)
	ReplaceRules(ctx context.Context, rules []domain.AssociationRule) error
}

type RecommendAdminHandler struct {
	profileRepo recommend.ProfileRepository
	segmentRepo recommend.SegmentRepository
	ruleRepo    RuleAdminRepository
}

func NewRecommendAdminHandler(
	profileRepo recommend.ProfileRepository,
	segmentRepo recommend.SegmentRepository,
	ruleRepo RuleAdminRepository,
) *RecommendAdminHandler {
	return &RecommendAdminHandler{
		profileRepo: profileRepo,
		segmentRepo: segmentRepo,
		ruleRepo:    ruleRepo,
	}
}

// GET /api/v1/admin/reco/profile?vertical=food_delivery
// Returns the effective profile: compiled defaults merged with DB overrides.
func (h *RecommendAdminHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	vertical := c.QueryParam("vertical")

	if vertical == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "vertical is required",
		})
	}

	override, ok, err := h.profileRepo.GetProfile(ctx, vertical)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	defaults := recommend.ProfileFor(recommend.Vertical(vertical))
	resp := echo.Map{
		"vertical": string(defaults.Vertical),
		"defaults": defaults,
	}
	if ok {
		resp["override"] = override
	}

	return c.JSON(http.StatusOK, resp)
}

// PUT /api/v1/admin/reco/profile
// body: RecoProfile JSON
func (h *RecommendAdminHandler) UpsertProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.RecoProfile
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Vertical == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "vertical is required",
		})
	}

	sum := body.WExploration + body.WCollaborative + body.WContextual + body.WTrending + body.WAffinity
	if sum > 0 && (sum < 0.99 || sum > 1.01) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "strategy weights must sum to 1.0",
		})
	}

	if err := h.profileRepo.UpsertProfile(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}

// GET /api/v1/admin/reco/rules
// Lists the active association rules, strongest first. An empty list means
// the engine is serving from its seeded defaults.
func (h *RecommendAdminHandler) GetRules(c echo.Context) error {
	ctx := c.Request().Context()

	rules, err := h.ruleRepo.ActiveRules(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(rules),
		"rules": rules,
	})
}

// PUT /api/v1/admin/reco/rules
// body: { "rules": [AssociationRule, ...] }
// Swaps the whole rule table, as the offline mining job does after a run.
type replaceRulesRequest struct {
	Rules []domain.AssociationRule `json:"rules"`
}

func (h *RecommendAdminHandler) ReplaceRules(c echo.Context) error {
	ctx := c.Request().Context()

	var body replaceRulesRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	for _, r := range body.Rules {
		if r.AntecedentKind != "category" && r.AntecedentKind != "tag" {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "antecedent_kind must be category or tag",
			})
		}
		if r.Confidence <= 0 || r.Confidence > 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "confidence must be in (0,1]",
			})
		}
	}

	if err := h.ruleRepo.ReplaceRules(ctx, body.Rules); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"count":  len(body.Rules),
	})
}

// GET /api/v1/admin/reco/segment?user_id=123
func (h *RecommendAdminHandler) GetSegment(c echo.Context) error {
	ctx := c.Request().Context()
	userIDStr := c.QueryParam("user_id")
	if userIDStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "user_id is required",
		})
	}
	userID64, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid user_id",
		})
	}
	userID := uint(userID64)

	seg, ok, err := h.segmentRepo.GetSegment(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "segment not found",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user_id": userID,
		"segment": seg,
	})
}

// PUT /api/v1/admin/reco/segment
// body: { "user_id": 123, "segment": "frequent_buyer" }
type upsertSegmentRequest struct {
	UserID  uint   `json:"user_id"`
	Segment string `json:"segment"`
}

func (h *RecommendAdminHandler) UpsertSegment(c echo.Context) error {
	ctx := c.Request().Context()

	var body upsertSegmentRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "user_id is required",
		})
	}
	if body.Segment == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "segment is required",
		})
	}

	if err := h.segmentRepo.UpsertSegment(ctx, body.UserID, body.Segment); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
