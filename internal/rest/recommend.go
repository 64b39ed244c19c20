package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"plateRank/business/recommend"
	"plateRank/domain"
	appmetrics "plateRank/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/datatypes"
)

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
	}

	RecommendService interface {
		Recommend(ctx context.Context, sessionID string, userID uint, limit int, opts recommend.RequestOptions) ([]domain.ScoredCandidate, error)
		DebugRecommend(ctx context.Context, sessionID string, userID uint, limit int, opts recommend.RequestOptions) ([]domain.DebugRecommendation, error)
		LogFeedback(ctx context.Context, event domain.RecoEvent) error
	}

	RecommendQuery struct {
		SessionID string `query:"session_id" validate:"required"`
		N         int    `query:"n"`
		Weather   string `query:"weather"`
		Device    string `query:"device"`
		Cart      string `query:"cart"`
	}

	FeedbackRequest struct {
		SessionID string         `json:"session_id" validate:"required"`
		ItemID    uint64         `json:"item_id" validate:"required"`
		EventType string         `json:"event_type" validate:"required,oneof=impression click atc order"`
		Value     float64        `json:"value"`
		Context   map[string]any `json:"context"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
	}
}

// parseCart turns "1,2,3" into item ids, skipping malformed entries.
func parseCart(raw string) []uint64 {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err == nil && id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// userIDFromContext reads the authenticated user, 0 for anonymous sessions.
func userIDFromContext(c echo.Context) uint {
	if uid, ok := c.Get("user_id").(uint); ok {
		return uid
	}
	return 0
}

func optionsFromQuery(q RecommendQuery) recommend.RequestOptions {
	return recommend.RequestOptions{
		Weather:     q.Weather,
		Device:      q.Device,
		CartItemIDs: parseCart(q.Cart),
	}
}

// GET /api/v1/recommendations?session_id=abc&n=10&weather=rainy&device=mobile&cart=1,2
func (h *RecommendHandler) Recommend(c echo.Context) error {
	timer := prometheus.NewTimer(appmetrics.RecommendLatency)
	defer timer.ObserveDuration()
	appmetrics.RecommendRequests.Inc()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.N <= 0 {
		q.N = 10
	}

	recs, err := h.recommendService.Recommend(c.Request().Context(), q.SessionID, userIDFromContext(c), q.N, optionsFromQuery(q))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/feedback
func (h *RecommendHandler) Feedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := domain.RecoEvent{
		SessionID: req.SessionID,
		UserID:    userIDFromContext(c),
		ItemID:    req.ItemID,
		EventType: req.EventType,
		Value:     req.Value,
		CreatedAt: time.Now(),
	}
	if req.Context != nil {
		event.Context = datatypes.JSONMap(req.Context)
	}

	if err := h.recommendService.LogFeedback(c.Request().Context(), event); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}

// GET /api/v1/recommendations/debug?session_id=abc&n=10
func (h *RecommendHandler) DebugRecommend(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N <= 0 {
		q.N = 10
	}

	recs, err := h.recommendService.DebugRecommend(c.Request().Context(), q.SessionID, userIDFromContext(c), q.N, optionsFromQuery(q))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
