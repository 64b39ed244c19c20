package domain

import (
	"time"

	"gorm.io/datatypes"
)

// StrategyScores carries the five raw strategy outputs, each in [0,1].
type StrategyScores struct {
	Exploration   float64 `json:"exploration"`
	Collaborative float64 `json:"collaborative"`
	Contextual    float64 `json:"contextual"`
	Trending      float64 `json:"trending"`
	Affinity      float64 `json:"affinity"`
}

// ScoredCandidate is one ranked recommendation result.
// Rank is assigned exactly once, after diversity re-ranking, starting at 1.
type ScoredCandidate struct {
	ItemID          uint64         `json:"item_id"`
	Rank            int            `json:"rank"`
	Score           float64        `json:"score"`
	Confidence      float64        `json:"confidence"`
	Scores          StrategyScores `json:"scores"`
	Reasons         []string       `json:"reasons"`
	ExperimentGroup string         `json:"experiment_group"`
}

type RecoEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"column:session_id;not null" json:"session_id"`
	UserID    uint      `gorm:"column:user_id" json:"user_id"`
	ItemID    uint64    `gorm:"column:item_id;not null" json:"item_id"`
	EventType string    `gorm:"column:event_type;not null" json:"event_type"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Value           float64           `gorm:"-" json:"value"`            // optional GMV/margin
	ExperimentGroup string            `gorm:"-" json:"experiment_group"` // A/B bucket
	Context         datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (RecoEvent) TableName() string {
	return "reco_events"
}

type DebugRecommendation struct {
	ItemID          uint64         `json:"item_id"`
	ItemName        string         `json:"item_name"`
	Category        string         `json:"category"`
	Scores          StrategyScores `json:"scores"`
	Combined        float64        `json:"combined"` // sum(weight_s * score_s)
	Rank            int            `json:"rank"`     // position after diversity re-rank
	RelevanceRank   int            `json:"relevance_rank"`
	Confidence      float64        `json:"confidence"`
	Reasons         []string       `json:"reasons"`
	ExperimentGroup string         `json:"experiment_group"`
	Context         map[string]any `json:"context"`
}
