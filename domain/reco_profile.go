package domain

type RecoProfile struct {
	Vertical string `json:"vertical" gorm:"column:vertical;primaryKey"`

	WExploration   float64 `json:"w_exploration" gorm:"column:w_exploration"`
	WCollaborative float64 `json:"w_collaborative" gorm:"column:w_collaborative"`
	WContextual    float64 `json:"w_contextual" gorm:"column:w_contextual"`
	WTrending      float64 `json:"w_trending" gorm:"column:w_trending"`
	WAffinity      float64 `json:"w_affinity" gorm:"column:w_affinity"`

	DiversityFactor float64 `json:"diversity_factor" gorm:"column:diversity_factor"`
	ExplorationRate float64 `json:"exploration_rate" gorm:"column:exploration_rate"`

	TrendingWindowHours   int     `json:"trending_window_hours" gorm:"column:trending_window_hours"`
	AffinityMinConfidence float64 `json:"affinity_min_confidence" gorm:"column:affinity_min_confidence"`
}

func (RecoProfile) TableName() string {
	return "reco_profiles"
}
