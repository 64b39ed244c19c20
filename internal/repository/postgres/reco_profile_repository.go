package postgres

import (
	"context"

	"plateRank/business/recommend"
	"plateRank/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecoProfileRepository struct {
	DB *gorm.DB
}

var _ recommend.ProfileRepository = (*RecoProfileRepository)(nil)

func NewRecoProfileRepository(db *gorm.DB) *RecoProfileRepository {
	return &RecoProfileRepository{DB: db}
}

func (r *RecoProfileRepository) GetProfile(ctx context.Context, vertical string) (domain.RecoProfile, bool, error) {
	var p domain.RecoProfile

	err := r.DB.WithContext(ctx).
		Where("vertical = ?", vertical).
		First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return domain.RecoProfile{}, false, nil
	}
	if err != nil {
		return domain.RecoProfile{}, false, err
	}

	return p, true, nil
}

func (r *RecoProfileRepository) UpsertProfile(ctx context.Context, p domain.RecoProfile) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "vertical"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"w_exploration",
				"w_collaborative",
				"w_contextual",
				"w_trending",
				"w_affinity",
				"diversity_factor",
				"exploration_rate",
				"trending_window_hours",
				"affinity_min_confidence",
			}),
		}).
		Create(&p).Error
}
