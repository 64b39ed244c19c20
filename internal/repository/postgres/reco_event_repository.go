package postgres

import (
	"context"
	"fmt"

	"plateRank/business/recommend"
	"plateRank/domain"

	"gorm.io/gorm"
)

type RecoEventRepository struct {
	DB *gorm.DB
}

var _ recommend.EventRepository = (*RecoEventRepository)(nil)

func NewRecoEventRepository(db *gorm.DB) *RecoEventRepository {
	return &RecoEventRepository{DB: db}
}

func (r *RecoEventRepository) SaveEvent(ctx context.Context, event domain.RecoEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save reco event: %w", err)
	}

	return nil
}
