package postgres

import (
	"context"

	"plateRank/business/recommend"
	"plateRank/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSegmentRepository struct {
	DB *gorm.DB
}

var _ recommend.SegmentRepository = (*UserSegmentRepository)(nil)

func NewUserSegmentRepository(db *gorm.DB) *UserSegmentRepository {
	return &UserSegmentRepository{DB: db}
}

func (r *UserSegmentRepository) GetSegment(ctx context.Context, userID uint) (string, bool, error) {
	var row domain.UserSegment
	err := r.DB.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Segment, true, nil
}

func (r *UserSegmentRepository) UpsertSegment(ctx context.Context, userID uint, segment string) error {
	row := domain.UserSegment{
		UserID:  userID,
		Segment: segment,
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"segment", "updated_at"}),
		}).
		Create(&row).Error
}
