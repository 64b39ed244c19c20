package postgres

import (
	"context"
	"fmt"

	"plateRank/business/recommend"

	"gorm.io/gorm"
)

// velocityBaselineWindows is how many trailing windows form the baseline
// an item's recent order rate is compared against.
const velocityBaselineWindows = 7

type VelocityRepository struct {
	DB *gorm.DB
}

var _ recommend.VelocityProvider = (*VelocityRepository)(nil)

func NewVelocityRepository(db *gorm.DB) *VelocityRepository {
	return &VelocityRepository{DB: db}
}

// Velocities computes per-item order velocity: the order count in the recent
// window divided by the average per-window count over the trailing baseline.
// An item with no baseline history gets velocity 1.0 so a single burst does
// not dominate the trending score.
func (r *VelocityRepository) Velocities(ctx context.Context, windowHours int) (map[uint64]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if windowHours <= 0 {
		windowHours = 6
	}

	type row struct {
		ItemID   uint64
		Recent   int64
		Baseline int64
	}

	var rows []row
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			item_id,
			COUNT(*) FILTER (WHERE created_at >= NOW() - make_interval(hours => ?)) AS recent,
			COUNT(*) AS baseline
		FROM orders
		WHERE created_at >= NOW() - make_interval(hours => ?)
		GROUP BY item_id
	`, windowHours, windowHours*velocityBaselineWindows).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order velocity: %w", err)
	}

	out := make(map[uint64]float64, len(rows))
	for _, row := range rows {
		perWindow := float64(row.Baseline) / float64(velocityBaselineWindows)
		if perWindow < 1 {
			perWindow = 1
		}
		out[row.ItemID] = float64(row.Recent) / perWindow
	}

	return out, nil
}
