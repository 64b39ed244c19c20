package postgres

import (
	"context"
	"fmt"

	"plateRank/business/recommend"
	"plateRank/domain"

	"gorm.io/gorm"
)

type AssociationRuleRepository struct {
	DB *gorm.DB
}

var _ recommend.RuleRepository = (*AssociationRuleRepository)(nil)

func NewAssociationRuleRepository(db *gorm.DB) *AssociationRuleRepository {
	return &AssociationRuleRepository{DB: db}
}

// ActiveRules returns the full mined rule table. The service falls back to
// the seeded defaults when this comes back empty.
func (r *AssociationRuleRepository) ActiveRules(ctx context.Context) ([]domain.AssociationRule, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rules []domain.AssociationRule
	err := r.DB.WithContext(ctx).
		Order("confidence DESC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load association rules: %w", err)
	}

	return rules, nil
}

// ReplaceRules swaps the whole rule table inside a transaction. Used by the
// offline mining job after a fresh run over the order logs.
func (r *AssociationRuleRepository) ReplaceRules(ctx context.Context, rules []domain.AssociationRule) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.AssociationRule{}).Error; err != nil {
			return fmt.Errorf("failed to clear association rules: %w", err)
		}
		if len(rules) == 0 {
			return nil
		}
		if err := tx.Create(&rules).Error; err != nil {
			return fmt.Errorf("failed to insert association rules: %w", err)
		}
		return nil
	})
}
