package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"plateRank/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

// decodeItem hydrates the jsonb columns into their typed fields.
func decodeItem(item *domain.CatalogItem) {
	if len(item.TagsRaw) > 0 {
		_ = json.Unmarshal(item.TagsRaw, &item.Tags)
	}
	if len(item.FlavorVectorRaw) > 0 {
		_ = json.Unmarshal(item.FlavorVectorRaw, &item.FlavorVector)
	}
}

// encodeItem serializes the typed fields back into the jsonb columns.
func encodeItem(item *domain.CatalogItem) error {
	if item.Tags != nil {
		raw, err := json.Marshal(item.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}
		item.TagsRaw = datatypes.JSON(raw)
	}
	if item.FlavorVector != nil {
		raw, err := json.Marshal(item.FlavorVector)
		if err != nil {
			return fmt.Errorf("failed to marshal flavor vector: %w", err)
		}
		item.FlavorVectorRaw = datatypes.JSON(raw)
	}
	return nil
}

func (r *CatalogRepository) Create(ctx context.Context, item *domain.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := encodeItem(item); err != nil {
		return err
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}

	return nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uint64) (domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogItem{}, fmt.Errorf("context error: %w", err)
	}

	var item domain.CatalogItem

	err := r.DB.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CatalogItem{}, errors.New("item not found")
		}
		return domain.CatalogItem{}, fmt.Errorf("failed to find catalog item: %w", err)
	}

	decodeItem(&item)
	return item, nil
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.CatalogItem
	err := r.DB.WithContext(ctx).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog items: %w", err)
	}

	for i := range items {
		decodeItem(&items[i])
	}

	return items, nil
}

// FindOrderable returns the candidate pool snapshot for the engine.
func (r *CatalogRepository) FindOrderable(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.CatalogItem
	err := r.DB.WithContext(ctx).Where("is_orderable = ?", true).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orderable items: %w", err)
	}

	for i := range items {
		decodeItem(&items[i])
	}

	return items, nil
}

// FindCategories maps item ids to their category for the collaborative and
// affinity scorers. Unknown ids are simply absent from the result.
func (r *CatalogRepository) FindCategories(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(ids) == 0 {
		return map[uint64]string{}, nil
	}

	type row struct {
		ID       uint64
		Category string
	}
	var rows []row
	err := r.DB.WithContext(ctx).
		Model(&domain.CatalogItem{}).
		Select("id", "category").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up categories: %w", err)
	}

	out := make(map[uint64]string, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Category
	}
	return out, nil
}

// FindTags maps item ids to their tag sets.
func (r *CatalogRepository) FindTags(ctx context.Context, ids []uint64) (map[uint64][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(ids) == 0 {
		return map[uint64][]string{}, nil
	}

	type row struct {
		ID      uint64
		TagsRaw datatypes.JSON `gorm:"column:tags"`
	}
	var rows []row
	err := r.DB.WithContext(ctx).
		Model(&domain.CatalogItem{}).
		Select("id", "tags").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}

	out := make(map[uint64][]string, len(rows))
	for _, r := range rows {
		var tags []string
		if len(r.TagsRaw) > 0 {
			_ = json.Unmarshal(r.TagsRaw, &tags)
		}
		out[r.ID] = tags
	}
	return out, nil
}

func (r *CatalogRepository) Update(ctx context.Context, item *domain.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.CatalogItem
	if err := r.DB.WithContext(ctx).First(&existing, item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("item not found")
		}
		return fmt.Errorf("failed to find catalog item: %w", err)
	}

	if err := encodeItem(item); err != nil {
		return err
	}

	updateData := map[string]interface{}{
		"item_name":     item.ItemName,
		"category":      item.Category,
		"price":         item.Price,
		"rating":        item.Rating,
		"rating_count":  item.RatingCount,
		"prep_time_min": item.PrepTimeMin,
		"popularity":    item.Popularity,
		"is_orderable":  item.IsOrderable,
		"tags":          item.TagsRaw,
		"flavor_vector": item.FlavorVectorRaw,
	}

	result := r.DB.WithContext(ctx).Model(&domain.CatalogItem{}).Where("id = ?", item.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("item not found or already deleted")
	}

	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.CatalogItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("item not found or already deleted")
	}

	return nil
}
