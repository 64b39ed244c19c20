package catalog

import (
	"context"
	"errors"
	"fmt"

	"plateRank/domain"
	"plateRank/pkg/logger"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	Create(ctx context.Context, item *domain.CatalogItem) error
	FindByID(ctx context.Context, id uint64) (domain.CatalogItem, error)
	FindAll(ctx context.Context) ([]domain.CatalogItem, error)
	FindOrderable(ctx context.Context) ([]domain.CatalogItem, error)
	Update(ctx context.Context, item *domain.CatalogItem) error
	Delete(ctx context.Context, id uint64) error
}

type catalogService struct {
	catalogRepo CatalogRepository
}

func NewCatalogService(catalogRepo CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) GetAllItems(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all catalog items")
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all catalog items", err)
		return nil, err
	}

	return items, nil
}

func (s *catalogService) GetItemByID(ctx context.Context, id uint64) (*domain.CatalogItem, error) {
	if id == 0 {
		logger.Error("invalid item id")
		return nil, errors.New("invalid item id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get catalog item")
		return nil, fmt.Errorf("context error: %w", err)
	}

	item, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find catalog item by id", err.Error())
		return nil, err
	}

	return &item, nil
}

func validateItem(item *domain.CatalogItem) error {
	if item.ItemName == "" {
		return errors.New("item name is required")
	}
	if item.Category == "" {
		return errors.New("category is required")
	}
	if item.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if item.Rating < 0 || item.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	if item.RatingCount < 0 {
		return errors.New("rating count cannot be negative")
	}
	if item.Popularity < 0 || item.Popularity > 1 {
		return errors.New("popularity must be between 0 and 1")
	}
	return nil
}

func (s *catalogService) CreateItem(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create catalog item")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateItem(item); err != nil {
		logger.Error("Invalid catalog item data", err)
		return nil, err
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		logger.Error("failed to create new catalog item", err)
		return nil, fmt.Errorf("failed to create catalog item: %w", err)
	}

	logger.Info("catalog item created successfully")

	return item, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating catalog item")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if item.ID == 0 {
		logger.Error("Invalid catalog item data: ID is required")
		return nil, errors.New("item ID is required")
	}

	if err := validateItem(item); err != nil {
		logger.Error("Invalid catalog item data", err)
		return nil, err
	}

	// Verify item exists
	_, err := s.catalogRepo.FindByID(ctx, item.ID)
	if err != nil {
		logger.Error("catalog item not found", err)
		return nil, errors.New("item not found")
	}

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		logger.Error("failed to update catalog item", err)
		return nil, fmt.Errorf("failed to update catalog item: %w", err)
	}

	// Get updated item from database
	updated, err := s.catalogRepo.FindByID(ctx, item.ID)
	if err != nil {
		logger.Error("failed to fetch updated catalog item", err)
		return nil, fmt.Errorf("failed to fetch updated catalog item: %w", err)
	}

	logger.Info("catalog item updated success")

	return &updated, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid item id when deleting catalog item")
		return errors.New("invalid item id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting catalog item")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify item exists
	_, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("catalog item not found", err)
		return errors.New("item not found")
	}

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete catalog item", err)
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}

	logger.Info("catalog item deleted success")

	return nil
}
