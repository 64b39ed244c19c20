package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"plateRank/domain"
	"plateRank/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetAllItems(ctx context.Context) ([]domain.CatalogItem, error)
	GetItemByID(ctx context.Context, id uint64) (*domain.CatalogItem, error)
	CreateItem(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error)
	UpdateItem(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error)
	DeleteItem(ctx context.Context, id uint64) error
}

type CatalogHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateItemRequest struct {
	ItemName     string    `json:"item_name" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Price        float64   `json:"price" validate:"gte=0"`
	Rating       float64   `json:"rating" validate:"gte=0,lte=5"`
	RatingCount  int       `json:"rating_count" validate:"gte=0"`
	PrepTimeMin  int       `json:"prep_time_min" validate:"gte=0"`
	Popularity   float64   `json:"popularity" validate:"gte=0,lte=1"`
	IsOrderable  bool      `json:"is_orderable"`
	Tags         []string  `json:"tags"`
	FlavorVector []float64 `json:"flavor_vector"`
}

type UpdateItemRequest struct {
	ItemName     string    `json:"item_name" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Price        float64   `json:"price" validate:"gte=0"`
	Rating       float64   `json:"rating" validate:"gte=0,lte=5"`
	RatingCount  int       `json:"rating_count" validate:"gte=0"`
	PrepTimeMin  int       `json:"prep_time_min" validate:"gte=0"`
	Popularity   float64   `json:"popularity" validate:"gte=0,lte=1"`
	IsOrderable  bool      `json:"is_orderable"`
	Tags         []string  `json:"tags"`
	FlavorVector []float64 `json:"flavor_vector"`
}

func (h *CatalogHandler) GetAllItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.GetAllItems(ctx)
	if err != nil {
		logger.Error("Failed to find all catalog items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all items",
		"items":   items,
	})
}

func (h *CatalogHandler) GetItemByID(c echo.Context) error {
	itemIDStr := c.Param("id")

	itemID, err := strconv.ParseUint(itemIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid item id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.catalogService.GetItemByID(ctx, itemID)
	if err != nil {
		if err.Error() == "item not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find item by id",
		"item":    item,
	})
}

func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var req CreateItemRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate catalog item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := &domain.CatalogItem{
		ItemName:     req.ItemName,
		Category:     req.Category,
		Price:        req.Price,
		Rating:       req.Rating,
		RatingCount:  req.RatingCount,
		PrepTimeMin:  req.PrepTimeMin,
		Popularity:   req.Popularity,
		IsOrderable:  req.IsOrderable,
		Tags:         req.Tags,
		FlavorVector: req.FlavorVector,
	}

	newItem, err := h.catalogService.CreateItem(ctx, item)
	if err != nil {
		logger.Error("Failed to create catalog item", err)
		// Check if it's a validation error
		if err.Error() == "item name is required" ||
			err.Error() == "category is required" ||
			err.Error() == "price cannot be negative" ||
			err.Error() == "rating must be between 0 and 5" ||
			err.Error() == "rating count cannot be negative" ||
			err.Error() == "popularity must be between 0 and 1" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Item successfully created",
		"item":    newItem,
	})
}

func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	itemIDStr := c.Param("id")

	itemID, err := strconv.ParseUint(itemIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid item id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate catalog item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := &domain.CatalogItem{
		ID:           itemID,
		ItemName:     req.ItemName,
		Category:     req.Category,
		Price:        req.Price,
		Rating:       req.Rating,
		RatingCount:  req.RatingCount,
		PrepTimeMin:  req.PrepTimeMin,
		Popularity:   req.Popularity,
		IsOrderable:  req.IsOrderable,
		Tags:         req.Tags,
		FlavorVector: req.FlavorVector,
	}

	updatedItem, err := h.catalogService.UpdateItem(ctx, item)
	if err != nil {
		logger.Error("Failed to update catalog item", err)
		if err.Error() == "item not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "item ID is required" ||
			err.Error() == "item name is required" ||
			err.Error() == "category is required" ||
			err.Error() == "price cannot be negative" ||
			err.Error() == "rating must be between 0 and 5" ||
			err.Error() == "popularity must be between 0 and 1" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update item",
		"item":    updatedItem,
	})
}

func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	itemIDStr := c.Param("id")

	itemID, err := strconv.ParseUint(itemIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid item id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.catalogService.DeleteItem(ctx, itemID)
	if err != nil {
		logger.Error("Failed to delete catalog item", err)
		if err.Error() == "item not found" || err.Error() == "invalid item id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "item successfully deleted",
		"item_id": itemID,
	})
}
