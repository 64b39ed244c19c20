package orders

import (
	"context"
	"time"

	"plateRank/business/catalog"
	"plateRank/domain"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, data domain.Order) (domain.Order, error)
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (domain.Order, error)
	GetOrderStatus(ctx context.Context, status string, userID int) (domain.Order, error)
	UpdateOrder(ctx context.Context, data domain.Order) error
	DeleteOrder(ctx context.Context, orderID int) error
}

type OrdersService struct {
	orderRepo   OrdersRepository
	catalogRepo catalog.CatalogRepository
}

func NewOrdersService(orderRepo OrdersRepository, catalogRepo catalog.CatalogRepository) *OrdersService {
	return &OrdersService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *OrdersService) CreateOrder(ctx context.Context, data domain.Order) (domain.Order, error) {
	item, err := s.catalogRepo.FindByID(ctx, data.ItemID)
	if err != nil {
		return domain.Order{}, err
	}

	data.PriceEach = item.Price
	data.Subtotal = item.Price * float64(data.Quantity)
	data.OrderStatus = "PENDING"
	data.CreatedAt = time.Now()
	data.UpdatedAt = time.Now()

	return s.orderRepo.CreateOrder(ctx, data)
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.GetAllOrders(ctx)
}

func (s *OrdersService) GetOrder(ctx context.Context, orderID int) (domain.Order, error) {
	return s.orderRepo.GetOrder(ctx, orderID)
}

func (s *OrdersService) GetOrderStatus(ctx context.Context, status string, userID int) (domain.Order, error) {
	return s.orderRepo.GetOrderStatus(ctx, status, userID)
}

func (s *OrdersService) UpdateOrder(ctx context.Context, data domain.Order) error {
	return s.orderRepo.UpdateOrder(ctx, data)
}

func (s *OrdersService) DeleteOrder(ctx context.Context, orderID int) error {
	return s.orderRepo.DeleteOrder(ctx, orderID)
}
