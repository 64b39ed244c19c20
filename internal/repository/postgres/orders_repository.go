package postgres

import (
	"context"
	"errors"

	"plateRank/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) CreateOrder(ctx context.Context, data domain.Order) (domain.Order, error) {
	err := r.DB.WithContext(ctx).Create(&data).Error
	if err != nil {
		return domain.Order{}, err
	}

	return data, nil
}

func (r *OrdersRepository) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.DB.WithContext(ctx).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrdersRepository) GetOrder(ctx context.Context, orderID int) (domain.Order, error) {
	var order domain.Order
	err := r.DB.WithContext(ctx).Where("id=?", orderID).First(&order).Error
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (r *OrdersRepository) GetOrderStatus(ctx context.Context, status string, userID int) (domain.Order, error) {
	var order domain.Order
	err := r.DB.WithContext(ctx).Where("order_status=?", status).Where("user_id=?", userID).First(&order).Error
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

// RecentItemIDs returns the user's ordered item ids, most recent first. Used
// as the collaborative history signal.
func (r *OrdersRepository) RecentItemIDs(ctx context.Context, userID uint, limit int) ([]uint64, error) {
	if limit <= 0 {
		limit = 20
	}

	var ids []uint64
	err := r.DB.WithContext(ctx).
		Model(&domain.Order{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *OrdersRepository) UpdateOrder(ctx context.Context, data domain.Order) error {
	row := r.DB.WithContext(ctx).Where("id=?", data.ID).Updates(&data)
	if row.RowsAffected == 0 {
		return errors.New("order_id not found")
	}
	if err := row.Error; err != nil {
		return err
	}

	return nil
}

func (r *OrdersRepository) DeleteOrder(ctx context.Context, orderID int) error {
	row := r.DB.WithContext(ctx).Where("id=?", orderID).Delete(&domain.Order{})
	if row.RowsAffected == 0 {
		return errors.New("order_id not found")
	}
	if err := row.Error; err != nil {
		return err
	}

	return nil
}
