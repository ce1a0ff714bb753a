package postgres

import (
	"context"
	"errors"
	"fmt"

	"souqStore/domain"

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

// CreateOrder inserts the order and its items in one transaction. The item
// price is copied from products.price inside the insert so the historical
// price stays frozen even when the catalog price changes later.
func (r *OrdersRepository) CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range items {
			res := tx.Exec(
				`INSERT INTO order_items (order_id, product_id, quantity, price)
				 VALUES (?, ?, ?, (SELECT price FROM products WHERE id = ?))`,
				order.ID, item.ProductID, item.Quantity, item.ProductID,
			)
			if res.Error != nil {
				return fmt.Errorf("failed to create order item: %w", res.Error)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return r.DB.WithContext(ctx).Preload("Items").First(order, order.ID).Error
}

func (r *OrdersRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint64) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	var order domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, errors.New("order not found")
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}
