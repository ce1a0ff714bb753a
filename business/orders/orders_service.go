package orders

import (
	"context"
	"errors"
	"fmt"

	"souqStore/domain"
	"souqStore/pkg/logger"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint64) (domain.Order, error)
}

type OrdersService struct {
	orderRepo OrdersRepository
}

func NewOrdersService(orderRepo OrdersRepository) *OrdersService {
	return &OrdersService{
		orderRepo: orderRepo,
	}
}

func (s *OrdersService) CreateOrder(ctx context.Context, userID uint64, items []domain.OrderItem) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	if userID == 0 {
		return domain.Order{}, errors.New("user id is required")
	}
	if len(items) == 0 {
		return domain.Order{}, errors.New("order items are required")
	}
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return domain.Order{}, errors.New("invalid order item")
		}
	}

	order := domain.Order{UserID: userID}
	if err := s.orderRepo.CreateOrder(ctx, &order, items); err != nil {
		logger.Error("failed to create order", err)
		return domain.Order{}, err
	}

	logger.Info("order created", "order_id", order.ID, "user_id", userID, "items", len(items))

	return order, nil
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.FindAll(ctx)
}

func (s *OrdersService) GetOrder(ctx context.Context, id uint64) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.FindByID(ctx, id)
}
