package service

import (
	"context"
	"fmt"

	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/dto"
	"ecommerce-platform/internal/model"
	"ecommerce-platform/internal/repository"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, req *dto.PlaceOrderRequest) (string, error)
	ListOrders(ctx context.Context, userID string) ([]*model.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

// PlaceOrder stores the total as sent by the client; it is not checked
// against the line items.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID string, req *dto.PlaceOrderRequest) (string, error) {
	if userID == "" {
		return "", common.ErrorUnauthorized
	}

	order := &model.Order{
		UserID:          userID,
		Items:           req.Items,
		Total:           req.Total,
		ShippingAddress: req.ShippingAddress,
		Status:          model.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", fmt.Errorf("store order: %w", err)
	}

	return order.ID, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	return s.orderRepo.FindByUserID(ctx, userID)
}

// GetOrder reports another user's order as not found.
func (s *orderServiceImpl) GetOrder(ctx context.Context, userID, orderID string) (*model.Order, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return order, nil
}
