package usecase

import (
	"context"

	"go.uber.org/zap"

	"canteen/internal/domain"
	"canteen/internal/dto"
)

// OrderQueryUseCase serves the read-only surface: list orders, fetch one
// order with resolved line items, and report the display status.
type OrderQueryUseCase struct {
	orderRepo       OrderRepository
	orderDetailRepo OrderDetailRepository
	orderPlaceRepo  OrderPlaceRepository
	logger          *zap.Logger
}

func NewOrderQueryUseCase(
	orderRepo OrderRepository,
	orderDetailRepo OrderDetailRepository,
	orderPlaceRepo OrderPlaceRepository,
	logger *zap.Logger,
) *OrderQueryUseCase {
	return &OrderQueryUseCase{
		orderRepo:       orderRepo,
		orderDetailRepo: orderDetailRepo,
		orderPlaceRepo:  orderPlaceRepo,
		logger:          logger,
	}
}

func (uc *OrderQueryUseCase) GetOrderByUUID(ctx context.Context, orderUUID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}

	return uc.assembleOrder(ctx, order)
}

func (uc *OrderQueryUseCase) ListOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp, err := uc.assembleOrder(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &dto.OrderListResponse{Orders: responses}, nil
}

func (uc *OrderQueryUseCase) GetOrderStatus(ctx context.Context, orderUUID string) (*dto.OrderStatusResponse, error) {
	order, err := uc.orderRepo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}

	return &dto.OrderStatusResponse{
		OrderUUID: order.UUID,
		Status:    order.Status.Label(),
	}, nil
}

func (uc *OrderQueryUseCase) assembleOrder(ctx context.Context, order *domain.Order) (*dto.OrderResponse, error) {
	foods, err := uc.orderDetailRepo.FindLinesByOrderUUID(ctx, order.UUID)
	if err != nil {
		return nil, err
	}

	places, err := uc.orderPlaceRepo.FindLinesByOrderUUID(ctx, order.UUID)
	if err != nil {
		return nil, err
	}

	foodLines := make([]dto.FoodLineDTO, len(foods))
	for i, line := range foods {
		foodLines[i] = dto.FoodLineDTO{
			Food:            line.Food,
			Quantity:        line.Quantity,
			WithdrawalOrder: line.WithdrawalOrder,
		}
	}

	placeLines := make([]dto.PlaceLineDTO, len(places))
	for i, line := range places {
		placeLines[i] = dto.PlaceLineDTO{
			Place:    line.Place,
			Quantity: line.Quantity,
		}
	}

	return &dto.OrderResponse{
		OrderUUID: order.UUID,
		UserID:    order.UserID,
		Status:    order.Status.Label(),
		CreatedAt: order.CreatedAt,
		Foods:     foodLines,
		Places:    placeLines,
	}, nil
}
