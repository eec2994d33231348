package usecase

import (
	"context"

	"go.uber.org/zap"

	"canteen/internal/domain"
	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
)

type OrderRepository interface {
	FindByUUID(ctx context.Context, orderUUID string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderUUID string, status domain.OrderStatus) error
}

type OrderDetailRepository interface {
	FindLinesByOrderUUID(ctx context.Context, orderUUID string) ([]domain.FoodLine, error)
}

type OrderPlaceRepository interface {
	FindLinesByOrderUUID(ctx context.Context, orderUUID string) ([]domain.PlaceLine, error)
}

// ExecutionPublisher is the outbound push channel. HasSubscribers must be
// checked before publishing: a publish with no consumer attached is silent
// data loss, not a no-op.
type ExecutionPublisher interface {
	HasSubscribers(ctx context.Context) (bool, error)
	PublishExecution(ctx context.Context, msg dto.ExecutionMessage) error
}

// ExecuteOrderUseCase dispatches a CREATED order to the external executor.
// It never advances the status itself; the executor reports progress back
// through UpdateOrderStatusUseCase.
type ExecuteOrderUseCase struct {
	orderRepo       OrderRepository
	orderDetailRepo OrderDetailRepository
	orderPlaceRepo  OrderPlaceRepository
	publisher       ExecutionPublisher
	logger          *zap.Logger
}

func NewExecuteOrderUseCase(
	orderRepo OrderRepository,
	orderDetailRepo OrderDetailRepository,
	orderPlaceRepo OrderPlaceRepository,
	publisher ExecutionPublisher,
	logger *zap.Logger,
) *ExecuteOrderUseCase {
	return &ExecuteOrderUseCase{
		orderRepo:       orderRepo,
		orderDetailRepo: orderDetailRepo,
		orderPlaceRepo:  orderPlaceRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

func (uc *ExecuteOrderUseCase) ExecuteOrder(ctx context.Context, orderUUID string) error {
	order, err := uc.orderRepo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return err
	}

	if order.Status != domain.OrderStatusCreated {
		uc.logger.Warn("execute requested for non-created order",
			zap.String("orderUuid", orderUUID),
			zap.String("status", string(order.Status)))
		return apperrors.NewAlreadyStartedError("order " + orderUUID + " already started")
	}

	hasSubscribers, err := uc.publisher.HasSubscribers(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to check execution channel", err)
	}
	if !hasSubscribers {
		uc.logger.Warn("no subscriber on execution channel", zap.String("orderUuid", orderUUID))
		return apperrors.NewChannelUnavailableError("no executor is listening on the execution channel")
	}

	foods, err := uc.orderDetailRepo.FindLinesByOrderUUID(ctx, orderUUID)
	if err != nil {
		return apperrors.NewInternalError("failed to load order details", err)
	}

	places, err := uc.orderPlaceRepo.FindLinesByOrderUUID(ctx, orderUUID)
	if err != nil {
		return apperrors.NewInternalError("failed to load order places", err)
	}

	msg := dto.ExecutionMessage{
		MessageKind: dto.MessageKindExecuteOrder,
		OrderUUID:   order.UUID,
		Payload:     buildExecutionPayload(order, foods, places),
	}

	if err := uc.publisher.PublishExecution(ctx, msg); err != nil {
		uc.logger.Error("failed to publish execution message",
			zap.String("orderUuid", orderUUID), zap.Error(err))
		return apperrors.NewInternalError("failed to publish execution message", err)
	}

	uc.logger.Info("execution dispatched",
		zap.String("orderUuid", orderUUID),
		zap.Int("foodCount", len(foods)),
		zap.Int("placeCount", len(places)))

	return nil
}

func buildExecutionPayload(order *domain.Order, foods []domain.FoodLine, places []domain.PlaceLine) dto.ExecutionOrderPayload {
	foodLines := make([]dto.ExecutionFoodLine, len(foods))
	for i, line := range foods {
		foodLines[i] = dto.ExecutionFoodLine{
			Food:            line.Food,
			Quantity:        line.Quantity,
			WithdrawalOrder: line.WithdrawalOrder,
		}
	}

	placeLines := make([]dto.ExecutionPlaceLine, len(places))
	for i, line := range places {
		placeLines[i] = dto.ExecutionPlaceLine{
			Place:    line.Place,
			Quantity: line.Quantity,
		}
	}

	return dto.ExecutionOrderPayload{
		OrderUUID: order.UUID,
		UserID:    order.UserID,
		Status:    string(order.Status),
		Foods:     foodLines,
		Places:    placeLines,
	}
}
