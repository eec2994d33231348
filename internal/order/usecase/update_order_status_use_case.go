package usecase

import (
	"context"

	"go.uber.org/zap"

	"canteen/internal/domain"
	apperrors "canteen/internal/errors"
)

// UpdateOrderStatusUseCase applies a status reported by the external
// executor. The forward-only lifecycle is enforced here: CREATED -> RUNNING
// -> COMPLETED/FAILED, one step at a time, terminal states immutable.
type UpdateOrderStatusUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewUpdateOrderStatusUseCase(orderRepo OrderRepository, logger *zap.Logger) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *UpdateOrderStatusUseCase) UpdateOrderStatus(ctx context.Context, orderUUID string, status string) error {
	newStatus, ok := domain.ParseOrderStatus(status)
	if !ok {
		return apperrors.NewInvalidParameterError("unknown order status " + status)
	}

	order, err := uc.orderRepo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		uc.logger.Warn("rejected status transition",
			zap.String("orderUuid", orderUUID),
			zap.String("from", string(order.Status)),
			zap.String("to", string(newStatus)))
		return apperrors.NewInvalidParameterError(
			"cannot transition order from " + string(order.Status) + " to " + string(newStatus))
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderUUID, newStatus); err != nil {
		return err
	}

	uc.logger.Info("order status updated",
		zap.String("orderUuid", orderUUID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(newStatus)))

	return nil
}
