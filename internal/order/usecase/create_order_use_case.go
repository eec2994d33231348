package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"canteen/internal/domain"
	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
)

type OrderCreationService interface {
	CreateOrder(ctx context.Context, userID uint, foods []dto.FoodItem, places []dto.PlaceItem) (*domain.Order, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.User, error)
}

type CreateOrderUseCase struct {
	userRepo         UserRepository
	creationSvc      OrderCreationService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewCreateOrderUseCase(
	userRepo UserRepository,
	creationSvc OrderCreationService,
	logger *zap.Logger,
	maxRetryAttempts int,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		userRepo:         userRepo,
		creationSvc:      creationSvc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *CreateOrderUseCase) CreateOrder(
	ctx context.Context,
	req dto.CreateOrderRequest,
) (*domain.Order, error) {
	uc.logger.Info("create order started",
		zap.Uint("userId", req.UserID),
		zap.Int("foodCount", len(req.Foods)),
		zap.Int("placeCount", len(req.Places)))

	// The requester id comes from the authenticated transport layer; a missing
	// user is an internal consistency failure, not a client error.
	if _, err := uc.userRepo.FindByID(ctx, req.UserID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			uc.logger.Error("requester not found", zap.Uint("userId", req.UserID))
			return nil, apperrors.NewInternalError("requester does not exist", err)
		}
		return nil, err
	}

	return uc.createWithRetry(ctx, req)
}

func (uc *CreateOrderUseCase) createWithRetry(
	ctx context.Context,
	req dto.CreateOrderRequest,
) (*domain.Order, error) {
	maxAttempts := uc.maxRetryAttempts
	// Backoff intervals: attempt 1 (0ms), attempt 2 (100ms), attempt 3 (200ms).
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		order, err := uc.creationSvc.CreateOrder(ctx, req.UserID, req.Foods, req.Places)
		if err == nil {
			return order, nil
		}

		if isDeadlockError(err) {
			if attempt < maxAttempts {
				jitter := backoffs[attempt-1] * time.Duration(0.8+rand.Float64()*0.4)
				time.Sleep(backoffs[attempt-1] + jitter)
				uc.logger.Warn("deadlock detected, retrying",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.Uint("userId", req.UserID))
				continue
			}
			break
		}

		// Non-deadlock error, return immediately.
		return nil, err
	}

	return nil, apperrors.NewDeadlockError("max retries exceeded")
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
