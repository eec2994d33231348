package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"canteen/internal/domain"
	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
}

type OrderDetailRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, detail domain.OrderDetail) (uint, error)
}

type OrderPlaceRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, place domain.OrderPlace) (uint, error)
}

type FoodRepository interface {
	FindByName(ctx context.Context, tx *sql.Tx, name string) (*domain.Food, error)
}

type PlaceRepository interface {
	FindByName(ctx context.Context, tx *sql.Tx, name string) (*domain.Place, error)
}

// OrderCreationService builds the order aggregate inside one transaction:
// the order shell, one OrderDetail per food item and one OrderPlace per place
// item either all become durable together or none do.
type OrderCreationService struct {
	db              TransactionManager
	orderRepo       OrderRepository
	orderDetailRepo OrderDetailRepository
	orderPlaceRepo  OrderPlaceRepository
	foodRepo        FoodRepository
	placeRepo       PlaceRepository
	logger          *zap.Logger
	txTimeout       time.Duration
}

func NewOrderCreationService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderDetailRepo OrderDetailRepository,
	orderPlaceRepo OrderPlaceRepository,
	foodRepo FoodRepository,
	placeRepo PlaceRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderCreationService {
	return &OrderCreationService{
		db:              db,
		orderRepo:       orderRepo,
		orderDetailRepo: orderDetailRepo,
		orderPlaceRepo:  orderPlaceRepo,
		foodRepo:        foodRepo,
		placeRepo:       placeRepo,
		logger:          logger,
		txTimeout:       txTimeout,
	}
}

func (s *OrderCreationService) CreateOrder(
	ctx context.Context,
	userID uint,
	foods []dto.FoodItem,
	places []dto.PlaceItem,
) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to begin transaction", err)
	}
	// Ensure rollback on any exit path. MySQL ignores rollback if already committed.
	defer tx.Rollback()

	order := domain.Order{
		UUID:   uuid.New().String(),
		UserID: userID,
		Status: domain.OrderStatusCreated,
	}

	if err := s.orderRepo.Insert(txCtx, tx, order); err != nil {
		s.logger.Error("failed to insert order shell", zap.String("orderUuid", order.UUID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to create order", err)
	}

	withdrawalSum := 0
	for _, item := range foods {
		food, err := s.foodRepo.FindByName(txCtx, tx, item.Name)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				s.logger.Warn("unresolvable food name, aborting order",
					zap.String("orderUuid", order.UUID), zap.String("food", item.Name))
				return nil, apperrors.NewInvalidParameterError("food " + item.Name + " does not exist")
			}
			return nil, apperrors.NewInternalError("failed to resolve food", err)
		}

		detail := domain.OrderDetail{
			OrderUUID:       order.UUID,
			FoodID:          food.ID,
			Quantity:        item.Quantity,
			WithdrawalOrder: item.WithdrawalOrder,
		}

		if _, err := s.orderDetailRepo.Insert(txCtx, tx, detail); err != nil {
			s.logger.Error("failed to insert order detail", zap.String("orderUuid", order.UUID), zap.Error(err))
			return nil, apperrors.NewInternalError("failed to create order detail", err)
		}

		withdrawalSum += item.Quantity
	}

	deliverySum := 0
	for _, item := range places {
		place, err := s.placeRepo.FindByName(txCtx, tx, item.Name)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				s.logger.Warn("unresolvable place name, aborting order",
					zap.String("orderUuid", order.UUID), zap.String("place", item.Name))
				return nil, apperrors.NewInvalidParameterError("place " + item.Name + " does not exist")
			}
			return nil, apperrors.NewInternalError("failed to resolve place", err)
		}

		orderPlace := domain.OrderPlace{
			OrderUUID: order.UUID,
			PlaceID:   place.ID,
			Quantity:  item.Quantity,
		}

		if _, err := s.orderPlaceRepo.Insert(txCtx, tx, orderPlace); err != nil {
			s.logger.Error("failed to insert order place", zap.String("orderUuid", order.UUID), zap.Error(err))
			return nil, apperrors.NewInternalError("failed to create order place", err)
		}

		deliverySum += item.Quantity
	}

	if err := domain.ValidateBalance(withdrawalSum, deliverySum); err != nil {
		s.logger.Warn("quantity balance check failed, rolling back",
			zap.String("orderUuid", order.UUID),
			zap.Int("withdrawalSum", withdrawalSum),
			zap.Int("deliverySum", deliverySum))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit order", zap.String("orderUuid", order.UUID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to commit order", err)
	}

	s.logger.Info("order committed",
		zap.String("orderUuid", order.UUID),
		zap.Uint("userId", userID),
		zap.Int("foodCount", len(foods)),
		zap.Int("placeCount", len(places)),
		zap.Int("quantity", withdrawalSum))

	return &order, nil
}
