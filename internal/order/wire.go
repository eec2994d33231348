package order

import (
	"database/sql"

	"go.uber.org/zap"

	catalogrepo "canteen/internal/catalog/repository"
	"canteen/internal/config"
	"canteen/internal/order/controller"
	orderrepo "canteen/internal/order/repository"
	"canteen/internal/order/service"
	"canteen/internal/order/usecase"
	userrepo "canteen/internal/user/repository"
)

func NewModule(db *sql.DB, cfg *config.Config, publisher usecase.ExecutionPublisher, logger *zap.Logger) *controller.Controller {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderDetailRepo := orderrepo.NewMySQLOrderDetailRepository(db)
	orderPlaceRepo := orderrepo.NewMySQLOrderPlaceRepository(db)
	foodRepo := catalogrepo.NewMySQLFoodRepository(db)
	placeRepo := catalogrepo.NewMySQLPlaceRepository(db)
	userRepo := userrepo.NewMySQLUserRepository(db)

	creationSvc := service.NewOrderCreationService(
		db,
		orderRepo,
		orderDetailRepo,
		orderPlaceRepo,
		foodRepo,
		placeRepo,
		logger,
		cfg.Order.CreateTxTimeout,
	)

	createUC := usecase.NewCreateOrderUseCase(userRepo, creationSvc, logger, cfg.Order.MaxRetryAttempts)
	queryUC := usecase.NewOrderQueryUseCase(orderRepo, orderDetailRepo, orderPlaceRepo, logger)
	executeUC := usecase.NewExecuteOrderUseCase(orderRepo, orderDetailRepo, orderPlaceRepo, publisher, logger)
	statusUC := usecase.NewUpdateOrderStatusUseCase(orderRepo, logger)

	return controller.NewController(createUC, queryUC, executeUC, statusUC, logger)
}
