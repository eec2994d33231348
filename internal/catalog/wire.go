package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"canteen/internal/catalog/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	foodRepo := repository.NewMySQLFoodRepository(db)
	placeRepo := repository.NewMySQLPlaceRepository(db)
	svc := NewService(foodRepo, placeRepo)
	uc := NewListUseCase(svc)
	return NewController(uc, logger)
}
