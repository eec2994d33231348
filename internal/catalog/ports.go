package catalog

import (
	"context"

	"canteen/internal/domain"
)

type ListUseCase interface {
	ListCatalog(ctx context.Context) (*CatalogResponse, error)
}

type Service interface {
	GetCatalog(ctx context.Context) ([]domain.Food, []domain.Place, error)
}

type FoodRepository interface {
	FindAll(ctx context.Context) ([]domain.Food, error)
}

type PlaceRepository interface {
	FindAll(ctx context.Context) ([]domain.Place, error)
}
