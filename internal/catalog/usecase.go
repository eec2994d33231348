package catalog

import (
	"context"
)

type listUseCase struct {
	service Service
}

func NewListUseCase(service Service) ListUseCase {
	return &listUseCase{service: service}
}

func (uc *listUseCase) ListCatalog(ctx context.Context) (*CatalogResponse, error) {
	foods, places, err := uc.service.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	foodDTOs := make([]FoodDTO, 0, len(foods))
	for _, food := range foods {
		foodDTOs = append(foodDTOs, FoodDTO{ID: food.ID, Name: food.Name})
	}

	placeDTOs := make([]PlaceDTO, 0, len(places))
	for _, place := range places {
		placeDTOs = append(placeDTOs, PlaceDTO{ID: place.ID, Name: place.Name})
	}

	return &CatalogResponse{
		Foods:  foodDTOs,
		Places: placeDTOs,
	}, nil
}
