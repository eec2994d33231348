package catalog

import (
	"context"

	"canteen/internal/domain"
)

type catalogService struct {
	foodRepo  FoodRepository
	placeRepo PlaceRepository
}

func NewService(foodRepo FoodRepository, placeRepo PlaceRepository) Service {
	return &catalogService{
		foodRepo:  foodRepo,
		placeRepo: placeRepo,
	}
}

func (s *catalogService) GetCatalog(ctx context.Context) ([]domain.Food, []domain.Place, error) {
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	places, err := s.placeRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	return foods, places, nil
}
