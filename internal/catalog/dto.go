package catalog

type CatalogResponse struct {
	Foods  []FoodDTO  `json:"foods"`
	Places []PlaceDTO `json:"places"`
}

type FoodDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PlaceDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
