package dto

type CreateOrderRequest struct {
	UserID uint        `json:"userId"`
	Foods  []FoodItem  `json:"foods"`
	Places []PlaceItem `json:"places"`
}

type FoodItem struct {
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	WithdrawalOrder int    `json:"withdrawalOrder"`
}

type PlaceItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
