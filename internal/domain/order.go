package domain

import "time"

type Order struct {
	UUID      string
	UserID    uint
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderDetail is a food line item: a quantity withdrawn from the catalog
// for its parent order. Created together with the order, immutable after.
type OrderDetail struct {
	ID              uint
	OrderUUID       string
	FoodID          uint
	Quantity        int
	WithdrawalOrder int
}

// OrderPlace is a delivery line item: a quantity to deliver to a place.
type OrderPlace struct {
	ID        uint
	OrderUUID string
	PlaceID   uint
	Quantity  int
}

// FoodLine is an OrderDetail joined with its resolved food name, as exposed
// by read queries and the execution payload.
type FoodLine struct {
	Food            string
	Quantity        int
	WithdrawalOrder int
}

type PlaceLine struct {
	Place    string
	Quantity int
}
