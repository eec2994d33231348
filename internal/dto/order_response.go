package dto

import "time"

type CreateOrderResponse struct {
	TraceID   string    `json:"traceId"`
	OrderUUID string    `json:"orderUuid"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type OrderResponse struct {
	OrderUUID string         `json:"orderUuid"`
	UserID    uint           `json:"userId"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	Foods     []FoodLineDTO  `json:"foods"`
	Places    []PlaceLineDTO `json:"places"`
}

type FoodLineDTO struct {
	Food            string `json:"food"`
	Quantity        int    `json:"quantity"`
	WithdrawalOrder int    `json:"withdrawalOrder"`
}

type PlaceLineDTO struct {
	Place    string `json:"place"`
	Quantity int    `json:"quantity"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type OrderStatusResponse struct {
	OrderUUID string `json:"orderUuid"`
	Status    string `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
