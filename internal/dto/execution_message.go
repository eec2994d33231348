package dto

// ExecutionMessage is the payload pushed to the execution channel when an
// order is dispatched. Field names follow the channel's snake_case contract.
type ExecutionMessage struct {
	MessageKind string                `json:"message_kind"`
	OrderUUID   string                `json:"order_uuid"`
	Payload     ExecutionOrderPayload `json:"payload"`
}

// MessageKindExecuteOrder tags the single message kind this core emits.
const MessageKindExecuteOrder = "execute_order"

type ExecutionOrderPayload struct {
	OrderUUID string               `json:"order_uuid"`
	UserID    uint                 `json:"user_id"`
	Status    string               `json:"status"`
	Foods     []ExecutionFoodLine  `json:"foods"`
	Places    []ExecutionPlaceLine `json:"places"`
}

type ExecutionFoodLine struct {
	Food            string `json:"food"`
	Quantity        int    `json:"quantity"`
	WithdrawalOrder int    `json:"withdrawal_order"`
}

type ExecutionPlaceLine struct {
	Place    string `json:"place"`
	Quantity int    `json:"quantity"`
}
