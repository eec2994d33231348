package domain

// OrderStatus is the lifecycle state of an order.
//
//	CREATED -> RUNNING -> COMPLETED
//	                   -> FAILED
//
// COMPLETED and FAILED are terminal; no transition ever moves backward.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusRunning   OrderStatus = "RUNNING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusFailed    OrderStatus = "FAILED"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusCreated:   "Created",
	OrderStatusRunning:   "Running",
	OrderStatusCompleted: "Completed",
	OrderStatusFailed:    "Failed",
}

// Allowed forward transitions. Terminal states map to an empty set.
var orderStatusTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusCreated:   {OrderStatusRunning: true},
	OrderStatusRunning:   {OrderStatusCompleted: true, OrderStatusFailed: true},
	OrderStatusCompleted: {},
	OrderStatusFailed:    {},
}

// Label returns the display form of the status ("Created", "Running", ...).
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// step of the lifecycle.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	nexts := orderStatusTransitions[s]
	return nexts != nil && nexts[next]
}

// ParseOrderStatus maps an external status string to an OrderStatus.
// The second return value is false for unknown values.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	status := OrderStatus(value)
	if !status.Valid() {
		return "", false
	}
	return status, true
}
