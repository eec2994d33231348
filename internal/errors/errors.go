package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

// InvalidParameterError marks a creation request that references a catalog
// name no Food or Place row matches, or a status transition that is not
// allowed.
type InvalidParameterError struct {
	Message string
}

func (e *InvalidParameterError) Error() string {
	return e.Message
}

func NewInvalidParameterError(message string) *InvalidParameterError {
	return &InvalidParameterError{Message: message}
}

func IsInvalidParameterError(err error) (*InvalidParameterError, bool) {
	if ip, ok := err.(*InvalidParameterError); ok {
		return ip, true
	}
	return nil, false
}

// QuantityMismatchError is returned when the withdrawal and delivery sums of
// an order do not balance.
type QuantityMismatchError struct {
	Message       string
	WithdrawalSum int
	DeliverySum   int
}

func (e *QuantityMismatchError) Error() string {
	return e.Message
}

func NewQuantityMismatchError(withdrawalSum, deliverySum int) *QuantityMismatchError {
	return &QuantityMismatchError{
		Message:       fmt.Sprintf("withdrawal sum %d does not match delivery sum %d", withdrawalSum, deliverySum),
		WithdrawalSum: withdrawalSum,
		DeliverySum:   deliverySum,
	}
}

func IsQuantityMismatchError(err error) (*QuantityMismatchError, bool) {
	if qm, ok := err.(*QuantityMismatchError); ok {
		return qm, true
	}
	return nil, false
}

// AlreadyStartedError is returned when execution is requested for an order
// that already left the CREATED status.
type AlreadyStartedError struct {
	Message string
}

func (e *AlreadyStartedError) Error() string {
	return e.Message
}

func NewAlreadyStartedError(message string) *AlreadyStartedError {
	return &AlreadyStartedError{Message: message}
}

func IsAlreadyStartedError(err error) (*AlreadyStartedError, bool) {
	if as, ok := err.(*AlreadyStartedError); ok {
		return as, true
	}
	return nil, false
}

// ChannelUnavailableError is returned when the execution channel has no
// active subscriber. Publishing anyway would lose the signal silently.
type ChannelUnavailableError struct {
	Message string
}

func (e *ChannelUnavailableError) Error() string {
	return e.Message
}

func NewChannelUnavailableError(message string) *ChannelUnavailableError {
	return &ChannelUnavailableError{Message: message}
}

func IsChannelUnavailableError(err error) (*ChannelUnavailableError, bool) {
	if cu, ok := err.(*ChannelUnavailableError); ok {
		return cu, true
	}
	return nil, false
}

type DeadlockError struct {
	Message string
}

func (e *DeadlockError) Error() string {
	return e.Message
}

func NewDeadlockError(message string) *DeadlockError {
	return &DeadlockError{Message: message}
}

func IsDeadlockError(err error) (*DeadlockError, bool) {
	if de, ok := err.(*DeadlockError); ok {
		return de, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
