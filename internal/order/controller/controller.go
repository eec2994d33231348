package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"canteen/internal/domain"
	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
}

type OrderQueryUseCase interface {
	GetOrderByUUID(ctx context.Context, orderUUID string) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context) (*dto.OrderListResponse, error)
	GetOrderStatus(ctx context.Context, orderUUID string) (*dto.OrderStatusResponse, error)
}

type ExecuteOrderUseCase interface {
	ExecuteOrder(ctx context.Context, orderUUID string) error
}

type UpdateOrderStatusUseCase interface {
	UpdateOrderStatus(ctx context.Context, orderUUID string, status string) error
}

type Controller struct {
	createUC  CreateOrderUseCase
	queryUC   OrderQueryUseCase
	executeUC ExecuteOrderUseCase
	statusUC  UpdateOrderStatusUseCase
	logger    *zap.Logger
}

func NewController(
	createUC CreateOrderUseCase,
	queryUC OrderQueryUseCase,
	executeUC ExecuteOrderUseCase,
	statusUC UpdateOrderStatusUseCase,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		createUC:  createUC,
		queryUC:   queryUC,
		executeUC: executeUC,
		statusUC:  statusUC,
		logger:    logger,
	}
}

// handleUseCaseError maps the error taxonomy to HTTP responses. Internal
// failures are logged with their cause but surfaced as a generic message.
func (c *Controller) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsInvalidParameterError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}

	if _, ok := apperrors.IsQuantityMismatchError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusUnprocessableEntity, "QUANTITY_MISMATCH", err.Error())
		return
	}

	if _, ok := apperrors.IsAlreadyStartedError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "ALREADY_STARTED", err.Error())
		return
	}

	if _, ok := apperrors.IsChannelUnavailableError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusServiceUnavailable, "CHANNEL_UNAVAILABLE", err.Error())
		return
	}

	if _, ok := apperrors.IsDeadlockError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "DEADLOCK", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *Controller) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	response := dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, statusCode, response)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
