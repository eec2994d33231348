package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
)

func (c *Controller) HandleExecuteOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderUUID, ok := c.orderUUIDParam(w, r)
	if !ok {
		return
	}

	if err := c.executeUC.ExecuteOrder(r.Context(), orderUUID); err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	response := map[string]interface{}{
		"traceId":   traceID,
		"orderUuid": orderUUID,
		"message":   "execution dispatched",
		"timestamp": time.Now().UTC(),
	}

	c.writeJSON(w, http.StatusOK, response)
}

// HandleUpdateOrderStatus is the executor-facing callback reporting lifecycle
// progress. It is not meant to be exposed to end users.
func (c *Controller) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderUUID, ok := c.orderUUIDParam(w, r)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Status == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status is required",
		})
		return
	}

	if err := c.statusUC.UpdateOrderStatus(r.Context(), orderUUID, req.Status); err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
