package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
)

const maxLineItems = 100

func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateCreateOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.createUC.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	response := dto.CreateOrderResponse{
		TraceID:   traceID,
		OrderUUID: order.UUID,
		Status:    order.Status.Label(),
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, http.StatusCreated, response)
}

func (c *Controller) validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.UserID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if len(req.Foods) > maxLineItems {
		details = append(details, apperrors.ValidationDetail{
			Field:   "foods",
			Message: "foods exceeds maximum of 100",
		})
	}

	if len(req.Places) > maxLineItems {
		details = append(details, apperrors.ValidationDetail{
			Field:   "places",
			Message: "places exceeds maximum of 100",
		})
	}

	for idx, item := range req.Foods {
		if item.Name == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "foods[" + strconv.Itoa(idx) + "].name",
				Message: "name is required",
			})
		}

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "foods[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}

		if item.WithdrawalOrder < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "foods[" + strconv.Itoa(idx) + "].withdrawalOrder",
				Message: "withdrawalOrder must not be negative",
			})
		}
	}

	for idx, item := range req.Places {
		if item.Name == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "places[" + strconv.Itoa(idx) + "].name",
				Message: "name is required",
			})
		}

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "places[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
