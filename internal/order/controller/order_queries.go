package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "canteen/internal/errors"
)

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.queryUC.ListOrders(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderUUID, ok := c.orderUUIDParam(w, r)
	if !ok {
		return
	}

	resp, err := c.queryUC.GetOrderByUUID(r.Context(), orderUUID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleGetOrderStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderUUID, ok := c.orderUUIDParam(w, r)
	if !ok {
		return
	}

	resp, err := c.queryUC.GetOrderStatus(r.Context(), orderUUID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) orderUUIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderUUID := chi.URLParam(r, "orderUuid")
	if _, err := uuid.Parse(orderUUID); err != nil {
		c.writeValidationError(w, "invalid orderUuid", apperrors.ValidationDetail{
			Field:   "orderUuid",
			Message: "orderUuid must be a valid UUID",
		})
		return "", false
	}
	return orderUUID, true
}
