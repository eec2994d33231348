package catalog

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	useCase ListUseCase
	logger  *zap.Logger
}

func NewController(useCase ListUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.ListCatalog(r.Context())
	if err != nil {
		c.logger.Error("list catalog failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
