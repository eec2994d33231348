package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"canteen/internal/catalog"
	ordercontroller "canteen/internal/order/controller"
)

func NewRouter(orderCtrl *ordercontroller.Controller, catalogCtrl *catalog.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Get("/catalog", catalogCtrl.HandleGetCatalog)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderCtrl.HandleCreateOrder)
			r.Get("/", orderCtrl.HandleListOrders)
			r.Get("/{orderUuid}", orderCtrl.HandleGetOrder)
			r.Get("/{orderUuid}/status", orderCtrl.HandleGetOrderStatus)
			r.Post("/{orderUuid}/execute", orderCtrl.HandleExecuteOrder)
			r.Patch("/{orderUuid}/status", orderCtrl.HandleUpdateOrderStatus)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
