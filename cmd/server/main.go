package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"canteen/internal/catalog"
	"canteen/internal/commons"
	"canteen/internal/config"
	"canteen/internal/infrastructure/logger"
	"canteen/internal/infrastructure/mysql"
	"canteen/internal/infrastructure/rabbitmq"
	"canteen/internal/order"
	"canteen/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	mqConn, err := rabbitmq.NewConnection(cfg.RabbitMQ)
	if err != nil {
		zapLogger.Fatal("connecting to rabbitmq", zap.Error(err))
	}
	defer mqConn.Close()

	publisher, err := rabbitmq.NewExecutionPublisher(mqConn)
	if err != nil {
		zapLogger.Fatal("creating execution publisher", zap.Error(err))
	}
	defer publisher.Close()
	zapLogger.Info("execution channel ready")

	orderCtrl := order.NewModule(db, cfg, publisher, zapLogger)
	catalogCtrl := catalog.NewModule(db, zapLogger)

	router := server.NewRouter(orderCtrl, catalogCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers the yaml file when one is present and falls back to
// environment variables otherwise.
func loadConfig() (*config.Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "configs/config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		return commons.LoadConfig(path)
	}

	return config.Load()
}
