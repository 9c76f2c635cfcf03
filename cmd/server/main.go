package main

// @title           Dashboard Service API
// @version         1.0
// @description     Backend for the analytics dashboard: auth, user preferences, weather/news/finance proxies, and realtime event fan-out over WebSocket.
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "dashboard-service/docs"
	"dashboard-service/internal/adapters/kafka"
	"dashboard-service/internal/api/routes"
	"dashboard-service/internal/config"
	"dashboard-service/internal/database"
	"dashboard-service/internal/services"
	"dashboard-service/internal/websocket"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting dashboard service")

	redisClient, err := database.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	db, err := database.NewPostgresConnection(cfg.Database.URI)
	if err != nil {
		slog.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}

	redisService := services.NewRedisService(redisClient)

	// Realtime core: registry, broadcaster, and the producers feeding it
	registry := websocket.NewRegistry()
	broadcaster := websocket.NewBroadcaster(registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridge := websocket.NewRedisBridge(redisClient.GetClient(), broadcaster)
	go bridge.Run(ctx)

	if cfg.Kafka.Enabled {
		consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, broadcaster)
		if err != nil {
			slog.Error("Failed to create Kafka consumer", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := consumer.Run(ctx); err != nil && err != context.Canceled {
				slog.Error("Kafka consumer stopped", "error", err)
			}
		}()
	}

	financeService := services.NewFinanceService(cfg.Upstream.AlphaVantageKey)
	poller := services.NewStockPoller(financeService, broadcaster, cfg.Realtime.PollInterval, cfg.Realtime.WatchedStocks)
	go poller.Run(ctx)

	router := routes.NewRouter(cfg, registry, broadcaster, redisService, db)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
