package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/MounsifEd/storefront-checkout-service/internal/cart"
	"github.com/MounsifEd/storefront-checkout-service/internal/checkout"
	"github.com/MounsifEd/storefront-checkout-service/internal/clients"
	"github.com/MounsifEd/storefront-checkout-service/internal/config"
	"github.com/MounsifEd/storefront-checkout-service/internal/events"
	"github.com/MounsifEd/storefront-checkout-service/internal/handlers"
	"github.com/MounsifEd/storefront-checkout-service/internal/logging"
	"github.com/MounsifEd/storefront-checkout-service/internal/metrics"
	"github.com/MounsifEd/storefront-checkout-service/internal/reviews"
	"github.com/MounsifEd/storefront-checkout-service/internal/server"
	"github.com/MounsifEd/storefront-checkout-service/internal/store"

	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger("storefront")
	defer logger.Sync()

	slots, cleanup, err := initStore(cfg, logger)
	if err != nil {
		logger.Fatal("store init failed",
			zap.String("backend", cfg.Store.Backend),
			zap.Error(err))
	}
	defer cleanup()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Features.EnableOrderEvents {
		publisher = events.NewKafkaPublisher(cfg.Kafka, logging.NewLogger("events"))
	}
	defer publisher.Close()

	cartService := cart.NewService(logging.NewLogger("cart"))
	checkoutService := checkout.NewService(cartService, slots, publisher, logging.NewLogger("checkout"))
	reviewService := reviews.NewService(slots, logging.NewLogger("reviews"))
	productClient := clients.NewHTTPProductClient(cfg.ProductAPI, logging.NewLogger("product-client"))

	m := metrics.New()

	h := handlers.New(checkoutService, cartService, reviewService, productClient, m, logging.NewLogger("handlers"))

	srv := server.New(h, m, cfg)

	go func() {
		logger.Info("server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("store_backend", cfg.Store.Backend),
			zap.Bool("order_events", cfg.Features.EnableOrderEvents))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// initStore builds the configured slot-store backend. The returned
// cleanup releases backend resources and is safe to call once.
func initStore(cfg *config.Config, logger *zap.Logger) (store.SlotStore, func(), error) {
	storeLogger := logging.NewLogger("store")

	switch cfg.Store.Backend {
	case "redis":
		redisStore := store.NewRedisStore(cfg.Redis, storeLogger)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisStore.Ping(ctx); err != nil {
			return nil, nil, err
		}
		return redisStore, func() { redisStore.Close() }, nil

	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.ConnectionString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		pgStore := store.NewPostgresStore(db, storeLogger)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pgStore.Init(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return pgStore, func() { db.Close() }, nil

	default:
		fileStore, err := store.NewFileStore(cfg.Store.DataDir, storeLogger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using file slot store", zap.String("dir", cfg.Store.DataDir))
		return fileStore, func() {}, nil
	}
}
