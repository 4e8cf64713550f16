// @title Tour Booking API
// @version 1.0
// @description Tour booking marketplace backend: tours, bookings, facts, and subscribers with dual-mode pagination on all list endpoints.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourbooking/config"
	_ "tourbooking/docs"
	delivery "tourbooking/internal/delivery/http"
	"tourbooking/internal/delivery/http/controllers"
	"tourbooking/internal/delivery/http/middleware"
	"tourbooking/internal/pagination"
	"tourbooking/internal/repository/mongodb"
	"tourbooking/internal/repository/postgres"
	"tourbooking/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open postgres", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping postgres", "err", err)
		os.Exit(1)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		logger.Error("connect mongodb", "err", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	subscriberRepo, err := mongodb.NewSubscriberRepository(ctx, mongoClient.Database("tourbooking"))
	if err != nil {
		logger.Error("init subscriber repository", "err", err)
		os.Exit(1)
	}
	tourRepo := postgres.NewTourRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	factRepo := postgres.NewFactRepository(db)

	pagingOpts := pagination.Options{MemoryThreshold: cfg.Pagination.MemoryThreshold}
	tourService := services.NewTourService(tourRepo, pagingOpts)
	bookingService := services.NewBookingService(bookingRepo, tourRepo, pagingOpts)
	factService := services.NewFactService(factRepo, pagingOpts)
	subscriberService := services.NewSubscriberService(subscriberRepo, pagingOpts)

	mux := delivery.NewRouter(cfg, logger,
		controllers.NewTourController(logger, tourService),
		controllers.NewBookingController(logger, bookingService),
		controllers.NewFactController(logger, factService),
		controllers.NewSubscriberController(logger, subscriberService),
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment,
			"pagination_policy", string(cfg.Pagination.Policy))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
