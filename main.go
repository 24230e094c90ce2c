package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"

	"record-api/config"
	"record-api/controllers"
	"record-api/httpx"
	"record-api/logger"
	"record-api/routes"
	"record-api/services"
	"record-api/store"
)

func main() {
	cfg, help, err := config.Load()
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return
		}
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	db, err := config.ConnectMongoDB(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	log.Info("connected to MongoDB", "database", cfg.MongoDatabase)

	var items store.Collection = store.NewMongoCollection(db.DB, store.ItemsCollection)
	var clockIns store.Collection = store.NewMongoCollection(db.DB, store.ClockInCollection)

	checks := httpx.HealthChecks{Database: db}
	var cache *config.Redis
	if cfg.CacheEnabled() {
		cache, err = config.ConnectRedis(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			_ = db.Close(ctx)
			os.Exit(1)
		}
		items = store.NewCachedCollection(items, cache.Client, cfg.CacheTTL, log)
		clockIns = store.NewCachedCollection(clockIns, cache.Client, cfg.CacheTTL, log)
		checks.Cache = cache
		log.Info("redis cache enabled", "ttl", cfg.CacheTTL.String())
	}

	handler := routes.SetupRoutes(routes.Options{
		Items:              controllers.NewItemController(services.NewItemService(items, log), log),
		ClockIns:           controllers.NewClockInController(services.NewClockInService(clockIns, log), log),
		Health:             httpx.HealthHandler(checks),
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Error("failed to close redis", "error", err)
		}
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error("failed to disconnect from MongoDB", "error", err)
	}
	log.Info("server stopped")
}
