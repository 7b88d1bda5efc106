package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RealEstateAPI/config"
	"RealEstateAPI/database"
	"RealEstateAPI/handlers"
	"RealEstateAPI/models"
	"RealEstateAPI/routes"
	"RealEstateAPI/utils"
)

func main() {
	cfg := config.Load()

	logger, logCloser, err := utils.NewLogger(cfg.Log, cfg.Server.AppName, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := database.Connect(ctx, cfg.Database, logger)

	var cache *utils.Cache
	if cfg.Cache.Addr != "" {
		cache = utils.NewCache(utils.NewRedisClient(cfg.Cache.Addr, cfg.Cache.Password), cfg.Cache.TTL)
		logger.Info("Listing cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	}

	validator, err := models.NewValidator()
	if err != nil {
		logger.Error("Failed to compile record schemas", "error", err)
		os.Exit(1)
	}

	e := routes.NewServer(logger)
	routes.RegisterRoutes(e, routes.Controllers{
		Health:     handlers.NewHealthController(store, cache, cfg.Database.URL != "", cfg.Database.Name != ""),
		Properties: handlers.NewPropertyController(store, validator, cache, logger),
		Inquiries:  handlers.NewInquiryController(store, validator, logger),
	})

	go func() {
		logger.Info("Server starting", "port", cfg.Server.Port)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect failed", "error", err)
	}
	if cache != nil {
		if err := cache.Close(); err != nil {
			logger.Error("Redis close failed", "error", err)
		}
	}
	if err := logCloser.Close(); err != nil {
		log.Printf("Fluent close failed: %v", err)
	}
}
