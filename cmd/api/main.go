// Package main is the entry point for the rInventory API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Somebud0180/rInventory-sub001/config"
	"github.com/Somebud0180/rInventory-sub001/internal/infra/db"
	"github.com/Somebud0180/rInventory-sub001/internal/infra/dependency"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting rInventory API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the local entity store
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to open local entity store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.ItemModel{},
		&model.CategoryModel{},
		&model.LocationModel{},
		&model.SettingsModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize the remote record store client. The client dials lazily, so
	// an unreachable store only surfaces through the account check.
	redisClient, err := newRedisClient(&cfg.Cloud)
	if err != nil {
		slog.Error("Invalid record store configuration", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close record store client", "error", err)
		}
	}()

	// Wire dependencies
	injector := dependency.NewInjector(cfg, database.DB(), redisClient)

	// Start the automatic sync worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	var workerWg sync.WaitGroup
	if cfg.Sync.WorkerEnabled {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			injector.Engine.Start(workerCtx)
		}()
	} else {
		slog.Info("Sync worker disabled")
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	// Stop the sync worker before the HTTP server so no sync cycle runs
	// against a closing database.
	stopWorker()
	workerWg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newRedisClient builds the record store client from configuration. The
// password and database number from the URL can be overridden individually.
func newRedisClient(cfg *config.CloudConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record store URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts), nil
}
