// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/notifier"
	"hotel-booking/internal/snapshot"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/lock"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.CreateSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to create schema", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	// Connect to redis for the room leases
	redisClient := lock.NewRedisClient(config.Redis.Host, config.Redis.Port)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Replay the last snapshot, if any, before serving
	snap := snapshot.NewManager(config.Snapshot.Path, config.App.Name, repos, logger)
	if err := snap.Restore(context.Background()); err != nil {
		logger.Fatal("Failed to restore snapshot", zap.Error(err))
	}

	notif := notifier.NewConsoleNotifier(logger)
	locker := lock.NewRedisLocker(redisClient, 10*time.Second, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, locker, notif, snap, config, logger)

	server := cmd.NewServer(app.Router, config.App.Port, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}

		// Persist the full state on the way out
		if err := snap.Export(ctx); err != nil {
			logger.Error("Failed to export snapshot on shutdown", zap.Error(err))
		}
	}

	logger.Info("Application stopped")
}
