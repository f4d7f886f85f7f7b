package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/adventure"
	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/database"
	"github.com/wrenbeck/WanderBot_Go/internal/database/postgres"
	"github.com/wrenbeck/WanderBot_Go/internal/economy"
	"github.com/wrenbeck/WanderBot_Go/internal/progression"
	"github.com/wrenbeck/WanderBot_Go/internal/quest"
	"github.com/wrenbeck/WanderBot_Go/internal/scheduler"
	"github.com/wrenbeck/WanderBot_Go/internal/server"
	"github.com/wrenbeck/WanderBot_Go/internal/stats"
	"github.com/wrenbeck/WanderBot_Go/internal/user"
	"github.com/wrenbeck/WanderBot_Go/internal/worker"
)

const (
	workerCount     = 2
	jobQueueSize    = 16
	questSweepEvery = 6 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	dbPool, err := database.NewPool(
		cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime,
	)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, dbPool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	usersRepo := postgres.NewUsersRepository(dbPool)
	adventureRepo := postgres.NewAdventureRepository(dbPool)
	settingsRepo := postgres.NewSettingsRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	settings := config.NewSettingsStore(settingsRepo)
	if err := settings.Reload(ctx); err != nil {
		slog.Error("Failed to load game settings", "error", err)
		os.Exit(1)
	}

	locks := concurrency.NewLockManager()

	services := server.Services{
		Progression: progression.NewService(usersRepo, settings, locks),
		Adventure:   adventure.NewService(adventureRepo, settings, locks),
		Economy:     economy.NewService(adventureRepo, locks),
		Quest:       quest.NewService(adventureRepo, settings, locks),
		Stats:       stats.NewService(statsRepo, settings),
		User:        user.NewService(usersRepo),
		Settings:    settings,
	}

	workerPool := worker.NewPool(workerCount, jobQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sweep := worker.NewQuestSweepJob(adventureRepo)
	sched.Schedule(questSweepEvery, sweep)
	workerPool.Enqueue(sweep) // run once at startup to clear old quest logs

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, services)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	sched.Stop()
	workerPool.Stop()

	slog.Info("Shutdown complete")
}
