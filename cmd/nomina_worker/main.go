package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/services"
	"github.com/finca-nomina/nomina_backend/internal/jobs"
	"github.com/finca-nomina/nomina_backend/internal/platform/config"
	"github.com/finca-nomina/nomina_backend/internal/platform/database"
	"github.com/finca-nomina/nomina_backend/internal/repositories/database/pgsql"
	"github.com/hibiken/asynq"
)

// Quincenas start at midnight in Colombia; the schedule runs on local time.
const scheduleLocation = "America/Bogota"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error("REDIS_ADDR is required to run the worker")
		os.Exit(1)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	container := services.NewContainer(pgsql.NewRepositoryProvider(pool), cfg, nil)
	quincenaJob := jobs.NewQuincenaJob(container.PayPeriod, logger)

	// Catch up right away so a worker started mid-quincena does not wait for cron.
	if created, err := quincenaJob.EnsureAround(ctx, time.Now()); err != nil {
		logger.Warn("Initial quincena check failed", slog.String("error", err.Error()))
	} else {
		logger.Info("Initial quincena check done", slog.Int("created", created))
	}

	quincenaTask, err := jobs.NewEnsureQuincenaTask(time.Time{})
	if err != nil {
		logger.Error("Failed to build quincena task", slog.String("error", err.Error()))
		os.Exit(1)
	}

	location, err := time.LoadLocation(scheduleLocation)
	if err != nil {
		logger.Warn("Time zone unavailable, scheduling in UTC", slog.String("zone", scheduleLocation))
		location = time.UTC
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Concurrency: cfg.WorkerConcurrency,
		Location:    location,
		Logger:      logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskEnsureQuincena, Handler: quincenaJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.QuincenaCron, Task: quincenaTask},
		},
	})
	if err != nil {
		logger.Error("Failed to initialize worker", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Worker starting", slog.Int("concurrency", cfg.WorkerConcurrency), slog.String("cron", cfg.QuincenaCron))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
