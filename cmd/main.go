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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salon-ads/internal/adapter/activity"
	httpadapter "salon-ads/internal/adapter/http"
	"salon-ads/internal/adapter/media"
	"salon-ads/internal/adapter/postgres"
	"salon-ads/internal/adapter/scheduler"
	"salon-ads/internal/adapter/storage"
	"salon-ads/internal/adapter/usecase"
	"salon-ads/internal/config"
	"salon-ads/internal/db"
	"salon-ads/internal/observability"
)

// main loads configuration, prepares the database, wires the adapters
// and use cases, then serves HTTP and runs the status sweeper until a
// termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, logger); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	objects, err := storage.NewS3(ctx, cfg.S3, logger)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}

	redisClient, err := activity.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	if err = observability.Register(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	ads := postgres.NewAdRepository(pool)
	salons := postgres.NewSalonRepository(pool)

	status := usecase.NewStatusEngine(ads, logger, cfg.Sweep.Workers)
	resolver := usecase.NewResolver(ads, salons, logger)
	adUseCase := usecase.NewAdUseCase(usecase.Deps{
		Repo:     ads,
		Salons:   salons,
		Status:   status,
		Authz:    salons,
		Storage:  objects,
		Prober:   media.NewProber(cfg.Media, logger),
		Activity: activity.NewRedisRecorder(redisClient, cfg.Redis, logger),
		Logger:   logger,

		ActivityTimeout: cfg.Redis.ActivityTimeout,
	})

	sweeper := scheduler.NewSweeper(status, cfg.Sweep, logger)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sweeper.Run(ctx)
	}()

	handler := httpadapter.NewHandler(adUseCase, resolver, logger, httpadapter.Options{
		MaxBodyBytes: cfg.HTTP.MaxUploadBytes,
		Metrics:      promhttp.Handler(),
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		stop()
		<-sweepDone
		return fmt.Errorf("server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	<-sweepDone
	return nil
}
