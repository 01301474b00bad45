package scheduler

import (
	"context"
	"log/slog"
	"time"

	"salon-ads/internal/config/configs"
	"salon-ads/internal/core/port"
)

// Sweeper periodically re-derives every ad's status so that campaign
// boundaries crossed without a write still take effect.
type Sweeper struct {
	engine port.StatusEngine
	cfg    configs.Sweep
	logger *slog.Logger
}

// NewSweeper creates a sweeper driven by cfg.
func NewSweeper(engine port.StatusEngine, cfg configs.Sweep, logger *slog.Logger) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Sweeper{engine: engine, cfg: cfg, logger: logger}
}

// Run sweeps on start when configured and then on every tick until ctx
// is cancelled. Runs never overlap.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("status sweeper started",
		slog.Duration("interval", s.cfg.Interval),
		slog.Bool("run_on_start", s.cfg.RunOnStart),
	)
	if s.cfg.RunOnStart {
		s.RunOnce(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("status sweeper stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and logs its outcome.
func (s *Sweeper) RunOnce(ctx context.Context) port.SweepResult {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	res, err := s.engine.SweepAll(ctx)
	attrs := []any{
		slog.Int("processed", res.Processed),
		slog.Int("changed", res.Changed),
		slog.Duration("duration", res.Duration),
	}
	if err != nil {
		s.logger.Error("status sweep failed", append(attrs, slog.Any("error", err))...)
		return res
	}
	s.logger.Info("status sweep completed", attrs...)
	return res
}
