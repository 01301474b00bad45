package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
	"salon-ads/internal/observability"
)

// StatusEngine derives ad status from campaigns. Every read-then-write
// happens under the ad's row lock so a racing campaign update is never
// overwritten by a status computed from stale data.
type StatusEngine struct {
	repo   port.AdRepository
	logger *slog.Logger
	now    func() time.Time

	// sweepWorkers bounds how many ads a sweep derives concurrently.
	sweepWorkers int
}

// NewStatusEngine creates an engine using the wall clock.
func NewStatusEngine(repo port.AdRepository, logger *slog.Logger, sweepWorkers int) *StatusEngine {
	if sweepWorkers < 1 {
		sweepWorkers = 1
	}
	return &StatusEngine{repo: repo, logger: logger, now: time.Now, sweepWorkers: sweepWorkers}
}

// WithClock replaces the time source.
func (e *StatusEngine) WithClock(now func() time.Time) *StatusEngine {
	e.now = now
	return e
}

// DeriveAndApply recomputes the status of one ad and persists it if it
// differs from the stored value.
func (e *StatusEngine) DeriveAndApply(ctx context.Context, adID int64) (*domain.Ad, error) {
	ad, _, err := e.derive(ctx, adID)
	return ad, err
}

func (e *StatusEngine) derive(ctx context.Context, adID int64) (*domain.Ad, bool, error) {
	var (
		result  *domain.Ad
		changed bool
	)
	err := e.repo.InTx(ctx, func(tx port.AdTx) error {
		ad, err := tx.LockAd(ctx, adID)
		if err != nil {
			return fmt.Errorf("lock ad %d: %w", adID, err)
		}
		if ad == nil {
			return fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
		}
		result = ad
		if ad.Status == domain.AdStatusPaused {
			return nil
		}
		camp, err := tx.GetCampaign(ctx, adID)
		if err != nil {
			return fmt.Errorf("load campaign of ad %d: %w", adID, err)
		}
		target := domain.DeriveStatus(ad.Status, camp, e.now())
		if target == ad.Status {
			return nil
		}
		if err = tx.SetAdStatus(ctx, adID, target); err != nil {
			return fmt.Errorf("set status of ad %d: %w", adID, err)
		}
		e.logger.Debug("ad status derived",
			slog.Int64("ad_id", adID),
			slog.String("from", string(ad.Status)),
			slog.String("to", string(target)),
		)
		ad.Status = target
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if changed {
		observability.StatusTransitions.WithLabelValues("derived", string(result.Status)).Inc()
	}
	return result, changed, nil
}

// SweepAll derives every ad. Ads deleted while the sweep runs are
// skipped. Other failures do not stop the sweep but are returned joined
// together once every ad has been visited.
func (e *StatusEngine) SweepAll(ctx context.Context) (port.SweepResult, error) {
	started := time.Now()
	ids, err := e.repo.ListAdIDs(ctx)
	if err != nil {
		return port.SweepResult{}, fmt.Errorf("list ads: %w", err)
	}

	var (
		mu   sync.Mutex
		res  port.SweepResult
		errs []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.sweepWorkers)
	for _, id := range ids {
		g.Go(func() error {
			_, changed, err := e.derive(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return nil
			case err != nil:
				errs = append(errs, err)
				return nil
			}
			res.Processed++
			if changed {
				res.Changed++
			}
			return nil
		})
	}
	_ = g.Wait()

	res.Duration = time.Since(started)
	observability.SweepDuration.Observe(res.Duration.Seconds())
	sweepErr := errors.Join(errs...)
	observability.SweepRuns.WithLabelValues(observability.Outcome(sweepErr)).Inc()
	if sweepErr != nil {
		return res, fmt.Errorf("%w: sweep failed for %d of %d ads: %w", domain.ErrInternal, len(errs), len(ids), sweepErr)
	}
	return res, nil
}

// SetManual stores status unconditionally, ignoring the campaign window.
func (e *StatusEngine) SetManual(ctx context.Context, adID int64, status domain.AdStatus) (*domain.Ad, error) {
	status, err := domain.ParseAdStatus(string(status))
	if err != nil {
		return nil, err
	}
	var result *domain.Ad
	err = e.repo.InTx(ctx, func(tx port.AdTx) error {
		ad, err := tx.LockAd(ctx, adID)
		if err != nil {
			return fmt.Errorf("lock ad %d: %w", adID, err)
		}
		if ad == nil {
			return fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
		}
		if err = tx.SetAdStatus(ctx, adID, status); err != nil {
			return fmt.Errorf("set status of ad %d: %w", adID, err)
		}
		ad.Status = status
		result = ad
		return nil
	})
	if err != nil {
		return nil, err
	}
	observability.StatusTransitions.WithLabelValues("manual", string(status)).Inc()
	e.logger.Info("ad status set manually", slog.Int64("ad_id", adID), slog.String("status", string(status)))
	return result, nil
}
