package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
	"salon-ads/internal/observability"
)

// Resolver matches active ads to a salon's display. It keeps no cache;
// every call reflects committed data.
//
// Schedule policy: when an hour filter is given, an ad needs a schedule
// entry at that hour, so ads without schedules are excluded. Without a
// filter every location match is returned with its full schedule.
type Resolver struct {
	ads    port.AdRepository
	salons port.SalonRepository
	logger *slog.Logger
}

// NewResolver creates a targeting resolver.
func NewResolver(ads port.AdRepository, salons port.SalonRepository, logger *slog.Logger) *Resolver {
	return &Resolver{ads: ads, salons: salons, logger: logger}
}

// Resolve returns every active ad eligible at the query's salon.
func (r *Resolver) Resolve(ctx context.Context, q port.ResolveQuery) ([]port.ServableAd, error) {
	if q.Hour != nil {
		if err := domain.ValidateHour(*q.Hour); err != nil {
			return nil, err
		}
	}
	loc, err := r.salons.GetLocation(ctx, q.SalonID)
	if err != nil {
		return nil, fmt.Errorf("load location of salon %d: %w", q.SalonID, err)
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: location of salon %d", domain.ErrNotFound, q.SalonID)
	}

	candidates, err := r.ads.ListActiveForCity(ctx, loc.City)
	if err != nil {
		return nil, fmt.Errorf("list candidate ads: %w", err)
	}

	out := make([]port.ServableAd, 0, len(candidates))
	for i := range candidates {
		d := &candidates[i]
		if d.Ad.Status != domain.AdStatusActive || !domain.MatchesAny(d.Targets, *loc) {
			continue
		}
		if q.Hour != nil && !slices.Contains(d.Hours, *q.Hour) {
			continue
		}
		out = append(out, toServable(d, q.Hour == nil))
	}

	observability.ResolveRequests.WithLabelValues(strconv.FormatBool(q.Hour != nil)).Inc()
	observability.ResolvedAds.Observe(float64(len(out)))
	r.logger.Debug("ads resolved",
		slog.Int64("salon_id", q.SalonID),
		slog.String("city", loc.City),
		slog.String("district", loc.District),
		slog.Int("count", len(out)),
	)
	return out, nil
}

func toServable(d *domain.AdDetails, withHours bool) port.ServableAd {
	s := port.ServableAd{
		AdID:  d.Ad.ID,
		Title: d.Ad.Title,
		Kind:  d.Ad.Kind,
		Media: make([]port.ServableMedia, 0, len(d.Media)),
	}
	for _, m := range d.Media {
		s.Media = append(s.Media, port.ServableMedia{
			URL:       m.URL,
			Kind:      m.Kind,
			Duration:  m.Duration,
			SizeClass: m.SizeClass,
			IsPrimary: m.IsPrimary,
		})
	}
	if withHours {
		s.Hours = slices.Clone(d.Hours)
		slices.Sort(s.Hours)
	}
	return s
}

// CountTargetedSalons counts approved salons covered by the ad's targets.
// Pending and rejected salons are excluded; serving itself applies no
// salon status filter.
func (r *Resolver) CountTargetedSalons(ctx context.Context, adID int64) (int, error) {
	d, err := r.ads.GetDetails(ctx, adID)
	if err != nil {
		return 0, fmt.Errorf("load ad %d: %w", adID, err)
	}
	if d == nil {
		return 0, fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
	}
	if len(d.Targets) == 0 {
		return 0, nil
	}
	n, err := r.salons.CountApprovedMatching(ctx, d.Targets)
	if err != nil {
		return 0, fmt.Errorf("count salons for ad %d: %w", adID, err)
	}
	return n, nil
}
