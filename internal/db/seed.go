package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedSalon struct {
	id       int64
	owner    int64
	name     string
	status   string
	city     string
	district string
	lat, lng float64
}

var demoSalons = []seedSalon{
	{1, 101, "Gangnam Hair Studio", "approved", "Seoul", "Gangnam-gu", 37.4979, 127.0276},
	{2, 102, "Mapo Beauty", "approved", "Seoul", "Mapo-gu", 37.5663, 126.9019},
	{3, 103, "Haeundae Salon", "approved", "Busan", "Haeundae-gu", 35.1631, 129.1636},
	{4, 104, "Seomyeon Cuts", "pending", "Busan", "Busanjin-gu", 35.1577, 129.0592},
}

// Seed inserts demo salons and two ads: a nationwide sponsor ad and a
// salon ad targeting Gangnam. It is a no-op once any ad exists.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	var n int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM ads`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		logger.Info("seed skipped, ads already present", slog.Int("ads", n))
		return nil
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, s := range demoSalons {
			if _, err := tx.Exec(ctx, `INSERT INTO salons (id, owner_id, name, status)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, s.id, s.owner, s.name, s.status); err != nil {
				return fmt.Errorf("insert salon %d: %w", s.id, err)
			}
			if _, err := tx.Exec(ctx, `INSERT INTO salon_locations
(salon_id, address_line1, city, district, latitude, longitude)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
				s.id, s.name, s.city, s.district, s.lat, s.lng); err != nil {
				return fmt.Errorf("insert location of salon %d: %w", s.id, err)
			}
		}
		if _, err := tx.Exec(ctx, `SELECT setval('salons_id_seq', (SELECT max(id) FROM salons))`); err != nil {
			return err
		}

		start := time.Now().AddDate(0, 0, -1)
		end := time.Now().AddDate(0, 1, 0)

		var sponsorID int64
		if err := tx.QueryRow(ctx, `INSERT INTO ads (title, kind, status)
VALUES ('Nationwide shampoo launch', 'sponsor', 'active') RETURNING id`).Scan(&sponsorID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO ad_campaigns (ad_id, budget, daily_budget, start_date, end_date)
VALUES ($1, 5000000, 200000, $2, $3)`, sponsorID, start, end); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO ad_locations (ad_id, target_type) VALUES ($1, 'nationwide')`, sponsorID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO ad_medias (ad_id, url, media_type, size_class, duration, is_primary, position)
VALUES ($1, 'https://cdn.example.com/ads/sponsors/shampoo.mp4', 'video', 'max', 30, true, 0)`, sponsorID); err != nil {
			return err
		}

		var salonAdID int64
		if err := tx.QueryRow(ctx, `INSERT INTO ads (title, kind, salon_id, status)
VALUES ('Gangnam spring perm event', 'salon', 1, 'active') RETURNING id`).Scan(&salonAdID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO ad_campaigns (ad_id, budget, start_date, end_date)
VALUES ($1, 300000, $2, $3)`, salonAdID, start, end); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO ad_locations (ad_id, target_type, city, district)
VALUES ($1, 'administrative', 'Seoul', 'Gangnam-gu')`, salonAdID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO ad_schedules (ad_id, time_slot)
SELECT $1, make_time(h, 0, 0) FROM unnest(ARRAY[10, 13, 18]) AS h`, salonAdID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO ad_medias (ad_id, url, media_type, size_class, duration, is_primary, position)
VALUES ($1, 'https://cdn.example.com/ads/salons/1/perm.jpg', 'image', 'max', 10, true, 0)`, salonAdID); err != nil {
			return err
		}

		logger.Info("demo data seeded",
			slog.Int("salons", len(demoSalons)),
			slog.Int64("sponsor_ad_id", sponsorID),
			slog.Int64("salon_ad_id", salonAdID),
		)
		return nil
	})
}
