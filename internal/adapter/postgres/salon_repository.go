package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
)

// SalonRepository serves salon locations and ownership checks.
type SalonRepository struct {
	pool *pgxpool.Pool
}

// NewSalonRepository returns a new repository instance.
func NewSalonRepository(pool *pgxpool.Pool) *SalonRepository {
	return &SalonRepository{pool: pool}
}

// Exists reports whether the salon is registered.
func (r *SalonRepository) Exists(ctx context.Context, salonID int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM salons WHERE id = $1)`, salonID).Scan(&ok)
	return ok, err
}

// GetLocation returns the salon's location or nil when none is stored.
func (r *SalonRepository) GetLocation(ctx context.Context, salonID int64) (*domain.SalonLocation, error) {
	var loc domain.SalonLocation
	err := r.pool.QueryRow(ctx, `
        SELECT salon_id, address_line1, address_line2, city, district,
               COALESCE(latitude, 0), COALESCE(longitude, 0)
        FROM salon_locations WHERE salon_id = $1`, salonID).
		Scan(&loc.SalonID, &loc.AddressLine1, &loc.AddressLine2, &loc.City, &loc.District, &loc.Latitude, &loc.Longitude)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// CountApprovedMatching counts approved salons whose location satisfies
// at least one target. A nationwide target covers every approved salon,
// located or not.
func (r *SalonRepository) CountApprovedMatching(ctx context.Context, targets []domain.TargetLocation) (int, error) {
	var n int
	nationwide, cond, args := targetFilter(targets)
	switch {
	case nationwide:
		err := r.pool.QueryRow(ctx, `SELECT count(*) FROM salons WHERE status = 'approved'`).Scan(&n)
		return n, err
	case cond == "":
		return 0, nil
	}
	query := `
        SELECT count(DISTINCT s.id)
        FROM salons s
        JOIN salon_locations l ON l.salon_id = s.id
        WHERE s.status = 'approved' AND (` + cond + `)`
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// targetFilter renders administrative targets as an OR of city/district
// predicates on salon_locations l.
func targetFilter(targets []domain.TargetLocation) (nationwide bool, cond string, args []any) {
	var conds []string
	for _, t := range targets {
		switch t.Kind {
		case domain.TargetNationwide:
			return true, "", nil
		case domain.TargetAdministrative:
			if t.City == nil {
				continue
			}
			args = append(args, *t.City)
			c := fmt.Sprintf("l.city = $%d", len(args))
			if t.District != nil {
				args = append(args, *t.District)
				c += fmt.Sprintf(" AND l.district = $%d", len(args))
			}
			conds = append(conds, "("+c+")")
		}
	}
	return false, strings.Join(conds, " OR "), args
}

// IsSalonOwner implements port.Authorizer.
func (r *SalonRepository) IsSalonOwner(ctx context.Context, userID, salonID int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM salons WHERE id = $1 AND owner_id = $2)`, salonID, userID).Scan(&ok)
	return ok, err
}

// IsAdOwner implements port.Authorizer through the ad's salon.
func (r *SalonRepository) IsAdOwner(ctx context.Context, userID, adID int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM ads a JOIN salons s ON s.id = a.salon_id
            WHERE a.id = $1 AND s.owner_id = $2
        )`, adID, userID).Scan(&ok)
	return ok, err
}

var (
	_ port.SalonRepository = (*SalonRepository)(nil)
	_ port.Authorizer      = (*SalonRepository)(nil)
)
