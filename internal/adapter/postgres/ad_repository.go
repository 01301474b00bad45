package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool  *pgxpool.Pool
	begin beginFunc
}

type beginFunc func(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)

var (
	writeTxOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	// multi-query reads see a single snapshot
	snapshotTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
)

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool, begin: pool.BeginTx}
}

// runTx commits only when fn returns normally without error. A panic in fn
// rolls the transaction back before it propagates.
func runTx(ctx context.Context, begin beginFunc, opts pgx.TxOptions, fn func(tx pgx.Tx) error) (err error) {
	tx, err := begin(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	committed = true
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// InTx runs fn in a read-committed transaction. Concurrent writers to the
// same ad serialize on the ad row lock taken by LockAd.
func (r *AdRepository) InTx(ctx context.Context, fn func(tx port.AdTx) error) error {
	return runTx(ctx, r.begin, writeTxOptions, func(tx pgx.Tx) error {
		return fn(&adTx{q: tx})
	})
}

// GetDetails loads an ad and everything it owns.
func (r *AdRepository) GetDetails(ctx context.Context, adID int64) (*domain.AdDetails, error) {
	var d *domain.AdDetails
	err := runTx(ctx, r.begin, snapshotTxOptions, func(tx pgx.Tx) error {
		ad, err := getAd(ctx, tx, adID, false)
		if err != nil || ad == nil {
			return err
		}
		out := &domain.AdDetails{Ad: *ad}
		if out.Campaign, err = getCampaign(ctx, tx, adID); err != nil {
			return err
		}
		ids := []int64{adID}
		targets, err := listTargets(ctx, tx, ids)
		if err != nil {
			return err
		}
		hours, err := listHours(ctx, tx, ids)
		if err != nil {
			return err
		}
		media, err := listMedia(ctx, tx, ids)
		if err != nil {
			return err
		}
		out.Targets, out.Hours, out.Media = targets[adID], hours[adID], media[adID]
		d = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListAdIDs returns every ad id in ascending order.
func (r *AdRepository) ListAdIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM ads ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// ListActiveForCity prefilters active ads by target city. District
// matching and schedule filtering are done by the resolver.
func (r *AdRepository) ListActiveForCity(ctx context.Context, city string) ([]domain.AdDetails, error) {
	const query = `
        SELECT a.id, a.title, a.kind, a.salon_id, a.status, a.created_at, a.updated_at
        FROM ads a
        WHERE a.status = 'active'
          AND EXISTS (
              SELECT 1 FROM ad_locations l
              WHERE l.ad_id = a.id
                AND (l.target_type = 'nationwide' OR (l.target_type = 'administrative' AND l.city = $1))
          )
        ORDER BY a.id`
	var out []domain.AdDetails
	err := runTx(ctx, r.begin, snapshotTxOptions, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, city)
		if err != nil {
			return err
		}
		ads, err := pgx.CollectRows(rows, scanAd)
		if err != nil || len(ads) == 0 {
			return err
		}
		ids := make([]int64, len(ads))
		for i := range ads {
			ids[i] = ads[i].ID
		}
		targets, err := listTargets(ctx, tx, ids)
		if err != nil {
			return err
		}
		hours, err := listHours(ctx, tx, ids)
		if err != nil {
			return err
		}
		media, err := listMedia(ctx, tx, ids)
		if err != nil {
			return err
		}
		out = make([]domain.AdDetails, len(ads))
		for i, ad := range ads {
			out[i] = domain.AdDetails{Ad: ad, Targets: targets[ad.ID], Hours: hours[ad.ID], Media: media[ad.ID]}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// adTx implements port.AdTx on an open transaction.
type adTx struct {
	q querier
}

func (t *adTx) LockAd(ctx context.Context, adID int64) (*domain.Ad, error) {
	return getAd(ctx, t.q, adID, true)
}

func (t *adTx) InsertAd(ctx context.Context, ad *domain.Ad) error {
	return t.q.QueryRow(ctx,
		`INSERT INTO ads (title, kind, salon_id, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		ad.Title, string(ad.Kind), ad.SalonID, string(ad.Status),
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
}

func (t *adTx) UpdateAdTitle(ctx context.Context, adID int64, title string) error {
	_, err := t.q.Exec(ctx, `UPDATE ads SET title = $2, updated_at = now() WHERE id = $1`, adID, title)
	return err
}

func (t *adTx) SetAdStatus(ctx context.Context, adID int64, status domain.AdStatus) error {
	_, err := t.q.Exec(ctx, `UPDATE ads SET status = $2, updated_at = now() WHERE id = $1`, adID, string(status))
	return err
}

// DeleteAd relies on ON DELETE CASCADE for campaign, targets, schedules and media.
func (t *adTx) DeleteAd(ctx context.Context, adID int64) error {
	_, err := t.q.Exec(ctx, `DELETE FROM ads WHERE id = $1`, adID)
	return err
}

func (t *adTx) GetCampaign(ctx context.Context, adID int64) (*domain.Campaign, error) {
	return getCampaign(ctx, t.q, adID)
}

func (t *adTx) UpsertCampaign(ctx context.Context, c *domain.Campaign) error {
	var daily *string
	if c.DailyBudget != nil {
		s := c.DailyBudget.String()
		daily = &s
	}
	return t.q.QueryRow(ctx, `
        INSERT INTO ad_campaigns (ad_id, budget, daily_budget, start_date, end_date)
        VALUES ($1, $2::numeric, $3::numeric, $4, $5)
        ON CONFLICT (ad_id) DO UPDATE SET
            budget = EXCLUDED.budget,
            daily_budget = EXCLUDED.daily_budget,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            updated_at = now()
        RETURNING id, created_at, updated_at`,
		c.AdID, c.Budget.String(), daily, c.StartDate, c.EndDate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (t *adTx) DeleteCampaign(ctx context.Context, adID int64) (bool, error) {
	tag, err := t.q.Exec(ctx, `DELETE FROM ad_campaigns WHERE ad_id = $1`, adID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (t *adTx) ReplaceSchedules(ctx context.Context, adID int64, hours []int) error {
	if _, err := t.q.Exec(ctx, `DELETE FROM ad_schedules WHERE ad_id = $1`, adID); err != nil {
		return err
	}
	if len(hours) == 0 {
		return nil
	}
	hs := make([]int32, len(hours))
	for i, h := range hours {
		hs[i] = int32(h)
	}
	_, err := t.q.Exec(ctx,
		`INSERT INTO ad_schedules (ad_id, time_slot) SELECT $1, make_time(h, 0, 0) FROM unnest($2::int[]) AS h`,
		adID, hs)
	return err
}

func (t *adTx) ReplaceTargets(ctx context.Context, adID int64, targets []domain.TargetLocation) error {
	if _, err := t.q.Exec(ctx, `DELETE FROM ad_locations WHERE ad_id = $1`, adID); err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, tl := range targets {
		b.Queue(`INSERT INTO ad_locations (ad_id, target_type, city, district) VALUES ($1, $2, $3, $4)`,
			adID, string(tl.Kind), tl.City, tl.District)
	}
	return t.q.SendBatch(ctx, b).Close()
}

func (t *adTx) ListMedia(ctx context.Context, adID int64) ([]domain.MediaRef, error) {
	m, err := listMedia(ctx, t.q, []int64{adID})
	if err != nil {
		return nil, err
	}
	return m[adID], nil
}

func (t *adTx) ReplaceMedia(ctx context.Context, adID int64, refs []domain.MediaRef) error {
	if _, err := t.q.Exec(ctx, `DELETE FROM ad_medias WHERE ad_id = $1`, adID); err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, m := range refs {
		b.Queue(`INSERT INTO ad_medias (ad_id, url, media_type, size_class, duration, is_primary, position)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			adID, m.URL, string(m.Kind), string(m.SizeClass), m.Duration, m.IsPrimary, m.Position)
	}
	return t.q.SendBatch(ctx, b).Close()
}

func getAd(ctx context.Context, q querier, adID int64, forUpdate bool) (*domain.Ad, error) {
	query := `SELECT id, title, kind, salon_id, status, created_at, updated_at FROM ads WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := q.Query(ctx, query, adID)
	if err != nil {
		return nil, err
	}
	ad, err := pgx.CollectOneRow(rows, scanAd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func scanAd(row pgx.CollectableRow) (domain.Ad, error) {
	var (
		ad           domain.Ad
		kind, status string
	)
	err := row.Scan(&ad.ID, &ad.Title, &kind, &ad.SalonID, &status, &ad.CreatedAt, &ad.UpdatedAt)
	ad.Kind, ad.Status = domain.AdKind(kind), domain.AdStatus(status)
	return ad, err
}

func getCampaign(ctx context.Context, q querier, adID int64) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		budget string
		daily  *string
	)
	err := q.QueryRow(ctx, `
        SELECT id, ad_id, budget::text, daily_budget::text, start_date, end_date, created_at, updated_at
        FROM ad_campaigns WHERE ad_id = $1`, adID).
		Scan(&c.ID, &c.AdID, &budget, &daily, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Budget, err = decimal.NewFromString(budget); err != nil {
		return nil, fmt.Errorf("parse budget: %w", err)
	}
	if daily != nil {
		d, err := decimal.NewFromString(*daily)
		if err != nil {
			return nil, fmt.Errorf("parse daily budget: %w", err)
		}
		c.DailyBudget = &d
	}
	return &c, nil
}

func listTargets(ctx context.Context, q querier, adIDs []int64) (map[int64][]domain.TargetLocation, error) {
	rows, err := q.Query(ctx, `
        SELECT id, ad_id, target_type, city, district
        FROM ad_locations WHERE ad_id = ANY($1) ORDER BY ad_id, id`, adIDs)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TargetLocation, error) {
		var (
			t    domain.TargetLocation
			kind string
		)
		err := row.Scan(&t.ID, &t.AdID, &kind, &t.City, &t.District)
		t.Kind = domain.TargetKind(kind)
		return t, err
	})
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]domain.TargetLocation, len(adIDs))
	for _, t := range list {
		out[t.AdID] = append(out[t.AdID], t)
	}
	return out, nil
}

func listHours(ctx context.Context, q querier, adIDs []int64) (map[int64][]int, error) {
	rows, err := q.Query(ctx, `
        SELECT ad_id, EXTRACT(HOUR FROM time_slot)::int
        FROM ad_schedules WHERE ad_id = ANY($1) ORDER BY ad_id, time_slot`, adIDs)
	if err != nil {
		return nil, err
	}
	type slot struct {
		adID int64
		hour int
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (slot, error) {
		var s slot
		err := row.Scan(&s.adID, &s.hour)
		return s, err
	})
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]int, len(adIDs))
	for _, s := range list {
		out[s.adID] = append(out[s.adID], s.hour)
	}
	return out, nil
}

func listMedia(ctx context.Context, q querier, adIDs []int64) (map[int64][]domain.MediaRef, error) {
	rows, err := q.Query(ctx, `
        SELECT id, ad_id, url, media_type, size_class, duration, is_primary, position
        FROM ad_medias WHERE ad_id = ANY($1) ORDER BY ad_id, position, id`, adIDs)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MediaRef, error) {
		var (
			m          domain.MediaRef
			kind, size string
		)
		err := row.Scan(&m.ID, &m.AdID, &m.URL, &kind, &size, &m.Duration, &m.IsPrimary, &m.Position)
		m.Kind, m.SizeClass = domain.MediaKind(kind), domain.SizeClass(size)
		return m, err
	})
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]domain.MediaRef, len(adIDs))
	for _, m := range list {
		out[m.AdID] = append(out[m.AdID], m)
	}
	return out, nil
}

var _ port.AdRepository = (*AdRepository)(nil)
