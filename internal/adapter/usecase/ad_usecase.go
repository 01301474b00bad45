package usecase

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
	"salon-ads/internal/observability"
)

// Activity event types recorded after successful mutations.
const (
	EventAdCreated     = "ad_created"
	EventAdUpdated     = "ad_updated"
	EventAdDeleted     = "ad_deleted"
	EventStatusChanged = "ad_status_changed"
)

// Deps are the collaborators of AdUseCase.
type Deps struct {
	Repo     port.AdRepository
	Salons   port.SalonRepository
	Status   port.StatusEngine
	Authz    port.Authorizer
	Storage  port.ObjectStorage
	Prober   port.MediaProber
	Activity port.ActivityRecorder

	// ActivityTimeout bounds each activity record; zero means the default.
	ActivityTimeout time.Duration
	Logger          *slog.Logger
}

const defaultActivityTimeout = 2 * time.Second

// AdUseCase orchestrates ad mutations. All row changes of one request
// happen in a single transaction; uploads happen before it and object
// deletions after it, since object storage cannot roll back.
type AdUseCase struct {
	repo     port.AdRepository
	salons   port.SalonRepository
	status   port.StatusEngine
	authz    port.Authorizer
	storage  port.ObjectStorage
	prober   port.MediaProber
	activity port.ActivityRecorder
	logger   *slog.Logger

	activityTimeout time.Duration
}

// NewAdUseCase creates the orchestrator.
func NewAdUseCase(d Deps) *AdUseCase {
	return &AdUseCase{
		repo:     d.Repo,
		salons:   d.Salons,
		status:   d.Status,
		authz:    d.Authz,
		storage:  d.Storage,
		prober:   d.Prober,
		activity: d.Activity,
		logger:   d.Logger,

		activityTimeout: cmp.Or(d.ActivityTimeout, defaultActivityTimeout),
	}
}

// Create registers a new ad with its schedule, targets, media and
// campaign, then derives its status.
func (u *AdUseCase) Create(ctx context.Context, actor domain.Actor, in port.CreateAdInput) (_ *domain.AdDetails, err error) {
	defer func() { observability.Mutations.WithLabelValues("create", observability.Outcome(err)).Inc() }()

	ad := domain.Ad{
		Title:   strings.TrimSpace(in.Title),
		Kind:    in.Kind,
		SalonID: in.SalonID,
		Status:  domain.AdStatusInactive,
	}
	if in.Status != "" {
		if ad.Status, err = domain.ParseAdStatus(string(in.Status)); err != nil {
			return nil, err
		}
	}
	if err = ad.Validate(); err != nil {
		return nil, err
	}
	hours, err := domain.NormalizeHours(in.Hours)
	if err != nil {
		return nil, err
	}
	targets, err := buildTargets(in.Targets)
	if err != nil {
		return nil, err
	}
	var camp *domain.Campaign
	if in.Campaign != nil {
		if camp, err = buildCampaign(in.Campaign); err != nil {
			return nil, err
		}
	}
	if ad.SalonID != nil {
		ok, err := u.salons.Exists(ctx, *ad.SalonID)
		if err != nil {
			return nil, fmt.Errorf("check salon %d: %w", *ad.SalonID, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: salon %d", domain.ErrNotFound, *ad.SalonID)
		}
	}
	if err = u.authorizeNew(ctx, actor, &ad); err != nil {
		return nil, err
	}

	uploaded, err := u.uploadMedia(ctx, mediaFolder(&ad), in.Media)
	if err != nil {
		return nil, err
	}

	err = u.repo.InTx(ctx, func(tx port.AdTx) error {
		if err := tx.InsertAd(ctx, &ad); err != nil {
			return fmt.Errorf("insert ad: %w", err)
		}
		if err := tx.ReplaceSchedules(ctx, ad.ID, hours); err != nil {
			return fmt.Errorf("replace schedules: %w", err)
		}
		if err := tx.ReplaceTargets(ctx, ad.ID, targets); err != nil {
			return fmt.Errorf("replace targets: %w", err)
		}
		if camp != nil {
			camp.AdID = ad.ID
			if err := tx.UpsertCampaign(ctx, camp); err != nil {
				return fmt.Errorf("upsert campaign: %w", err)
			}
		}
		if len(in.Media) > 0 {
			refs, _, err := mergeMedia(nil, in.Media, uploaded)
			if err != nil {
				return err
			}
			if err := tx.ReplaceMedia(ctx, ad.ID, refs); err != nil {
				return fmt.Errorf("replace media: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		u.discardUploads(ctx, uploaded)
		return nil, err
	}

	u.rederive(ctx, ad.ID)
	u.record(ctx, actor, EventAdCreated, map[string]any{"ad_id": ad.ID, "kind": string(ad.Kind), "title": ad.Title})
	u.logger.Info("ad created", slog.Int64("ad_id", ad.ID), slog.String("kind", string(ad.Kind)))
	return u.Get(ctx, ad.ID)
}

// Update applies the fields present in in. Each present collection is
// replaced as a whole.
func (u *AdUseCase) Update(ctx context.Context, actor domain.Actor, adID int64, in port.UpdateAdInput) (_ *domain.AdDetails, err error) {
	defer func() { observability.Mutations.WithLabelValues("update", observability.Outcome(err)).Inc() }()

	var title string
	if in.Title.Present {
		if title = strings.TrimSpace(in.Title.Value); title == "" {
			return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
		}
	}
	var hours []int
	if in.Hours.Present {
		if hours, err = domain.NormalizeHours(in.Hours.Value); err != nil {
			return nil, err
		}
	}
	var targets []domain.TargetLocation
	if in.Targets.Present {
		if targets, err = buildTargets(in.Targets.Value); err != nil {
			return nil, err
		}
	}
	var camp *domain.Campaign
	if in.Campaign.Present && in.Campaign.Value != nil {
		if camp, err = buildCampaign(in.Campaign.Value); err != nil {
			return nil, err
		}
	}

	current, err := u.repo.GetDetails(ctx, adID)
	if err != nil {
		return nil, fmt.Errorf("load ad %d: %w", adID, err)
	}
	if current == nil {
		return nil, fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
	}
	if err = u.authorizeExisting(ctx, actor, &current.Ad); err != nil {
		return nil, err
	}

	var uploaded map[int]domain.MediaRef
	if in.Media.Present {
		if uploaded, err = u.uploadMedia(ctx, mediaFolder(&current.Ad), in.Media.Value); err != nil {
			return nil, err
		}
	}

	var removed []string
	err = u.repo.InTx(ctx, func(tx port.AdTx) error {
		ad, err := tx.LockAd(ctx, adID)
		if err != nil {
			return fmt.Errorf("lock ad %d: %w", adID, err)
		}
		if ad == nil {
			return fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
		}
		if in.Title.Present {
			if err := tx.UpdateAdTitle(ctx, adID, title); err != nil {
				return fmt.Errorf("update title: %w", err)
			}
		}
		if in.Hours.Present {
			if err := tx.ReplaceSchedules(ctx, adID, hours); err != nil {
				return fmt.Errorf("replace schedules: %w", err)
			}
		}
		if in.Targets.Present {
			if err := tx.ReplaceTargets(ctx, adID, targets); err != nil {
				return fmt.Errorf("replace targets: %w", err)
			}
		}
		if in.Media.Present {
			existing, err := tx.ListMedia(ctx, adID)
			if err != nil {
				return fmt.Errorf("list media: %w", err)
			}
			refs, dropped, err := mergeMedia(existing, in.Media.Value, uploaded)
			if err != nil {
				return err
			}
			if err := tx.ReplaceMedia(ctx, adID, refs); err != nil {
				return fmt.Errorf("replace media: %w", err)
			}
			removed = dropped
		}
		if in.Campaign.Present {
			if camp == nil {
				if _, err := tx.DeleteCampaign(ctx, adID); err != nil {
					return fmt.Errorf("delete campaign: %w", err)
				}
			} else {
				camp.AdID = adID
				if err := tx.UpsertCampaign(ctx, camp); err != nil {
					return fmt.Errorf("upsert campaign: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		u.discardUploads(ctx, uploaded)
		return nil, err
	}

	u.deleteObjects(ctx, removed)
	if in.Campaign.Present {
		u.rederive(ctx, adID)
	}
	u.record(ctx, actor, EventAdUpdated, map[string]any{"ad_id": adID, "fields": presentFields(in)})
	u.logger.Info("ad updated", slog.Int64("ad_id", adID), slog.Any("fields", presentFields(in)))
	return u.Get(ctx, adID)
}

// Delete removes an ad and everything it owns, then its media objects.
func (u *AdUseCase) Delete(ctx context.Context, actor domain.Actor, adID int64) (err error) {
	defer func() { observability.Mutations.WithLabelValues("delete", observability.Outcome(err)).Inc() }()

	current, err := u.repo.GetDetails(ctx, adID)
	if err != nil {
		return fmt.Errorf("load ad %d: %w", adID, err)
	}
	if current == nil {
		return fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
	}
	if err = u.authorizeExisting(ctx, actor, &current.Ad); err != nil {
		return err
	}

	var urls []string
	err = u.repo.InTx(ctx, func(tx port.AdTx) error {
		ad, err := tx.LockAd(ctx, adID)
		if err != nil {
			return fmt.Errorf("lock ad %d: %w", adID, err)
		}
		if ad == nil {
			return fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
		}
		media, err := tx.ListMedia(ctx, adID)
		if err != nil {
			return fmt.Errorf("list media: %w", err)
		}
		for _, m := range media {
			urls = append(urls, m.URL)
		}
		if err := tx.DeleteAd(ctx, adID); err != nil {
			return fmt.Errorf("delete ad: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.deleteObjects(ctx, urls)
	u.record(ctx, actor, EventAdDeleted, map[string]any{"ad_id": adID, "title": current.Ad.Title})
	u.logger.Info("ad deleted", slog.Int64("ad_id", adID), slog.Int("media", len(urls)))
	return nil
}

// Get returns an ad with its campaign, targets, hours and media.
func (u *AdUseCase) Get(ctx context.Context, adID int64) (*domain.AdDetails, error) {
	d, err := u.repo.GetDetails(ctx, adID)
	if err != nil {
		return nil, fmt.Errorf("load ad %d: %w", adID, err)
	}
	if d == nil {
		return nil, fmt.Errorf("%w: ad %d", domain.ErrNotFound, adID)
	}
	return d, nil
}

// SetStatus applies an operator override after the ownership check.
func (u *AdUseCase) SetStatus(ctx context.Context, actor domain.Actor, adID int64, status domain.AdStatus) (*domain.Ad, error) {
	current, err := u.Get(ctx, adID)
	if err != nil {
		return nil, err
	}
	if err = u.authorizeExisting(ctx, actor, &current.Ad); err != nil {
		return nil, err
	}
	ad, err := u.status.SetManual(ctx, adID, status)
	if err != nil {
		return nil, err
	}
	u.record(ctx, actor, EventStatusChanged, map[string]any{"ad_id": adID, "status": string(ad.Status)})
	return ad, nil
}

// authorizeNew checks that the actor may create ad. Sponsor ads are
// reserved to admins.
func (u *AdUseCase) authorizeNew(ctx context.Context, actor domain.Actor, ad *domain.Ad) error {
	if actor.IsAdmin {
		return nil
	}
	if ad.SalonID == nil {
		return fmt.Errorf("%w: only admins may manage sponsor ads", domain.ErrForbidden)
	}
	ok, err := u.authz.IsSalonOwner(ctx, actor.UserID, *ad.SalonID)
	if err != nil {
		return fmt.Errorf("check salon owner: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: user %d does not own salon %d", domain.ErrForbidden, actor.UserID, *ad.SalonID)
	}
	return nil
}

func (u *AdUseCase) authorizeExisting(ctx context.Context, actor domain.Actor, ad *domain.Ad) error {
	if actor.IsAdmin {
		return nil
	}
	if ad.SalonID == nil {
		return fmt.Errorf("%w: only admins may manage sponsor ads", domain.ErrForbidden)
	}
	ok, err := u.authz.IsAdOwner(ctx, actor.UserID, ad.ID)
	if err != nil {
		return fmt.Errorf("check ad owner: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: user %d does not own ad %d", domain.ErrForbidden, actor.UserID, ad.ID)
	}
	return nil
}

// rederive runs after commit. A failure leaves the status to the next
// sweep and does not fail the already committed mutation.
func (u *AdUseCase) rederive(ctx context.Context, adID int64) {
	if _, err := u.status.DeriveAndApply(ctx, adID); err != nil {
		u.logger.Warn("status derivation after commit failed", slog.Int64("ad_id", adID), slog.Any("error", err))
	}
}

func (u *AdUseCase) record(ctx context.Context, actor domain.Actor, event string, details map[string]any) {
	if u.activity == nil {
		return
	}
	// detached from request cancellation, bounded by activityTimeout
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.activityTimeout)
	defer cancel()
	if err := u.activity.Record(ctx, actor.UserID, event, details); err != nil {
		u.logger.Warn("record activity failed", slog.String("event", event), slog.Any("error", err))
	}
}

// uploadMedia stores every new file of inputs and returns the resulting
// references keyed by input index. On failure the files uploaded so far
// are discarded.
func (u *AdUseCase) uploadMedia(ctx context.Context, folder string, inputs []port.MediaInput) (map[int]domain.MediaRef, error) {
	for i, in := range inputs {
		if (in.URL == "") == (in.Upload == nil) {
			return nil, fmt.Errorf("%w: media entry %d must name either an existing url or an upload", domain.ErrInvalidArgument, i)
		}
		if _, err := domain.ParseSizeClass(string(in.SizeClass)); err != nil {
			return nil, err
		}
		if in.Upload != nil {
			if in.Upload.Size > domain.MaxMediaSize {
				return nil, fmt.Errorf("%w: %s exceeds the upload limit", domain.ErrInvalidArgument, in.Upload.Filename)
			}
			if _, _, err := domain.ClassifyMedia(in.Upload.ContentType, in.Upload.Filename); err != nil {
				return nil, err
			}
		}
	}

	out := make(map[int]domain.MediaRef)
	for i, in := range inputs {
		if in.Upload == nil {
			continue
		}
		ref, err := u.uploadOne(ctx, folder, in)
		if err != nil {
			u.discardUploads(ctx, out)
			return nil, err
		}
		out[i] = ref
	}
	return out, nil
}

func (u *AdUseCase) uploadOne(ctx context.Context, folder string, in port.MediaInput) (domain.MediaRef, error) {
	up := in.Upload
	kind, contentType, err := domain.ClassifyMedia(up.ContentType, up.Filename)
	if err != nil {
		return domain.MediaRef{}, err
	}
	size, err := domain.ParseSizeClass(string(in.SizeClass))
	if err != nil {
		return domain.MediaRef{}, err
	}
	duration, err := u.prober.ProbeDuration(ctx, kind, up.Body)
	if err != nil {
		return domain.MediaRef{}, fmt.Errorf("probe %s: %w", up.Filename, err)
	}
	if _, err = up.Body.Seek(0, io.SeekStart); err != nil {
		return domain.MediaRef{}, fmt.Errorf("rewind %s: %w", up.Filename, err)
	}
	url, err := u.storage.Upload(ctx, folder, up.Filename, contentType, up.Body, up.Size)
	if err != nil {
		return domain.MediaRef{}, fmt.Errorf("upload %s: %w", up.Filename, err)
	}
	return domain.MediaRef{
		URL:       url,
		Kind:      kind,
		SizeClass: size,
		Duration:  duration,
		IsPrimary: in.IsPrimary,
	}, nil
}

func (u *AdUseCase) discardUploads(ctx context.Context, uploaded map[int]domain.MediaRef) {
	urls := make([]string, 0, len(uploaded))
	for _, ref := range uploaded {
		urls = append(urls, ref.URL)
	}
	u.deleteObjects(ctx, urls)
}

// deleteObjects is best effort: failures are logged and the object leaks.
func (u *AdUseCase) deleteObjects(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := u.storage.Delete(ctx, url); err != nil {
			u.logger.Warn("delete media object failed", slog.String("url", url), slog.Any("error", err))
		}
	}
}

// mergeMedia builds the new media list from inputs. Kept entries must
// reference one of existing; existing entries not kept are returned as
// removed.
func mergeMedia(existing []domain.MediaRef, inputs []port.MediaInput, uploaded map[int]domain.MediaRef) ([]domain.MediaRef, []string, error) {
	byURL := make(map[string]domain.MediaRef, len(existing))
	for _, m := range existing {
		byURL[m.URL] = m
	}
	kept := make(map[string]bool)
	refs := make([]domain.MediaRef, 0, len(inputs))
	for i, in := range inputs {
		ref, ok := uploaded[i]
		if !ok {
			old, found := byURL[in.URL]
			if !found {
				return nil, nil, fmt.Errorf("%w: media %q does not belong to the ad", domain.ErrInvalidArgument, in.URL)
			}
			if kept[in.URL] {
				return nil, nil, fmt.Errorf("%w: media %q listed twice", domain.ErrInvalidArgument, in.URL)
			}
			kept[in.URL] = true
			ref = old
			ref.IsPrimary = in.IsPrimary
			if in.SizeClass != "" {
				ref.SizeClass = in.SizeClass
			}
		}
		ref.ID = 0
		ref.Position = len(refs)
		refs = append(refs, ref)
	}
	domain.NormalizePrimary(refs)

	var removed []string
	for _, m := range existing {
		if !kept[m.URL] {
			removed = append(removed, m.URL)
		}
	}
	return refs, removed, nil
}

func buildTargets(in []port.TargetInput) ([]domain.TargetLocation, error) {
	out := make([]domain.TargetLocation, 0, len(in))
	for i, t := range in {
		loc := domain.TargetLocation{
			Kind:     domain.TargetKind(strings.ToLower(strings.TrimSpace(string(t.Kind)))),
			City:     trimmed(t.City),
			District: trimmed(t.District),
		}
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		out = append(out, loc)
	}
	return out, nil
}

func buildCampaign(in *port.CampaignInput) (*domain.Campaign, error) {
	c := &domain.Campaign{
		Budget:      in.Budget,
		DailyBudget: in.DailyBudget,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// trimmed strips surrounding space. A blank value stays present so that
// target validation rejects it instead of widening to the whole city.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func mediaFolder(ad *domain.Ad) string {
	if ad.SalonID != nil {
		return fmt.Sprintf("ads/salons/%d", *ad.SalonID)
	}
	return "ads/sponsors"
}

func presentFields(in port.UpdateAdInput) []string {
	var fields []string
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"title", in.Title.Present},
		{"schedule", in.Hours.Present},
		{"targets", in.Targets.Present},
		{"media", in.Media.Present},
		{"campaign", in.Campaign.Present},
	} {
		if f.present {
			fields = append(fields, f.name)
		}
	}
	return fields
}

var _ port.AdUseCase = (*AdUseCase)(nil)
