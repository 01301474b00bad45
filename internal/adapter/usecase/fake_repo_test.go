package usecase

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
)

type fakeSalon struct {
	status domain.SalonStatus
	loc    *domain.SalonLocation
}

type memState struct {
	nextID  int64
	ads     map[int64]domain.Ad
	camps   map[int64]domain.Campaign
	targets map[int64][]domain.TargetLocation
	hours   map[int64][]int
	media   map[int64][]domain.MediaRef
}

func (s *memState) clone() *memState {
	c := &memState{
		nextID:  s.nextID,
		ads:     maps.Clone(s.ads),
		camps:   maps.Clone(s.camps),
		targets: make(map[int64][]domain.TargetLocation, len(s.targets)),
		hours:   make(map[int64][]int, len(s.hours)),
		media:   make(map[int64][]domain.MediaRef, len(s.media)),
	}
	for k, v := range s.targets {
		c.targets[k] = slices.Clone(v)
	}
	for k, v := range s.hours {
		c.hours[k] = slices.Clone(v)
	}
	for k, v := range s.media {
		c.media[k] = slices.Clone(v)
	}
	return c
}

// memRepo is an in-memory AdRepository and SalonRepository. Transactions
// run one at a time against a copy that replaces the committed state only
// when fn succeeds.
type memRepo struct {
	mu        sync.Mutex
	state     *memState
	salons    map[int64]fakeSalon
	failAfter error // returned by InTx after fn ran, forcing a rollback
	txCount   int
}

func newMemRepo() *memRepo {
	return &memRepo{
		state: &memState{
			ads:     map[int64]domain.Ad{},
			camps:   map[int64]domain.Campaign{},
			targets: map[int64][]domain.TargetLocation{},
			hours:   map[int64][]int{},
			media:   map[int64][]domain.MediaRef{},
		},
		salons: map[int64]fakeSalon{},
	}
}

func (r *memRepo) addSalon(id int64, status domain.SalonStatus, city, district string) {
	r.salons[id] = fakeSalon{status: status, loc: &domain.SalonLocation{SalonID: id, City: city, District: district}}
}

// seedAd stores an ad directly, bypassing the use cases.
func (r *memRepo) seedAd(ad domain.Ad, camp *domain.Campaign, targets []domain.TargetLocation, hours []int, media []domain.MediaRef) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.nextID++
	ad.ID = r.state.nextID
	r.state.ads[ad.ID] = ad
	if camp != nil {
		c := *camp
		c.AdID = ad.ID
		r.state.camps[ad.ID] = c
	}
	r.state.targets[ad.ID] = targets
	r.state.hours[ad.ID] = hours
	r.state.media[ad.ID] = media
	return ad.ID
}

func (r *memRepo) InTx(ctx context.Context, fn func(tx port.AdTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txCount++
	work := r.state.clone()
	if err := fn(&memTx{s: work}); err != nil {
		return err
	}
	if r.failAfter != nil {
		return r.failAfter
	}
	r.state = work
	return nil
}

func (r *memRepo) GetDetails(_ context.Context, adID int64) (*domain.AdDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.details(adID), nil
}

func (r *memRepo) ListAdIDs(context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := slices.Collect(maps.Keys(r.state.ads))
	slices.Sort(ids)
	return ids, nil
}

func (r *memRepo) ListActiveForCity(_ context.Context, city string) ([]domain.AdDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := slices.Collect(maps.Keys(r.state.ads))
	slices.Sort(ids)
	var out []domain.AdDetails
	for _, id := range ids {
		if r.state.ads[id].Status != domain.AdStatusActive {
			continue
		}
		hit := false
		for _, t := range r.state.targets[id] {
			if t.Kind == domain.TargetNationwide || (t.City != nil && *t.City == city) {
				hit = true
			}
		}
		if hit {
			out = append(out, *r.state.details(id))
		}
	}
	return out, nil
}

func (r *memRepo) Exists(_ context.Context, salonID int64) (bool, error) {
	_, ok := r.salons[salonID]
	return ok, nil
}

func (r *memRepo) GetLocation(_ context.Context, salonID int64) (*domain.SalonLocation, error) {
	s, ok := r.salons[salonID]
	if !ok || s.loc == nil {
		return nil, nil
	}
	loc := *s.loc
	return &loc, nil
}

func (r *memRepo) CountApprovedMatching(_ context.Context, targets []domain.TargetLocation) (int, error) {
	n := 0
	for _, s := range r.salons {
		if s.status != domain.SalonApproved {
			continue
		}
		if slices.ContainsFunc(targets, func(t domain.TargetLocation) bool { return t.Kind == domain.TargetNationwide }) {
			n++
			continue
		}
		if s.loc != nil && domain.MatchesAny(targets, *s.loc) {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) status(adID int64) domain.AdStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.ads[adID].Status
}

func (s *memState) details(adID int64) *domain.AdDetails {
	ad, ok := s.ads[adID]
	if !ok {
		return nil
	}
	d := &domain.AdDetails{
		Ad:      ad,
		Targets: slices.Clone(s.targets[adID]),
		Hours:   slices.Sorted(slices.Values(s.hours[adID])),
		Media:   slices.Clone(s.media[adID]),
	}
	if len(d.Hours) == 0 {
		d.Hours = nil
	}
	if c, ok := s.camps[adID]; ok {
		d.Campaign = &c
	}
	return d
}

type memTx struct {
	s *memState
}

func (t *memTx) LockAd(_ context.Context, adID int64) (*domain.Ad, error) {
	ad, ok := t.s.ads[adID]
	if !ok {
		return nil, nil
	}
	return &ad, nil
}

func (t *memTx) InsertAd(_ context.Context, ad *domain.Ad) error {
	t.s.nextID++
	ad.ID = t.s.nextID
	ad.CreatedAt = time.Now()
	ad.UpdatedAt = ad.CreatedAt
	t.s.ads[ad.ID] = *ad
	return nil
}

func (t *memTx) UpdateAdTitle(_ context.Context, adID int64, title string) error {
	ad := t.s.ads[adID]
	ad.Title = title
	t.s.ads[adID] = ad
	return nil
}

func (t *memTx) SetAdStatus(_ context.Context, adID int64, status domain.AdStatus) error {
	ad, ok := t.s.ads[adID]
	if !ok {
		return errors.New("no such ad")
	}
	ad.Status = status
	t.s.ads[adID] = ad
	return nil
}

func (t *memTx) DeleteAd(_ context.Context, adID int64) error {
	delete(t.s.ads, adID)
	delete(t.s.camps, adID)
	delete(t.s.targets, adID)
	delete(t.s.hours, adID)
	delete(t.s.media, adID)
	return nil
}

func (t *memTx) GetCampaign(_ context.Context, adID int64) (*domain.Campaign, error) {
	c, ok := t.s.camps[adID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *memTx) UpsertCampaign(_ context.Context, c *domain.Campaign) error {
	t.s.camps[c.AdID] = *c
	return nil
}

func (t *memTx) DeleteCampaign(_ context.Context, adID int64) (bool, error) {
	_, ok := t.s.camps[adID]
	delete(t.s.camps, adID)
	return ok, nil
}

func (t *memTx) ReplaceSchedules(_ context.Context, adID int64, hours []int) error {
	t.s.hours[adID] = slices.Clone(hours)
	return nil
}

func (t *memTx) ReplaceTargets(_ context.Context, adID int64, targets []domain.TargetLocation) error {
	out := slices.Clone(targets)
	for i := range out {
		out[i].AdID = adID
	}
	t.s.targets[adID] = out
	return nil
}

func (t *memTx) ListMedia(_ context.Context, adID int64) ([]domain.MediaRef, error) {
	return slices.Clone(t.s.media[adID]), nil
}

func (t *memTx) ReplaceMedia(_ context.Context, adID int64, refs []domain.MediaRef) error {
	out := slices.Clone(refs)
	for i := range out {
		out[i].AdID = adID
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	t.s.media[adID] = out
	return nil
}

var (
	_ port.AdRepository    = (*memRepo)(nil)
	_ port.SalonRepository = (*memRepo)(nil)
	_ port.AdTx            = (*memTx)(nil)
)
