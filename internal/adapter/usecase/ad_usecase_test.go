package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
	"salon-ads/internal/core/port/mocks"
)

var (
	admin   = domain.Actor{UserID: 1, IsAdmin: true}
	owner   = domain.Actor{UserID: 7}
	visitor = domain.Actor{UserID: 8}
)

type fixture struct {
	repo     *memRepo
	engine   *StatusEngine
	storage  *mocks.MockObjectStorage
	prober   *mocks.MockMediaProber
	authz    *mocks.MockAuthorizer
	activity *mocks.MockActivityRecorder
	uc       *AdUseCase
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	f := &fixture{
		repo:     newMemRepo(),
		storage:  mocks.NewMockObjectStorage(t),
		prober:   mocks.NewMockMediaProber(t),
		authz:    mocks.NewMockAuthorizer(t),
		activity: mocks.NewMockActivityRecorder(t),
	}
	f.repo.addSalon(3, domain.SalonApproved, "Busan", "Haeundae")
	f.repo.addSalon(4, domain.SalonApproved, "Seoul", "Gangnam")
	f.activity.EXPECT().Record(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.DiscardHandler)
	f.engine = NewStatusEngine(f.repo, logger, 2).WithClock(func() time.Time { return now })
	f.uc = NewAdUseCase(Deps{
		Repo:     f.repo,
		Salons:   f.repo,
		Status:   f.engine,
		Authz:    f.authz,
		Storage:  f.storage,
		Prober:   f.prober,
		Activity: f.activity,
		Logger:   logger,
	})
	return f
}

func campaignInput(start, end time.Time) *port.CampaignInput {
	return &port.CampaignInput{Budget: decimal.NewFromInt(500000), StartDate: start, EndDate: end}
}

func salonAd(salonID int64) port.CreateAdInput {
	return port.CreateAdInput{Title: "Perm event", Kind: domain.AdKindSalon, SalonID: &salonID}
}

func upload(name, contentType, body string) *port.MediaUpload {
	return &port.MediaUpload{Filename: name, ContentType: contentType, Size: int64(len(body)), Body: strings.NewReader(body)}
}

func TestCreate_BusanRoundTrip(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	in := salonAd(3)
	in.Hours = []int{18, 9, 9}
	in.Targets = []port.TargetInput{{Kind: domain.TargetAdministrative, City: strp("Busan")}}
	in.Campaign = campaignInput(day(time.January, 1), day(time.January, 31))

	got, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)

	assert.Equal(t, domain.AdStatusActive, got.Ad.Status)
	assert.Equal(t, []int{9, 9, 18}, got.Hours)
	require.Len(t, got.Targets, 1)
	assert.Equal(t, "Busan", *got.Targets[0].City)
	assert.Nil(t, got.Targets[0].District)
	require.NotNil(t, got.Campaign)
	assert.True(t, got.Campaign.Budget.Equal(decimal.NewFromInt(500000)))

	again, err := f.uc.Get(context.Background(), got.Ad.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	served, err := NewResolver(f.repo, f.repo, slog.New(slog.DiscardHandler)).
		Resolve(context.Background(), port.ResolveQuery{SalonID: 3, Hour: intp(18)})
	require.NoError(t, err)
	assert.Equal(t, []int64{got.Ad.ID}, resolvedIDs(served))
}

func TestCreate_WithoutCampaignIsInactive(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	in := salonAd(3)
	in.Status = domain.AdStatusActive

	got, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusInactive, got.Ad.Status)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	salon := int64(3)
	start, end := day(time.January, 1), day(time.January, 31)
	tests := []struct {
		name string
		in   port.CreateAdInput
	}{
		{"blank title", port.CreateAdInput{Title: " ", Kind: domain.AdKindSponsor}},
		{"salon ad without salon", port.CreateAdInput{Title: "a", Kind: domain.AdKindSalon}},
		{"sponsor ad with salon", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor, SalonID: &salon}},
		{"unknown kind", port.CreateAdInput{Title: "a", Kind: "banner"}},
		{"unknown status", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor, Status: "archived"}},
		{"hour out of range", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor, Hours: []int{24}}},
		{"nationwide with city", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Targets: []port.TargetInput{{Kind: domain.TargetNationwide, City: strp("Seoul")}}}},
		{"administrative without city", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Targets: []port.TargetInput{{Kind: domain.TargetAdministrative, City: strp("  ")}}}},
		{"administrative with blank district", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Targets: []port.TargetInput{{Kind: domain.TargetAdministrative, City: strp("Seoul"), District: strp(" ")}}}},
		{"nationwide with blank city", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Targets: []port.TargetInput{{Kind: domain.TargetNationwide, City: strp("")}}}},
		{"zero budget", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Campaign: &port.CampaignInput{Budget: decimal.Zero, StartDate: start, EndDate: end}}},
		{"sub-cent budget", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Campaign: &port.CampaignInput{Budget: decimal.RequireFromString("0.004"), StartDate: start, EndDate: end}}},
		{"daily above total", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Campaign: &port.CampaignInput{Budget: decimal.NewFromInt(10), DailyBudget: ptr(decimal.NewFromInt(11)), StartDate: start, EndDate: end}}},
		{"end before start", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Campaign: &port.CampaignInput{Budget: decimal.NewFromInt(10), StartDate: end, EndDate: start}}},
		{"media without source", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Media: []port.MediaInput{{}}}},
		{"media with unsupported type", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Media: []port.MediaInput{{Upload: upload("a.txt", "text/plain", "x")}}}},
		{"media with unknown size class", port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor,
			Media: []port.MediaInput{{Upload: upload("a.png", "image/png", "x"), SizeClass: "huge"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, day(time.January, 15))

			_, err := f.uc.Create(context.Background(), admin, tt.in)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Zero(t, f.repo.txCount)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreate_UnknownSalon(t *testing.T) {
	f := newFixture(t, day(time.January, 15))

	_, err := f.uc.Create(context.Background(), admin, salonAd(77))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_Authorization(t *testing.T) {
	f := newFixture(t, day(time.January, 15))

	_, err := f.uc.Create(context.Background(), owner, port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor})
	require.ErrorIs(t, err, domain.ErrForbidden)

	f.authz.EXPECT().IsSalonOwner(mock.Anything, visitor.UserID, int64(3)).Return(false, nil).Once()
	_, err = f.uc.Create(context.Background(), visitor, salonAd(3))
	require.ErrorIs(t, err, domain.ErrForbidden)

	f.authz.EXPECT().IsSalonOwner(mock.Anything, owner.UserID, int64(3)).Return(true, nil).Once()
	_, err = f.uc.Create(context.Background(), owner, salonAd(3))
	require.NoError(t, err)
}

func TestUpdate_ReplaceSemantics(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	in := salonAd(4)
	in.Hours = []int{9, 13}
	in.Targets = []port.TargetInput{{Kind: domain.TargetAdministrative, City: strp("Seoul"), District: strp("Gangnam")}}
	created, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)
	id := created.Ad.ID

	got, err := f.uc.Update(context.Background(), admin, id, port.UpdateAdInput{Title: port.Some("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Ad.Title)
	assert.Equal(t, []int{9, 13}, got.Hours)
	assert.Len(t, got.Targets, 1)

	got, err = f.uc.Update(context.Background(), admin, id, port.UpdateAdInput{Hours: port.Some([]int{})})
	require.NoError(t, err)
	assert.Empty(t, got.Hours)
	assert.Len(t, got.Targets, 1)

	got, err = f.uc.Update(context.Background(), admin, id, port.UpdateAdInput{
		Targets: port.Some([]port.TargetInput{{Kind: "NATIONWIDE"}}),
		Hours:   port.Some([]int{20}),
	})
	require.NoError(t, err)
	require.Len(t, got.Targets, 1)
	assert.Equal(t, domain.TargetNationwide, got.Targets[0].Kind)
	assert.Equal(t, []int{20}, got.Hours)
}

func TestUpdate_CampaignLifecycle(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	in := salonAd(3)
	in.Campaign = campaignInput(day(time.January, 1), day(time.January, 31))
	created, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)
	require.Equal(t, domain.AdStatusActive, created.Ad.Status)
	id := created.Ad.ID

	got, err := f.uc.Update(context.Background(), admin, id, port.UpdateAdInput{
		Campaign: port.Some(campaignInput(day(time.February, 1), day(time.February, 28))),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusPending, got.Ad.Status)

	got, err = f.uc.Update(context.Background(), admin, id, port.UpdateAdInput{Campaign: port.Some[*port.CampaignInput](nil)})
	require.NoError(t, err)
	assert.Nil(t, got.Campaign)
	assert.Equal(t, domain.AdStatusInactive, got.Ad.Status)
}

func TestUpdate_InvalidCampaignLeavesAdUntouched(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	in := salonAd(3)
	in.Hours = []int{9}
	created, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)
	before := f.repo.txCount

	_, err = f.uc.Update(context.Background(), admin, created.Ad.ID, port.UpdateAdInput{
		Hours:    port.Some([]int{10}),
		Campaign: port.Some(&port.CampaignInput{Budget: decimal.NewFromInt(-1), StartDate: day(time.January, 1), EndDate: day(time.January, 2)}),
	})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, before, f.repo.txCount)

	got, err := f.uc.Get(context.Background(), created.Ad.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, got.Hours)
}

func TestUpdate_RollbackKeepsPreviousState(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	in := salonAd(3)
	in.Hours = []int{9}
	created, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)

	f.repo.failAfter = errors.New("serialization failure")
	_, err = f.uc.Update(context.Background(), admin, created.Ad.ID, port.UpdateAdInput{
		Title: port.Some("changed"),
		Hours: port.Some([]int{1, 2}),
	})
	require.Error(t, err)
	f.repo.failAfter = nil

	got, err := f.uc.Get(context.Background(), created.Ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "Perm event", got.Ad.Title)
	assert.Equal(t, []int{9}, got.Hours)
}

func TestUpdate_Authorization(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	created, err := f.uc.Create(context.Background(), admin, salonAd(3))
	require.NoError(t, err)

	f.authz.EXPECT().IsAdOwner(mock.Anything, visitor.UserID, created.Ad.ID).Return(false, nil).Once()
	_, err = f.uc.Update(context.Background(), visitor, created.Ad.ID, port.UpdateAdInput{Title: port.Some("x")})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Update(context.Background(), admin, 999, port.UpdateAdInput{Title: port.Some("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMedia_UploadKeepAndRemove(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	const (
		imgURL = "https://cdn/ads/salons/3/img.png"
		vidURL = "https://cdn/ads/salons/3/vid.mp4"
	)
	f.prober.EXPECT().ProbeDuration(mock.Anything, domain.MediaImage, mock.Anything).Return(10, nil).Once()
	f.prober.EXPECT().ProbeDuration(mock.Anything, domain.MediaVideo, mock.Anything).Return(31, nil).Once()
	f.storage.EXPECT().Upload(mock.Anything, "ads/salons/3", "img.png", "image/png", mock.Anything, int64(3)).Return(imgURL, nil).Once()
	f.storage.EXPECT().Upload(mock.Anything, "ads/salons/3", "vid.mp4", "video/mp4", mock.Anything, int64(3)).Return(vidURL, nil).Once()

	in := salonAd(3)
	in.Media = []port.MediaInput{
		{Upload: upload("img.png", "image/png", "png"), IsPrimary: true},
		{Upload: upload("vid.mp4", "", "mp4"), SizeClass: domain.SizeMin, IsPrimary: true},
	}
	created, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)
	require.Len(t, created.Media, 2)
	assert.Equal(t, domain.MediaRef{AdID: created.Ad.ID, URL: imgURL, Kind: domain.MediaImage, SizeClass: domain.SizeMax, Duration: 10, IsPrimary: true}, created.Media[0])
	assert.Equal(t, domain.SizeMin, created.Media[1].SizeClass)
	assert.Equal(t, 31, created.Media[1].Duration)
	assert.False(t, created.Media[1].IsPrimary)

	// Keeping only the video deletes the image object after commit; a
	// storage failure there does not fail the update.
	f.storage.EXPECT().Delete(mock.Anything, imgURL).Return(errors.New("s3 unavailable")).Once()
	got, err := f.uc.Update(context.Background(), admin, created.Ad.ID, port.UpdateAdInput{
		Media: port.Some([]port.MediaInput{{URL: vidURL, IsPrimary: true}}),
	})
	require.NoError(t, err)
	require.Len(t, got.Media, 1)
	assert.Equal(t, vidURL, got.Media[0].URL)
	assert.True(t, got.Media[0].IsPrimary)
	assert.Equal(t, domain.SizeMin, got.Media[0].SizeClass)

	f.storage.EXPECT().Delete(mock.Anything, vidURL).Return(nil).Once()
	got, err = f.uc.Update(context.Background(), admin, created.Ad.ID, port.UpdateAdInput{Media: port.Some([]port.MediaInput{})})
	require.NoError(t, err)
	assert.Empty(t, got.Media)
}

func TestMedia_ForeignURLDiscardsUploads(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	created, err := f.uc.Create(context.Background(), admin, salonAd(3))
	require.NoError(t, err)

	const newURL = "https://cdn/ads/salons/3/new.png"
	f.prober.EXPECT().ProbeDuration(mock.Anything, domain.MediaImage, mock.Anything).Return(10, nil).Once()
	f.storage.EXPECT().Upload(mock.Anything, "ads/salons/3", "new.png", "image/png", mock.Anything, int64(3)).Return(newURL, nil).Once()
	f.storage.EXPECT().Delete(mock.Anything, newURL).Return(nil).Once()

	_, err = f.uc.Update(context.Background(), admin, created.Ad.ID, port.UpdateAdInput{
		Media: port.Some([]port.MediaInput{
			{Upload: upload("new.png", "image/png", "png")},
			{URL: "https://elsewhere/x.png"},
		}),
	})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	got, err := f.uc.Get(context.Background(), created.Ad.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Media)
}

func TestCreate_FailedCommitDiscardsUploads(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	const url = "https://cdn/ads/sponsors/a.png"
	f.prober.EXPECT().ProbeDuration(mock.Anything, domain.MediaImage, mock.Anything).Return(10, nil).Once()
	f.storage.EXPECT().Upload(mock.Anything, "ads/sponsors", "a.png", "image/png", mock.Anything, int64(3)).Return(url, nil).Once()
	f.storage.EXPECT().Delete(mock.Anything, url).Return(nil).Once()
	f.repo.failAfter = errors.New("connection reset")

	_, err := f.uc.Create(context.Background(), admin, port.CreateAdInput{
		Title: "a", Kind: domain.AdKindSponsor,
		Media: []port.MediaInput{{Upload: upload("a.png", "image/png", "png")}},
	})
	require.Error(t, err)

	ids, err := f.repo.ListAdIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDelete_CascadesAndRemovesObjects(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	id := f.repo.seedAd(domain.Ad{Title: "a", Kind: domain.AdKindSponsor, Status: domain.AdStatusActive},
		januaryCampaign(), []domain.TargetLocation{domain.Nationwide()}, []int{9},
		[]domain.MediaRef{{URL: "https://cdn/a.png"}, {URL: "https://cdn/b.mp4"}})
	f.storage.EXPECT().Delete(mock.Anything, "https://cdn/a.png").Return(nil).Once()
	f.storage.EXPECT().Delete(mock.Anything, "https://cdn/b.mp4").Return(errors.New("gone")).Once()

	require.NoError(t, f.uc.Delete(context.Background(), admin, id))

	_, err := f.uc.Get(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, f.uc.Delete(context.Background(), admin, id), domain.ErrNotFound)
}

func TestDelete_SponsorRequiresAdmin(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	id := f.repo.seedAd(domain.Ad{Title: "a", Kind: domain.AdKindSponsor}, nil, nil, nil, nil)

	require.ErrorIs(t, f.uc.Delete(context.Background(), owner, id), domain.ErrForbidden)
}

func TestSetStatus_PauseSurvivesSweep(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	in := salonAd(3)
	in.Campaign = campaignInput(day(time.January, 1), day(time.January, 31))
	created, err := f.uc.Create(context.Background(), admin, in)
	require.NoError(t, err)

	f.authz.EXPECT().IsAdOwner(mock.Anything, owner.UserID, created.Ad.ID).Return(true, nil).Once()
	ad, err := f.uc.SetStatus(context.Background(), owner, created.Ad.ID, domain.AdStatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusPaused, ad.Status)

	_, err = f.engine.SweepAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusPaused, f.repo.status(created.Ad.ID))

	// A campaign write re-derives, but paused is kept.
	got, err := f.uc.Update(context.Background(), admin, created.Ad.ID, port.UpdateAdInput{
		Campaign: port.Some(campaignInput(day(time.January, 1), day(time.March, 1))),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusPaused, got.Ad.Status)
}

func TestCreate_DeriveFailureKeepsCommit(t *testing.T) {
	repo := newMemRepo()
	engine := mocks.NewMockStatusEngine(t)
	engine.EXPECT().DeriveAndApply(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
	uc := NewAdUseCase(Deps{
		Repo:    repo,
		Salons:  repo,
		Status:  engine,
		Storage: mocks.NewMockObjectStorage(t),
		Prober:  mocks.NewMockMediaProber(t),
		Logger:  slog.New(slog.DiscardHandler),
	})

	got, err := uc.Create(context.Background(), admin, port.CreateAdInput{
		Title: "a", Kind: domain.AdKindSponsor,
		Campaign: campaignInput(day(time.January, 1), day(time.January, 31)),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusInactive, got.Ad.Status)
	assert.NotNil(t, got.Campaign)
}

func TestCreate_RecordsActivity(t *testing.T) {
	repo := newMemRepo()
	activity := mocks.NewMockActivityRecorder(t)
	activity.EXPECT().Record(mock.Anything, admin.UserID, EventAdCreated, mock.MatchedBy(func(d map[string]any) bool {
		return d["kind"] == "sponsor" && d["title"] == "a"
	})).Return(errors.New("redis down")).Once()
	uc := NewAdUseCase(Deps{
		Repo:     repo,
		Salons:   repo,
		Status:   NewStatusEngine(repo, slog.New(slog.DiscardHandler), 1),
		Storage:  mocks.NewMockObjectStorage(t),
		Prober:   mocks.NewMockMediaProber(t),
		Activity: activity,
		Logger:   slog.New(slog.DiscardHandler),
	})

	_, err := uc.Create(context.Background(), admin, port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor})
	require.NoError(t, err)
}

func TestCreate_SlowActivityIsBounded(t *testing.T) {
	repo := newMemRepo()
	activity := mocks.NewMockActivityRecorder(t)
	activity.EXPECT().Record(mock.Anything, admin.UserID, EventAdCreated, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int64, _ string, _ map[string]any) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return ctx.Err()
		}).Once()
	uc := NewAdUseCase(Deps{
		Repo:     repo,
		Salons:   repo,
		Status:   NewStatusEngine(repo, slog.New(slog.DiscardHandler), 1),
		Storage:  mocks.NewMockObjectStorage(t),
		Prober:   mocks.NewMockMediaProber(t),
		Activity: activity,

		ActivityTimeout: 20 * time.Millisecond,
		Logger:          slog.New(slog.DiscardHandler),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	started := time.Now()
	got, err := uc.Create(ctx, admin, port.CreateAdInput{Title: "a", Kind: domain.AdKindSponsor})
	require.NoError(t, err)
	assert.NotZero(t, got.Ad.ID)
	assert.Less(t, time.Since(started), time.Second)
}

func TestUpdate_ConcurrentCampaignWritesConverge(t *testing.T) {
	f := newFixture(t, day(time.January, 15))
	created, err := f.uc.Create(context.Background(), admin, salonAd(3))
	require.NoError(t, err)
	id := created.Ad.ID

	windows := []*port.CampaignInput{
		campaignInput(day(time.January, 1), day(time.January, 31)),
		campaignInput(day(time.February, 1), day(time.February, 28)),
		nil,
	}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Update(context.Background(), admin, id, port.UpdateAdInput{Campaign: port.Some(windows[i%len(windows)])})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := f.uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.DeriveStatus(domain.AdStatusInactive, got.Campaign, day(time.January, 15)), got.Ad.Status)
}
