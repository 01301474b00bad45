package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func resolvedIDs(ads []port.ServableAd) []int64 {
	ids := make([]int64, 0, len(ads))
	for _, a := range ads {
		ids = append(ids, a.AdID)
	}
	return ids
}

func activeAd(title string) domain.Ad {
	return domain.Ad{Title: title, Kind: domain.AdKindSponsor, Status: domain.AdStatusActive}
}

func newResolverFixture() (*memRepo, *Resolver) {
	repo := newMemRepo()
	repo.addSalon(1, domain.SalonApproved, "Seoul", "Gangnam")
	repo.addSalon(2, domain.SalonApproved, "Seoul", "Mapo")
	repo.addSalon(3, domain.SalonApproved, "Busan", "Haeundae")
	repo.addSalon(4, domain.SalonPending, "Seoul", "Gangnam")
	repo.salons[5] = fakeSalon{status: domain.SalonApproved}
	return repo, NewResolver(repo, repo, slog.New(slog.DiscardHandler))
}

func TestResolver_DistrictAndHour(t *testing.T) {
	repo, r := newResolverFixture()
	id := repo.seedAd(activeAd("gangnam"),
		nil, []domain.TargetLocation{domain.Administrative("Seoul", strp("Gangnam"))}, []int{13}, nil)

	got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: 1, Hour: intp(13)})
	require.NoError(t, err)
	assert.Equal(t, []int64{id}, resolvedIDs(got))
	assert.Nil(t, got[0].Hours)

	got, err = r.Resolve(context.Background(), port.ResolveQuery{SalonID: 1, Hour: intp(10)})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.Resolve(context.Background(), port.ResolveQuery{SalonID: 2, Hour: intp(13)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_NationwideWithoutSchedule(t *testing.T) {
	repo, r := newResolverFixture()
	id := repo.seedAd(activeAd("nationwide"), nil, []domain.TargetLocation{domain.Nationwide()}, nil, nil)

	for _, salon := range []int64{1, 2, 3} {
		got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: salon})
		require.NoError(t, err)
		assert.Equal(t, []int64{id}, resolvedIDs(got), "salon %d", salon)
	}

	got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: 1, Hour: intp(9)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_WholeCityMatchesEveryDistrict(t *testing.T) {
	repo, r := newResolverFixture()
	id := repo.seedAd(activeAd("seoul"), nil, []domain.TargetLocation{domain.Administrative("Seoul", nil)}, nil, nil)

	for _, salon := range []int64{1, 2} {
		got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: salon})
		require.NoError(t, err)
		assert.Equal(t, []int64{id}, resolvedIDs(got))
	}
	got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: 3})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_AnyTargetSuffices(t *testing.T) {
	repo, r := newResolverFixture()
	id := repo.seedAd(activeAd("union"), nil, []domain.TargetLocation{
		domain.Administrative("Seoul", strp("Gangnam")),
		domain.Administrative("Busan", nil),
	}, nil, nil)

	got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{id}, resolvedIDs(got))

	got, err = r.Resolve(context.Background(), port.ResolveQuery{SalonID: 2})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_OnlyActiveAds(t *testing.T) {
	repo, r := newResolverFixture()
	target := []domain.TargetLocation{domain.Nationwide()}
	for _, st := range []domain.AdStatus{domain.AdStatusPending, domain.AdStatusPaused, domain.AdStatusInactive} {
		repo.seedAd(domain.Ad{Title: string(st), Kind: domain.AdKindSponsor, Status: st}, nil, target, nil, nil)
	}
	repo.seedAd(activeAd("untargeted"), nil, nil, []int{9}, nil)

	got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: 1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_OutputCarriesSortedHoursAndMedia(t *testing.T) {
	repo, r := newResolverFixture()
	media := []domain.MediaRef{
		{URL: "https://cdn/v.mp4", Kind: domain.MediaVideo, SizeClass: domain.SizeMax, Duration: 30, IsPrimary: true},
		{URL: "https://cdn/i.png", Kind: domain.MediaImage, SizeClass: domain.SizeMin, Duration: 10, Position: 1},
	}
	repo.seedAd(activeAd("full"), nil, []domain.TargetLocation{domain.Nationwide()}, []int{18, 9, 13}, media)

	got, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{9, 13, 18}, got[0].Hours)
	require.Len(t, got[0].Media, 2)
	assert.Equal(t, port.ServableMedia{
		URL: "https://cdn/v.mp4", Kind: domain.MediaVideo, Duration: 30, SizeClass: domain.SizeMax, IsPrimary: true,
	}, got[0].Media[0])
}

func TestResolver_Errors(t *testing.T) {
	_, r := newResolverFixture()

	_, err := r.Resolve(context.Background(), port.ResolveQuery{SalonID: 99})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.Resolve(context.Background(), port.ResolveQuery{SalonID: 5})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.Resolve(context.Background(), port.ResolveQuery{SalonID: 1, Hour: intp(24)})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestResolver_CountTargetedSalons(t *testing.T) {
	repo, r := newResolverFixture()
	nationwide := repo.seedAd(activeAd("n"), nil, []domain.TargetLocation{domain.Nationwide()}, nil, nil)
	gangnam := repo.seedAd(activeAd("g"), nil, []domain.TargetLocation{domain.Administrative("Seoul", strp("Gangnam"))}, nil, nil)
	seoul := repo.seedAd(activeAd("s"), nil, []domain.TargetLocation{
		domain.Administrative("Seoul", nil),
		domain.Administrative("Seoul", strp("Gangnam")),
	}, nil, nil)
	none := repo.seedAd(activeAd("x"), nil, nil, nil, nil)

	tests := []struct {
		adID int64
		want int
	}{
		{nationwide, 4}, // approved salons 1, 2, 3 and the unlocated 5
		{gangnam, 1},    // pending salon 4 is not counted
		{seoul, 2},
		{none, 0},
	}
	for _, tt := range tests {
		n, err := r.CountTargetedSalons(context.Background(), tt.adID)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n, "ad %d", tt.adID)
	}

	_, err := r.CountTargetedSalons(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
