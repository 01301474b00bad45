package port

import (
	"context"

	"salon-ads/internal/core/domain"
)

// AdRepository is the persistence port for ads and the collections they
// own. Reads outside InTx observe committed data only. Lookups return
// (nil, nil) when the row does not exist.
type AdRepository interface {
	// InTx runs fn in a single transaction. A non-nil error from fn rolls
	// everything back; otherwise the transaction is committed.
	InTx(ctx context.Context, fn func(tx AdTx) error) error

	// GetDetails loads an ad with its campaign, targets, hours and media.
	GetDetails(ctx context.Context, adID int64) (*domain.AdDetails, error)
	// ListAdIDs returns the ids of every ad.
	ListAdIDs(ctx context.Context) ([]int64, error)
	// ListActiveForCity returns active ads carrying a nationwide target or
	// an administrative target in city, fully loaded. Exact matching is
	// left to the caller.
	ListActiveForCity(ctx context.Context, city string) ([]domain.AdDetails, error)
}

// AdTx is the transaction-scoped view of the repository. Writes are
// visible to other callers only after the enclosing InTx commits.
type AdTx interface {
	// LockAd reads an ad and holds its row lock until the transaction ends.
	LockAd(ctx context.Context, adID int64) (*domain.Ad, error)
	InsertAd(ctx context.Context, ad *domain.Ad) error
	UpdateAdTitle(ctx context.Context, adID int64, title string) error
	SetAdStatus(ctx context.Context, adID int64, status domain.AdStatus) error
	DeleteAd(ctx context.Context, adID int64) error

	GetCampaign(ctx context.Context, adID int64) (*domain.Campaign, error)
	// UpsertCampaign updates the ad's campaign in place or creates it.
	UpsertCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign reports whether a campaign existed.
	DeleteCampaign(ctx context.Context, adID int64) (bool, error)

	ReplaceSchedules(ctx context.Context, adID int64, hours []int) error
	ReplaceTargets(ctx context.Context, adID int64, targets []domain.TargetLocation) error
	ListMedia(ctx context.Context, adID int64) ([]domain.MediaRef, error)
	ReplaceMedia(ctx context.Context, adID int64, refs []domain.MediaRef) error
}

// SalonRepository exposes the salon data the targeting core needs.
type SalonRepository interface {
	Exists(ctx context.Context, salonID int64) (bool, error)
	GetLocation(ctx context.Context, salonID int64) (*domain.SalonLocation, error)
	// CountApprovedMatching counts approved salons covered by any target.
	CountApprovedMatching(ctx context.Context, targets []domain.TargetLocation) (int, error)
}
