package port

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"salon-ads/internal/core/domain"
)

// StatusEngine owns the derived status of ads. It is the single source of
// truth for whether an ad is currently active.
type StatusEngine interface {
	// DeriveAndApply recomputes an ad's status from its campaign and
	// persists it when it changed. Paused ads are left untouched.
	DeriveAndApply(ctx context.Context, adID int64) (*domain.Ad, error)
	// SweepAll derives every ad's status. It is run periodically to catch
	// campaign boundaries that no write crossed.
	SweepAll(ctx context.Context) (SweepResult, error)
	// SetManual pins a status chosen by an operator, campaign aside.
	SetManual(ctx context.Context, adID int64, status domain.AdStatus) (*domain.Ad, error)
}

// SweepResult counts what a sweep did.
type SweepResult struct {
	Processed int
	Changed   int
	Duration  time.Duration
}

// TargetingResolver answers which ads a display may show.
type TargetingResolver interface {
	Resolve(ctx context.Context, q ResolveQuery) ([]ServableAd, error)
	// CountTargetedSalons is a reporting figure and does not affect serving.
	CountTargetedSalons(ctx context.Context, adID int64) (int, error)
}

// ResolveQuery selects ads for a salon's display. A nil Hour disables the
// schedule filter.
type ResolveQuery struct {
	SalonID int64
	Hour    *int
}

// ServableAd is one resolver result. Hours is filled only when the query
// carried no hour filter.
type ServableAd struct {
	AdID  int64           `json:"ad_id"`
	Title string          `json:"title"`
	Kind  domain.AdKind   `json:"kind"`
	Media []ServableMedia `json:"media"`
	Hours []int           `json:"schedules,omitempty"`
}

// ServableMedia is the display-facing view of a media reference.
type ServableMedia struct {
	URL       string           `json:"url"`
	Kind      domain.MediaKind `json:"type"`
	Duration  int              `json:"duration"`
	SizeClass domain.SizeClass `json:"size_class"`
	IsPrimary bool             `json:"is_primary"`
}

// AdUseCase is the mutation orchestrator: it applies an ad and its owned
// collections as one atomic unit and re-derives status after commit.
type AdUseCase interface {
	Create(ctx context.Context, actor domain.Actor, in CreateAdInput) (*domain.AdDetails, error)
	Update(ctx context.Context, actor domain.Actor, adID int64, in UpdateAdInput) (*domain.AdDetails, error)
	Delete(ctx context.Context, actor domain.Actor, adID int64) error
	Get(ctx context.Context, adID int64) (*domain.AdDetails, error)
	SetStatus(ctx context.Context, actor domain.Actor, adID int64, status domain.AdStatus) (*domain.Ad, error)
}

// CampaignInput is the campaign payload of a create or update.
type CampaignInput struct {
	Budget      decimal.Decimal  `json:"budget"`
	DailyBudget *decimal.Decimal `json:"daily_budget"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
}

// TargetInput is one targeting entry as sent by clients.
type TargetInput struct {
	Kind     domain.TargetKind `json:"target_type"`
	City     *string           `json:"city"`
	District *string           `json:"district"`
}

// MediaInput either keeps an existing reference (URL) or adds a new
// upload. Exactly one of URL and Upload is set.
type MediaInput struct {
	URL       string
	Upload    *MediaUpload
	SizeClass domain.SizeClass
	IsPrimary bool
}

// MediaUpload is a file received by the transport layer.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// CreateAdInput describes a new ad. Nil collections are simply left empty.
type CreateAdInput struct {
	Title    string
	Kind     domain.AdKind
	SalonID  *int64
	Status   domain.AdStatus // empty means inactive
	Hours    []int
	Targets  []TargetInput
	Media    []MediaInput
	Campaign *CampaignInput
}

// UpdateAdInput patches an ad. Each collection is replaced only when
// present; present-but-empty clears it. A present campaign holding nil
// deletes the campaign.
type UpdateAdInput struct {
	Title    Optional[string]
	Hours    Optional[[]int]
	Targets  Optional[[]TargetInput]
	Media    Optional[[]MediaInput]
	Campaign Optional[*CampaignInput]
}
