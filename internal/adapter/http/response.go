package httpadapter

import (
	"time"

	"github.com/shopspring/decimal"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
)

type adResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Kind      domain.AdKind     `json:"ad_type"`
	SalonID   *int64            `json:"salon_id,omitempty"`
	Status    domain.AdStatus   `json:"status"`
	Schedules []int             `json:"schedules"`
	Targets   []targetResponse  `json:"targets"`
	Media     []mediaResponse   `json:"media"`
	Campaign  *campaignResponse `json:"campaign"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type targetResponse struct {
	Kind     domain.TargetKind `json:"target_type"`
	City     *string           `json:"city,omitempty"`
	District *string           `json:"district,omitempty"`
}

type mediaResponse struct {
	URL       string           `json:"url"`
	Kind      domain.MediaKind `json:"type"`
	SizeClass domain.SizeClass `json:"size_class"`
	Duration  int              `json:"duration"`
	IsPrimary bool             `json:"is_primary"`
}

type campaignResponse struct {
	Budget      decimal.Decimal  `json:"budget"`
	DailyBudget *decimal.Decimal `json:"daily_budget,omitempty"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
}

type statusResponse struct {
	ID     int64           `json:"id"`
	Status domain.AdStatus `json:"status"`
}

type reachResponse struct {
	AdID       int64 `json:"ad_id"`
	SalonCount int   `json:"salon_count"`
}

type salonAdsResponse struct {
	SalonID int64             `json:"salon_id"`
	Hour    *int              `json:"hour,omitempty"`
	Ads     []port.ServableAd `json:"ads"`
}

func toAdResponse(d *domain.AdDetails) adResponse {
	resp := adResponse{
		ID:        d.Ad.ID,
		Title:     d.Ad.Title,
		Kind:      d.Ad.Kind,
		SalonID:   d.Ad.SalonID,
		Status:    d.Ad.Status,
		Schedules: d.Hours,
		Targets:   make([]targetResponse, 0, len(d.Targets)),
		Media:     make([]mediaResponse, 0, len(d.Media)),
		CreatedAt: d.Ad.CreatedAt,
		UpdatedAt: d.Ad.UpdatedAt,
	}
	if resp.Schedules == nil {
		resp.Schedules = []int{}
	}
	for _, t := range d.Targets {
		resp.Targets = append(resp.Targets, targetResponse{Kind: t.Kind, City: t.City, District: t.District})
	}
	for _, m := range d.Media {
		resp.Media = append(resp.Media, mediaResponse{
			URL:       m.URL,
			Kind:      m.Kind,
			SizeClass: m.SizeClass,
			Duration:  m.Duration,
			IsPrimary: m.IsPrimary,
		})
	}
	if c := d.Campaign; c != nil {
		resp.Campaign = &campaignResponse{
			Budget:      c.Budget,
			DailyBudget: c.DailyBudget,
			StartDate:   c.StartDate,
			EndDate:     c.EndDate,
		}
	}
	return resp
}
