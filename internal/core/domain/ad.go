package domain

import (
	"fmt"
	"strings"
	"time"
)

// AdKind distinguishes sponsor ads from ads owned by a salon.
type AdKind string

const (
	AdKindSponsor AdKind = "sponsor"
	AdKindSalon   AdKind = "salon"
)

// AdStatus is the serving status of an ad.
type AdStatus string

const (
	AdStatusPending  AdStatus = "pending"
	AdStatusActive   AdStatus = "active"
	AdStatusPaused   AdStatus = "paused"
	AdStatusInactive AdStatus = "inactive"
)

// ParseAdStatus validates a textual status.
func ParseAdStatus(s string) (AdStatus, error) {
	switch st := AdStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case AdStatusPending, AdStatusActive, AdStatusPaused, AdStatusInactive:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown ad status %q", ErrInvalidArgument, s)
	}
}

// Ad is the unit of advertising content. Status is derived from the
// campaign by the status engine unless an operator pinned it to paused.
type Ad struct {
	ID        int64
	Title     string
	Kind      AdKind
	SalonID   *int64 // set only for salon ads
	Status    AdStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the kind/salon invariant and the title.
func (a *Ad) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	switch a.Kind {
	case AdKindSalon:
		if a.SalonID == nil {
			return fmt.Errorf("%w: salon ad requires a salon", ErrInvalidArgument)
		}
	case AdKindSponsor:
		if a.SalonID != nil {
			return fmt.Errorf("%w: sponsor ad cannot belong to a salon", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown ad kind %q", ErrInvalidArgument, a.Kind)
	}
	return nil
}

// AdDetails is an ad together with every collection it owns.
type AdDetails struct {
	Ad       Ad
	Campaign *Campaign
	Targets  []TargetLocation
	Hours    []int // ascending
	Media    []MediaRef
}
