package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is the budget and date window that gates whether an ad is
// sellable. An ad has at most one campaign.
type Campaign struct {
	ID          int64
	AdID        int64
	Budget      decimal.Decimal
	DailyBudget *decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Budgets are stored as NUMERIC(14,2).
const budgetScale = 2

var budgetLimit = decimal.New(1, 12)

// Validate enforces the budget and date rules. It runs before any write.
func (c *Campaign) Validate() error {
	if err := validateAmount("budget", c.Budget); err != nil {
		return err
	}
	if c.DailyBudget != nil {
		if err := validateAmount("daily budget", *c.DailyBudget); err != nil {
			return err
		}
		if c.DailyBudget.GreaterThan(c.Budget) {
			return fmt.Errorf("%w: daily budget cannot exceed budget", ErrInvalidArgument)
		}
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidArgument)
	}
	if !c.EndDate.After(c.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidArgument)
	}
	return nil
}

func validateAmount(name string, v decimal.Decimal) error {
	switch {
	case !v.IsPositive():
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidArgument, name)
	case v.Exponent() < -budgetScale && !v.Equal(v.Truncate(budgetScale)):
		return fmt.Errorf("%w: %s allows at most %d decimal places", ErrInvalidArgument, name, budgetScale)
	case v.GreaterThanOrEqual(budgetLimit):
		return fmt.Errorf("%w: %s must be less than %s", ErrInvalidArgument, name, budgetLimit)
	}
	return nil
}

// DeriveStatus returns the status implied by the campaign window at now.
// Both window bounds are inclusive.
func (c *Campaign) DeriveStatus(now time.Time) AdStatus {
	switch {
	case now.Before(c.StartDate):
		return AdStatusPending
	case now.After(c.EndDate):
		return AdStatusInactive
	default:
		return AdStatusActive
	}
}

// DeriveStatus computes the target status of an ad. Paused ads keep their
// status; ads without a campaign are inactive.
func DeriveStatus(current AdStatus, c *Campaign, now time.Time) AdStatus {
	if current == AdStatusPaused {
		return current
	}
	if c == nil {
		return AdStatusInactive
	}
	return c.DeriveStatus(now)
}
