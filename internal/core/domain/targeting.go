package domain

import (
	"fmt"
	"strings"
)

// TargetKind selects how a target location matches salons.
type TargetKind string

const (
	TargetNationwide     TargetKind = "nationwide"
	TargetAdministrative TargetKind = "administrative"
)

// TargetLocation describes where an ad may be shown. Administrative
// targets name a city and optionally a district; a nil district covers
// the whole city.
type TargetLocation struct {
	ID       int64
	AdID     int64
	Kind     TargetKind
	City     *string
	District *string
}

// Nationwide returns a target matching every salon.
func Nationwide() TargetLocation {
	return TargetLocation{Kind: TargetNationwide}
}

// Administrative returns a city target, narrowed to a district when one is given.
func Administrative(city string, district *string) TargetLocation {
	return TargetLocation{Kind: TargetAdministrative, City: &city, District: district}
}

// Validate checks the shape of the target.
func (t *TargetLocation) Validate() error {
	switch t.Kind {
	case TargetNationwide:
		if t.City != nil || t.District != nil {
			return fmt.Errorf("%w: nationwide target cannot carry city or district", ErrInvalidArgument)
		}
	case TargetAdministrative:
		if t.City == nil || strings.TrimSpace(*t.City) == "" {
			return fmt.Errorf("%w: administrative target requires a city", ErrInvalidArgument)
		}
		if t.District != nil && strings.TrimSpace(*t.District) == "" {
			return fmt.Errorf("%w: district must not be blank", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown target kind %q", ErrInvalidArgument, t.Kind)
	}
	return nil
}

// Matches reports whether a salon at loc falls inside the target.
func (t *TargetLocation) Matches(loc SalonLocation) bool {
	switch t.Kind {
	case TargetNationwide:
		return true
	case TargetAdministrative:
		if t.City == nil || *t.City != loc.City {
			return false
		}
		return t.District == nil || *t.District == loc.District
	default:
		return false
	}
}

// MatchesAny reports whether at least one target covers loc. An empty
// target set matches nothing.
func MatchesAny(targets []TargetLocation, loc SalonLocation) bool {
	for i := range targets {
		if targets[i].Matches(loc) {
			return true
		}
	}
	return false
}
