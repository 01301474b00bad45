package domain

import (
	"fmt"
	"slices"
)

// ValidateHour checks that h is an hour of day.
func ValidateHour(h int) error {
	if h < 0 || h > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidArgument, h)
	}
	return nil
}

// NormalizeHours validates hours and returns them sorted. Duplicates are
// kept; they are redundant but harmless.
func NormalizeHours(hours []int) ([]int, error) {
	out := make([]int, 0, len(hours))
	for _, h := range hours {
		if err := ValidateHour(h); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	slices.Sort(out)
	return out, nil
}

