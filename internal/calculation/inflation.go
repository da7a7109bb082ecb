package calculation

import (
	"errors"
	"fmt"
)

// Accepted inflation range, in whole percent per year.
const (
	MinInflationPercent = 3
	MaxInflationPercent = 10
)

// ErrInflationOutOfRange is returned by ValidateInflation.
var ErrInflationOutOfRange = errors.New("inflation rate out of range")

// ValidateInflation enforces the accepted range at input boundaries (CLI flags,
// HTTP query). Project itself accepts any value.
func ValidateInflation(percent int) error {
	if percent < MinInflationPercent || percent > MaxInflationPercent {
		return fmt.Errorf("%w: %d%% (must be between %d%% and %d%%)",
			ErrInflationOutOfRange, percent, MinInflationPercent, MaxInflationPercent)
	}
	return nil
}

// ClampInflation pulls percent into the accepted range, the way a slider would.
func ClampInflation(percent int) int {
	return min(max(percent, MinInflationPercent), MaxInflationPercent)
}
