package axis

import (
	"errors"
	"fmt"
)

// Sentinel errors for axis construction. Branch with errors.Is; Build
// wraps them with diagnostic context via %w.
var (
	// ErrInvalidPosition indicates Options.Position is missing or not one
	// of Top/Bottom/Left/Right. Position is required and has no default.
	ErrInvalidPosition = errors.New("axis: invalid or missing position")
	// ErrInvalidScaleType indicates Options.Scale is not a recognized
	// scale type.
	ErrInvalidScaleType = errors.New("axis: invalid or missing scale type")
	// ErrInvalidDomain indicates a continuous domain could not be
	// resolved: either bound is still undefined after every override
	// rule (typically an empty series with no hard bounds supplied).
	ErrInvalidDomain = errors.New("axis: invalid scale min/max")
	// ErrMissingValueFn indicates a continuous axis has no Value
	// extractor configured.
	ErrMissingValueFn = errors.New("axis: continuous axis requires a Value extractor")
	// ErrMissingCategoryFn indicates a band axis has no Category
	// extractor configured.
	ErrMissingCategoryFn = errors.New("axis: band axis requires a Category extractor")
)

// wrapOptionErr attaches the offending option field and raw value to a
// sentinel, preserving errors.Is semantics.
func wrapOptionErr(sentinel error, field string, raw int) error {
	return fmt.Errorf("%w (%s=%d)", sentinel, field, raw)
}
