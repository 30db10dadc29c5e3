package axis

import (
	"fmt"
	"math"
)

// continuousValues flattens the value source for a continuous axis:
// stack boundaries when the axis is stacked, extracted raw values
// otherwise. NaN values are dropped here so a single bad datum cannot
// poison the extent.
func continuousValues[T any](series []Series[T], value func(T) float64, stacked bool) []float64 {
	var out []float64
	for _, s := range series {
		for _, d := range s {
			if stacked {
				for _, v := range d.StackData {
					if !math.IsNaN(v) {
						out = append(out, v)
					}
				}
				continue
			}
			if v := value(d.Original); !math.IsNaN(v) {
				out = append(out, v)
			}
		}
	}

	return out
}

// resolveContinuousDomain applies the override rules to the natural
// extent of values and reports whether nice rounding still applies.
//
// Rule order is load-bearing:
//  1. natural extent (undefined for an empty source)
//  2. soft Min/Max widen only; setting either disables nice
//  3. MinDomainLength (linear family only) widens symmetrically around
//     the midpoint of the current bounds
//  4. HardMin/HardMax replace outright — applied strictly after the
//     soft bounds so they win regardless of option order — and
//     disable nice
//  5. any bound still undefined → ErrInvalidDomain
func resolveContinuousDomain(values []float64, min, max, hardMin, hardMax *float64, minDomainLength float64, linear bool) (minV, maxV float64, nice bool, err error) {
	var minDef, maxDef bool
	for _, v := range values {
		if !minDef || v < minV {
			minV = v
			minDef = true
		}
		if !maxDef || v > maxV {
			maxV = v
			maxDef = true
		}
	}

	nice = true
	if min != nil {
		if minDef {
			minV = math.Min(minV, *min)
		}
		nice = false
	}
	if max != nil {
		if maxDef {
			maxV = math.Max(maxV, *max)
		}
		nice = false
	}

	if linear && minDomainLength > 0 && minDef && maxDef {
		mid := (minV + maxV) / 2
		maxV = math.Max(maxV, mid+minDomainLength/2)
		minV = math.Min(minV, mid-minDomainLength/2)
	}

	if hardMin != nil {
		minV = *hardMin
		minDef = true
		nice = false
	}
	if hardMax != nil {
		maxV = *hardMax
		maxDef = true
		nice = false
	}

	if !minDef || !maxDef {
		return 0, 0, false, fmt.Errorf("%w: %d usable values, min=%s max=%s hardMin=%s hardMax=%s",
			ErrInvalidDomain, len(values),
			boundString(min), boundString(max), boundString(hardMin), boundString(hardMax))
	}

	return minV, maxV, nice, nil
}

// boundString renders an optional bound for diagnostics.
func boundString(v *float64) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprintf("%g", *v)
}

// bandCategories collects the distinct extracted categories across all
// series, in first-occurrence order.
func bandCategories[T any](series []Series[T], category func(T) string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, s := range series {
		for _, d := range s {
			c := category(d.Original)
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}
