package scale

import (
	"math"
	"strconv"
)

// Tick increment ladder thresholds (1 → 2 → 5 → 10 per decade).
const (
	e10 = 7.0710678118654755 // √50
	e5  = 3.1622776601683795 // √10
	e2  = 1.4142135623730951 // √2
)

// niceIterationCap bounds the floor/ceil loop in niceLinear; the loop
// converges in two passes in practice, the cap only guards pathological
// floating-point inputs.
const niceIterationCap = 10

// tickIncrement returns the tick step for splitting [start,stop] into
// about count intervals, snapped to the 1/2/5 decimal ladder.
// A positive return value is the step itself; a negative return value
// encodes a sub-unit step as its negated reciprocal (step = -1/r), so
// tick positions stay exact multiples of powers of ten.
func tickIncrement(start, stop float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	step := (stop - start) / float64(count)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}

	return -math.Pow(10, -power) / factor
}

// niceLinear rounds lo outward down and hi outward up to the tick
// increment for count ticks, iterating until the increment stabilizes.
// Requires lo < hi (callers guarantee it).
func niceLinear(lo, hi float64, count int) (float64, float64) {
	var prestep float64
	for i := 0; i < niceIterationCap; i++ {
		step := tickIncrement(lo, hi, count)
		if step == prestep || step == 0 || math.IsInf(step, 0) {
			break
		}
		if step > 0 {
			lo = math.Floor(lo/step) * step
			hi = math.Ceil(hi/step) * step
		} else {
			lo = math.Ceil(lo*step) / step
			hi = math.Floor(hi*step) / step
		}
		prestep = step
	}

	return lo, hi
}

// linearTicks returns about count values spanning [start,stop] at the
// 1/2/5 tick increment, ordered in the direction of the arguments.
func linearTicks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	rev := stop < start
	if rev {
		start, stop = stop, start
	}
	step := tickIncrement(start, stop, count)
	if step == 0 || math.IsInf(step, 0) {
		return nil
	}

	var ticks []float64
	if step > 0 {
		i0 := math.Round(start / step)
		i1 := math.Round(stop / step)
		if i0*step < start {
			i0++
		}
		if i1*step > stop {
			i1--
		}
		n := int(i1 - i0 + 1)
		if n < 0 {
			n = 0
		}
		ticks = make([]float64, n)
		for i := 0; i < n; i++ {
			ticks[i] = (i0 + float64(i)) * step
		}
	} else {
		inv := -step
		i0 := math.Round(start * inv)
		i1 := math.Round(stop * inv)
		if i0/inv < start {
			i0++
		}
		if i1/inv > stop {
			i1--
		}
		n := int(i1 - i0 + 1)
		if n < 0 {
			n = 0
		}
		ticks = make([]float64, n)
		for i := 0; i < n; i++ {
			ticks[i] = (i0 + float64(i)) / inv
		}
	}
	if rev {
		reverseFloats(ticks)
	}

	return ticks
}

// linearTickFormat renders values with exactly the decimals the tick
// increment needs: integer steps print without a fraction, sub-unit
// steps print the matching number of decimals.
func linearTickFormat(d0, d1 float64, count int) func(float64) string {
	lo, hi := d0, d1
	if lo > hi {
		lo, hi = hi, lo
	}
	step := tickIncrement(lo, hi, count)
	if step == 0 || math.IsInf(step, 0) {
		return formatCompact
	}
	prec := 0
	if step < 0 {
		prec = int(math.Ceil(math.Log10(-step)))
	}

	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
}

// formatCompact renders a value with the shortest exact decimal form.
func formatCompact(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
