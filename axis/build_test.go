package axis_test

import (
	"math"
	"testing"
	"time"

	"github.com/ryadav96/react-charts/axis"
	"github.com/ryadav96/react-charts/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point is the datum payload used across the axis tests.
type point struct {
	t time.Time
	v float64
	c string
}

// numberSeries wraps plain values into a single series.
func numberSeries(values ...float64) []axis.Series[point] {
	s := make(axis.Series[point], len(values))
	for i, v := range values {
		s[i] = axis.Datum[point]{Original: point{v: v}}
	}
	return []axis.Series[point]{s}
}

// linearOptions is the common bottom/linear starting point.
func linearOptions() axis.Options[point] {
	opts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleLinear)
	opts.Value = func(p point) float64 { return p.v }
	return opts
}

var (
	testGrid = axis.Grid{Width: 100, Height: 200}
	canvasW  = 120.0
	canvasH  = 240.0
)

// TestBuild_RequiresPosition rejects the zero and out-of-range
// positions.
func TestBuild_RequiresPosition(t *testing.T) {
	opts := linearOptions()
	opts.Position = 0

	_, err := axis.Build(false, opts, numberSeries(1), testGrid, canvasW, canvasH)
	assert.ErrorIs(t, err, axis.ErrInvalidPosition)

	opts.Position = axis.Position(99)
	_, err = axis.Build(false, opts, numberSeries(1), testGrid, canvasW, canvasH)
	assert.ErrorIs(t, err, axis.ErrInvalidPosition)
}

// TestBuild_RequiresScaleType rejects unrecognized scale types.
func TestBuild_RequiresScaleType(t *testing.T) {
	opts := linearOptions()
	opts.Scale = axis.ScaleType(42)

	_, err := axis.Build(false, opts, numberSeries(1), testGrid, canvasW, canvasH)
	assert.ErrorIs(t, err, axis.ErrInvalidScaleType)
}

// TestBuild_RequiresExtractors verifies continuous axes demand Value
// and band axes demand Category.
func TestBuild_RequiresExtractors(t *testing.T) {
	opts := linearOptions()
	opts.Value = nil
	_, err := axis.Build(false, opts, numberSeries(1), testGrid, canvasW, canvasH)
	assert.ErrorIs(t, err, axis.ErrMissingValueFn)

	bopts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleBand)
	_, err = axis.Build(false, bopts, numberSeries(1), testGrid, canvasW, canvasH)
	assert.ErrorIs(t, err, axis.ErrMissingCategoryFn)
}

// TestBuild_LinearDataDriven is end-to-end scenario A: a fully
// data-driven linear axis resolves to the data extent (already nice
// here) over the grid range.
func TestBuild_LinearDataDriven(t *testing.T) {
	ax, err := axis.Build(false, linearOptions(), numberSeries(10, 20, 30), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.Equal(t, axis.FamilyLinear, ax.Family)
	assert.False(t, ax.Vertical)
	assert.Equal(t, [2]float64{0, 100}, ax.Range)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 10.0, d0)
	assert.Equal(t, 30.0, d1)
	assert.Equal(t, 50.0, ax.Scale.Scale(20))
}

// TestBuild_AutoNiceRounding confirms a data-driven domain is rounded
// outward when no bounds are overridden.
func TestBuild_AutoNiceRounding(t *testing.T) {
	ax, err := axis.Build(false, linearOptions(), numberSeries(0.13, 9.87), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 10.0, d1)
}

// TestBuild_SoftBoundsWidenOnly verifies Min/Max widen the extent,
// never shrink it, and switch nice rounding off.
func TestBuild_SoftBoundsWidenOnly(t *testing.T) {
	// Widening: the override is below the data minimum.
	opts := linearOptions()
	opts.Min = axis.Float(5)
	ax, err := axis.Build(false, opts, numberSeries(10, 28.7), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 5.0, d0, "soft min widens downward")
	assert.Equal(t, 28.7, d1, "nice is disabled, data max survives un-rounded")

	// Non-widening: the override sits inside the data extent.
	opts = linearOptions()
	opts.Min = axis.Float(15)
	ax, err = axis.Build(false, opts, numberSeries(10, 28.7), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, _ = ax.Scale.Domain()
	assert.Equal(t, 10.0, d0, "soft min never shrinks the extent")

	// Symmetric rule for Max.
	opts = linearOptions()
	opts.Max = axis.Float(100)
	ax, err = axis.Build(false, opts, numberSeries(10, 30), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	_, d1 = ax.Scale.Domain()
	assert.Equal(t, 100.0, d1, "soft max widens upward")
}

// TestBuild_HardBounds is end-to-end scenario B: hard bounds replace
// the extent exactly and disable nice rounding.
func TestBuild_HardBounds(t *testing.T) {
	opts := linearOptions()
	opts.HardMin = axis.Float(0)
	opts.HardMax = axis.Float(50)

	ax, err := axis.Build(false, opts, numberSeries(10, 20, 30), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 50.0, d1)
}

// TestBuild_HardBoundsWinOverSoft applies hard bounds strictly after
// soft bounds, so they win regardless of option ordering.
func TestBuild_HardBoundsWinOverSoft(t *testing.T) {
	opts := linearOptions()
	opts.Min = axis.Float(-1000)
	opts.HardMin = axis.Float(0)

	ax, err := axis.Build(false, opts, numberSeries(10, 30), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, _ := ax.Scale.Domain()
	assert.Equal(t, 0.0, d0)
}

// TestBuild_MinDomainLength widens the span symmetrically around the
// midpoint of the bounds and never narrows a wide-enough domain.
func TestBuild_MinDomainLength(t *testing.T) {
	opts := linearOptions()
	opts.MinDomainLength = 40

	ax, err := axis.Build(false, opts, numberSeries(10, 20), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, -5.0, d0, "centered on midpoint 15, half-length 20 down")
	assert.Equal(t, 35.0, d1, "centered on midpoint 15, half-length 20 up")
	assert.GreaterOrEqual(t, d1-d0, 40.0)

	// Already wide enough: unchanged.
	ax, err = axis.Build(false, opts, numberSeries(0, 100), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 = ax.Scale.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 100.0, d1)
}

// TestBuild_MinDomainLengthAppliesToLog widens a log-family domain the
// same way it widens a linear one.
func TestBuild_MinDomainLengthAppliesToLog(t *testing.T) {
	opts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleLog)
	opts.Value = func(p point) float64 { return p.v }
	// No-op soft bound: disables nice without moving the extent, so the
	// resolved bounds are directly observable.
	opts.Min = axis.Float(100)
	opts.MinDomainLength = 100

	ax, err := axis.Build(false, opts, numberSeries(100, 120), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 60.0, d0, "centered on midpoint 110, half-length 50 down")
	assert.Equal(t, 160.0, d1, "centered on midpoint 110, half-length 50 up")
}

// TestBuild_EmptySeriesFails is end-to-end scenario E.
func TestBuild_EmptySeriesFails(t *testing.T) {
	_, err := axis.Build(false, linearOptions(), nil, testGrid, canvasW, canvasH)
	assert.ErrorIs(t, err, axis.ErrInvalidDomain)
}

// TestBuild_HardBoundsRescueEmptySeries lets callers chart an empty
// dataset by pinning both bounds.
func TestBuild_HardBoundsRescueEmptySeries(t *testing.T) {
	opts := linearOptions()
	opts.HardMin = axis.Float(0)
	opts.HardMax = axis.Float(1)

	ax, err := axis.Build(false, opts, nil, testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 1.0, d1)
}

// TestBuild_SkipsNaNValues keeps one bad datum from poisoning the
// extent.
func TestBuild_SkipsNaNValues(t *testing.T) {
	ax, err := axis.Build(false, linearOptions(), numberSeries(math.NaN(), 10, 30), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 10.0, d0)
	assert.Equal(t, 30.0, d1)
}

// TestBuild_InvertReversesDomain checks inversion and that applying it
// twice restores the original order.
func TestBuild_InvertReversesDomain(t *testing.T) {
	plain, err := axis.Build(false, linearOptions(), numberSeries(10, 30), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	opts := linearOptions()
	opts.Invert = true
	flipped, err := axis.Build(false, opts, numberSeries(10, 30), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	p0, p1 := plain.Scale.Domain()
	f0, f1 := flipped.Scale.Domain()
	assert.Equal(t, p0, f1, "inversion swaps the endpoints")
	assert.Equal(t, p1, f0)
	assert.Equal(t, plain.Range, flipped.Range, "the range is never reversed")
}

// TestBuild_VerticalRanges run high→low so domain values grow upward
// on screen.
func TestBuild_VerticalRanges(t *testing.T) {
	opts := linearOptions()
	opts.Position = axis.PositionLeft

	ax, err := axis.Build(false, opts, numberSeries(0, 10), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.True(t, ax.Vertical)
	assert.Equal(t, [2]float64{200, 0}, ax.Range)
	assert.Equal(t, [2]float64{240, 0}, ax.OuterRange)
	assert.Equal(t, 200.0, ax.Scale.Scale(0), "domain minimum renders at the bottom")
	assert.Equal(t, 0.0, ax.Scale.Scale(10), "domain maximum renders at the top")
}

// TestBuild_OuterScaleSharesDomain gives the outer scale the grid
// scale's domain over the canvas range.
func TestBuild_OuterScaleSharesDomain(t *testing.T) {
	ax, err := axis.Build(false, linearOptions(), numberSeries(0.13, 9.87), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	gd0, gd1 := ax.Scale.Domain()
	od0, od1 := ax.OuterScale.Domain()
	assert.Equal(t, gd0, od0, "outer scale shares the (niced) domain")
	assert.Equal(t, gd1, od1)

	r0, r1 := ax.OuterScale.Range()
	assert.Equal(t, 0.0, r0)
	assert.Equal(t, 120.0, r1)
}

// TestBuild_StackedUsesStackBoundaries resolves the domain from the
// precomputed cumulative stack values, not the raw datum values.
func TestBuild_StackedUsesStackBoundaries(t *testing.T) {
	series := []axis.Series[point]{{
		{Original: point{v: 5}, StackData: []float64{0, 5}},
		{Original: point{v: 7}, StackData: []float64{5, 12}},
	}}

	opts := linearOptions()
	opts.Position = axis.PositionLeft
	opts.Stacked = true

	ax, err := axis.Build(false, opts, series, testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.True(t, ax.Stacked)
	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 12.0, d1, "stack top, not the raw maximum of 7")
}

// TestBuild_TimeAxis resolves a time-family axis with calendar nice
// rounding.
func TestBuild_TimeAxis(t *testing.T) {
	start := time.Date(2022, time.May, 2, 9, 30, 0, 0, time.UTC)
	s := make(axis.Series[point], 4)
	for i := range s {
		s[i] = axis.Datum[point]{Original: point{t: start.Add(time.Duration(i) * 6 * time.Hour)}}
	}

	opts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleTime)
	opts.Value = func(p point) float64 { return scale.TimeValue(p.t) }

	ax, err := axis.Build(true, opts, []axis.Series[point]{s}, testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.Equal(t, axis.FamilyTime, ax.Family)
	d0, d1 := ax.Scale.Domain()
	assert.LessOrEqual(t, d0, scale.TimeValue(start), "nice only widens")
	assert.GreaterOrEqual(t, d1, scale.TimeValue(start.Add(18*time.Hour)))
	assert.NotNil(t, ax.ImpliedBand, "primary continuous axes get interaction slots")
}

// TestBuild_BandAxis is end-to-end scenario D: distinct categories in
// first-occurrence order.
func TestBuild_BandAxis(t *testing.T) {
	s := axis.Series[point]{
		{Original: point{c: "a"}},
		{Original: point{c: "b"}},
		{Original: point{c: "a"}},
		{Original: point{c: "c"}},
	}

	opts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleBand)
	opts.Category = func(p point) string { return p.c }

	ax, err := axis.Build(true, opts, []axis.Series[point]{s}, testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.Equal(t, axis.FamilyBand, ax.Family)
	require.NotNil(t, ax.Band)
	assert.Equal(t, []string{"a", "b", "c"}, ax.Band.Domain())
	assert.Nil(t, ax.ImpliedBand, "band axes are already discrete")
	assert.Equal(t, "a", ax.CategoryFormat.Tooltip("a"), "band default formatter is identity")

	inner, outer := ax.Band.Padding()
	assert.Equal(t, 0.6, inner)
	assert.Equal(t, 0.2, outer)

	require.NotNil(t, ax.OuterBand)
	r0, r1 := ax.OuterBand.Range()
	assert.Equal(t, 0.0, r0)
	assert.Equal(t, 120.0, r1)
}

// TestBuild_BandAxisInvert reverses the category order.
func TestBuild_BandAxisInvert(t *testing.T) {
	s := axis.Series[point]{
		{Original: point{c: "a"}},
		{Original: point{c: "b"}},
		{Original: point{c: "c"}},
	}

	opts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleBand)
	opts.Category = func(p point) string { return p.c }
	opts.Invert = true

	ax, err := axis.Build(false, opts, []axis.Series[point]{s}, testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, ax.Band.Domain())
}

// TestBuild_LogAxis wires the log scale kind through the linear
// family path.
func TestBuild_LogAxis(t *testing.T) {
	opts := axis.DefaultOptions[point](axis.PositionLeft, axis.ScaleLog)
	opts.Value = func(p point) float64 { return p.v }
	opts.HardMin = axis.Float(1)
	opts.HardMax = axis.Float(1000)

	ax, err := axis.Build(false, opts, numberSeries(5, 500), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.Equal(t, axis.FamilyLinear, ax.Family)
	assert.Equal(t, scale.Log, ax.Scale.Kind())
	d0, d1 := ax.Scale.Domain()
	assert.Equal(t, 1.0, d0)
	assert.Equal(t, 1000.0, d1)
}
