package axis_test

import (
	"testing"

	"github.com/ryadav96/react-charts/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_SpellsOutDefaults checks the documented defaults
// are prefilled.
func TestDefaultOptions_SpellsOutDefaults(t *testing.T) {
	opts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleLinear)

	assert.Equal(t, axis.PositionBottom, opts.Position)
	assert.Equal(t, axis.ScaleLinear, opts.Scale)
	require.NotNil(t, opts.InnerBandPadding)
	assert.Equal(t, 0.6, *opts.InnerBandPadding)
	require.NotNil(t, opts.OuterBandPadding)
	assert.Equal(t, 0.2, *opts.OuterBandPadding)
	require.NotNil(t, opts.Show)
	assert.True(t, *opts.Show)
	assert.Equal(t, axis.ElementLine, opts.ElementType)
	require.NotNil(t, opts.MinTickPaddingForRotation)
	assert.Equal(t, 10.0, *opts.MinTickPaddingForRotation)
	require.NotNil(t, opts.TickLabelRotationDeg)
	assert.Equal(t, 60.0, *opts.TickLabelRotationDeg)
}

// TestBuild_AppliesDefaultsToBareOptions: a literal Options with only
// the required fields resolves to the same defaults.
func TestBuild_AppliesDefaultsToBareOptions(t *testing.T) {
	opts := axis.Options[point]{
		Position: axis.PositionBottom,
		Scale:    axis.ScaleLinear,
		Value:    func(p point) float64 { return p.v },
	}

	ax, err := axis.Build(false, opts, numberSeries(1, 2), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.True(t, ax.Show)
	assert.Equal(t, axis.ElementLine, ax.ElementType)
	assert.False(t, ax.Stacked)
	assert.Equal(t, 0.6, ax.InnerBandPadding)
	assert.Equal(t, 0.2, ax.OuterBandPadding)
	assert.Equal(t, 10.0, ax.MinTickPaddingForRotation)
	assert.Equal(t, 60.0, ax.TickLabelRotationDeg)
}

// TestBuild_ExplicitZeroPaddingSurvives: pointer fields distinguish
// "unset" from a meaningful zero.
func TestBuild_ExplicitZeroPaddingSurvives(t *testing.T) {
	s := axis.Series[point]{{Original: point{c: "a"}}, {Original: point{c: "b"}}}

	opts := axis.DefaultOptions[point](axis.PositionBottom, axis.ScaleBand)
	opts.Category = func(p point) string { return p.c }
	opts.InnerBandPadding = axis.Float(0)
	opts.OuterBandPadding = axis.Float(0)
	opts.Show = axis.Bool(false)
	opts.MinTickPaddingForRotation = axis.Float(0)
	opts.TickLabelRotationDeg = axis.Float(0)

	ax, err := axis.Build(false, opts, []axis.Series[point]{s}, testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.Equal(t, 0.0, ax.InnerBandPadding)
	assert.Equal(t, 0.0, ax.OuterBandPadding)
	assert.False(t, ax.Show)
	assert.Equal(t, 0.0, ax.MinTickPaddingForRotation, "explicit zero disables rotation instead of re-defaulting")
	assert.Equal(t, 0.0, ax.TickLabelRotationDeg)

	inner, outer := ax.Band.Padding()
	assert.Equal(t, 0.0, inner)
	assert.Equal(t, 0.0, outer)
}

// TestBuild_StackedIsLinearOnly: stacking has no meaning for time or
// band domains and resolves to false there.
func TestBuild_StackedIsLinearOnly(t *testing.T) {
	opts := linearOptions()
	opts.Scale = axis.ScaleTime
	opts.Stacked = true

	ax, err := axis.Build(false, opts, numberSeries(1000, 2000), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.False(t, ax.Stacked)
}

// TestBuild_DoesNotMutateCallerOptions: resolution works on a copy.
func TestBuild_DoesNotMutateCallerOptions(t *testing.T) {
	opts := axis.Options[point]{
		Position: axis.PositionBottom,
		Scale:    axis.ScaleLinear,
		Value:    func(p point) float64 { return p.v },
	}

	_, err := axis.Build(false, opts, numberSeries(1, 2), testGrid, canvasW, canvasH)
	require.NoError(t, err)

	assert.Nil(t, opts.Show, "caller's struct is untouched")
	assert.Nil(t, opts.InnerBandPadding)
}
