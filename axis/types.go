// Package axis core types: positions, scale families, datums, series,
// grid geometry and the resolved Axis descriptor.
package axis

import (
	"github.com/ryadav96/react-charts/scale"
)

// Position declares which chart edge the axis is drawn on. It is a
// required option: the zero value fails validation.
type Position int

const (
	// PositionTop draws a horizontal axis above the grid.
	PositionTop Position = iota + 1
	// PositionBottom draws a horizontal axis below the grid.
	PositionBottom
	// PositionLeft draws a vertical axis left of the grid.
	PositionLeft
	// PositionRight draws a vertical axis right of the grid.
	PositionRight
)

// String renders the position for diagnostics.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vertical reports whether the position is a vertical chart edge.
func (p Position) Vertical() bool {
	return p == PositionLeft || p == PositionRight
}

// ScaleType declares how domain values are interpreted and mapped.
// It is a required option: the zero value fails validation.
type ScaleType int

const (
	// ScaleTime is a continuous time axis labeled in UTC.
	ScaleTime ScaleType = iota + 1
	// ScaleLocalTime is a continuous time axis labeled in local time.
	ScaleLocalTime
	// ScaleLinear is a continuous numeric axis.
	ScaleLinear
	// ScaleLog is a continuous numeric axis with log10 interpolation.
	ScaleLog
	// ScaleBand is a discrete categorical axis.
	ScaleBand
)

// String renders the scale type for diagnostics.
func (s ScaleType) String() string {
	switch s {
	case ScaleTime:
		return "time"
	case ScaleLocalTime:
		return "localTime"
	case ScaleLinear:
		return "linear"
	case ScaleLog:
		return "log"
	case ScaleBand:
		return "band"
	default:
		return "unknown"
	}
}

// Family is the resolved axis family: the five scale types collapse to
// three behavioral families.
type Family int

const (
	// FamilyTime covers ScaleTime and ScaleLocalTime.
	FamilyTime Family = iota + 1
	// FamilyLinear covers ScaleLinear and ScaleLog.
	FamilyLinear
	// FamilyBand covers ScaleBand.
	FamilyBand
)

// String renders the family for diagnostics.
func (f Family) String() string {
	switch f {
	case FamilyTime:
		return "time"
	case FamilyLinear:
		return "linear"
	case FamilyBand:
		return "band"
	default:
		return "unknown"
	}
}

// ElementType hints the renderer how series on this axis are drawn.
type ElementType int

const (
	// ElementLine draws series as polylines (the default).
	ElementLine ElementType = iota
	// ElementArea draws series as filled areas.
	ElementArea
	// ElementBar draws series as bars.
	ElementBar
)

// Datum wraps one plotted point: the caller's payload plus optional
// precomputed stack boundaries (cumulative values used only by stacked
// linear axes).
type Datum[T any] struct {
	// Original is the caller-owned payload the extractors read from.
	Original T
	// StackData holds cumulative stack boundaries for stacked linear
	// domain computation; nil for unstacked charts.
	StackData []float64
}

// Series is one plotted line/area/bar group: an ordered sequence of
// datums. Series are read-only to this package.
type Series[T any] []Datum[T]

// Grid is the pixel size of the clipped plotting area.
type Grid struct {
	Width  float64
	Height float64
}

// Axis is the fully resolved axis descriptor: the resolved options plus
// the scales, ranges and formatters a renderer consumes. A fresh Axis
// is produced per layout pass; nothing is shared or mutated afterwards.
//
// Exactly one of the scale sets is populated, keyed by Family:
//   - FamilyTime/FamilyLinear — Scale, OuterScale, Format and (primary
//     axes only) ImpliedBand.
//   - FamilyBand — Band, OuterBand and CategoryFormat.
type Axis[T any] struct {
	// Position and ScaleType echo the validated options.
	Position  Position
	ScaleType ScaleType
	// Family is the resolved behavioral family.
	Family Family
	// Vertical is derived from Position.
	Vertical bool
	// Primary marks the interaction axis (the one datums are uniquely
	// positioned along).
	Primary bool

	// Range is the clipped grid pixel range: low→high for horizontal
	// axes, high→low for vertical axes (screen Y grows downward).
	Range [2]float64
	// OuterRange is the full-canvas pixel range, same direction rule.
	OuterRange [2]float64

	// Scale maps domain values onto Range (continuous families).
	Scale *scale.Continuous
	// OuterScale shares Scale's domain but maps onto OuterRange.
	OuterScale *scale.Continuous
	// ImpliedBand discretizes a primary continuous axis into uniform
	// interaction slots; nil for secondary or band axes.
	ImpliedBand *scale.Band[int]

	// Band maps categories onto Range (band family).
	Band *scale.Band[string]
	// OuterBand shares Band's domain but maps onto OuterRange.
	OuterBand *scale.Band[string]

	// Format is the formatter chain for continuous domain values.
	Format Chain[float64]
	// CategoryFormat is the formatter chain for band categories.
	CategoryFormat Chain[string]

	// Resolved option echoes (defaults applied).
	Show                      bool
	ElementType               ElementType
	Stacked                   bool
	Invert                    bool
	InnerBandPadding          float64
	OuterBandPadding          float64
	MinTickPaddingForRotation float64
	TickLabelRotationDeg      float64
	Value                     func(T) float64
	Category                  func(T) string
}
