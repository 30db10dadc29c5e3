package axis

// Default option values applied by resolveOptions.
const (
	// DefaultInnerBandPadding spaces band slots apart.
	DefaultInnerBandPadding = 0.6
	// DefaultOuterBandPadding insets the first and last band slots.
	DefaultOuterBandPadding = 0.2
	// DefaultMinTickPaddingForRotation is the tick label padding below
	// which labels rotate.
	DefaultMinTickPaddingForRotation = 10
	// DefaultTickLabelRotationDeg is the rotation applied to crowded
	// tick labels.
	DefaultTickLabelRotationDeg = 60
	// defaultNiceCount sizes nice rounding and tick formatting.
	defaultNiceCount = 10
)

// Options configures one axis. Position and Scale are required; every
// other field has a default. Optional fields where zero is a meaningful
// value (bounds, paddings, rotation controls, Show) are pointers: nil
// means "unset". Options are read by value and never mutated.
type Options[T any] struct {
	// Position is the chart edge the axis is drawn on (required).
	Position Position
	// Scale selects the scale type (required).
	Scale ScaleType

	// Value extracts the continuous domain value from a datum payload
	// (epoch milliseconds for time axes; see scale.TimeValue).
	// Required for continuous scale types.
	Value func(T) float64
	// Category extracts the band category from a datum payload.
	// Required for ScaleBand.
	Category func(T) string

	// Min and Max are soft bounds: they widen the data-driven extent
	// but never shrink it, and they disable nice rounding.
	Min, Max *float64
	// HardMin and HardMax replace the resolved bounds unconditionally
	// (they win over Min/Max) and disable nice rounding.
	HardMin, HardMax *float64
	// MinDomainLength forces the resolved span to at least this length,
	// widened symmetrically around the midpoint of the bounds. Linear
	// family only (linear and log); 0 disables.
	MinDomainLength float64

	// Invert reverses the domain direction after resolution.
	Invert bool
	// Stacked resolves the domain from stack boundaries instead of raw
	// values. Linear axes only.
	Stacked bool

	// InnerBandPadding and OuterBandPadding are band slot paddings in
	// [0,1]; nil applies the defaults (0.6 / 0.2). They also shape the
	// implied interaction bands of continuous primary axes.
	InnerBandPadding, OuterBandPadding *float64
	// Show toggles axis rendering; nil means true.
	Show *bool
	// ElementType hints how series on this axis are drawn.
	ElementType ElementType
	// MinTickPaddingForRotation and TickLabelRotationDeg control tick
	// label rotation; nil applies the defaults (10 / 60). Zero is
	// meaningful (never rotate / rotate by nothing), hence pointers.
	MinTickPaddingForRotation *float64
	TickLabelRotationDeg      *float64

	// Formats overrides the formatter chain of continuous axes.
	Formats Overrides[float64]
	// CategoryFormats overrides the formatter chain of band axes.
	CategoryFormats Overrides[string]
}

// DefaultOptions returns an Options with the required fields set and
// every default spelled out explicitly, ready to be customized.
func DefaultOptions[T any](position Position, scaleType ScaleType) Options[T] {
	return Options[T]{
		Position:                  position,
		Scale:                     scaleType,
		InnerBandPadding:          Float(DefaultInnerBandPadding),
		OuterBandPadding:          Float(DefaultOuterBandPadding),
		Show:                      Bool(true),
		ElementType:               ElementLine,
		MinTickPaddingForRotation: Float(DefaultMinTickPaddingForRotation),
		TickLabelRotationDeg:      Float(DefaultTickLabelRotationDeg),
	}
}

// Float returns a pointer to v, for optional option fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for optional option fields.
func Bool(v bool) *bool { return &v }

// resolved is Options with every default applied; immutable for the
// remainder of the computation.
type resolved[T any] struct {
	Options[T]

	innerPadding float64
	outerPadding float64
	show         bool
	minTickPad   float64
	rotationDeg  float64
}

// resolveOptions validates the required enumerations and produces the
// fully defaulted, immutable option set. The caller's Options value is
// never touched.
func resolveOptions[T any](opts Options[T]) (resolved[T], error) {
	switch opts.Position {
	case PositionTop, PositionBottom, PositionLeft, PositionRight:
	default:
		return resolved[T]{}, wrapOptionErr(ErrInvalidPosition, "position", int(opts.Position))
	}
	switch opts.Scale {
	case ScaleTime, ScaleLocalTime, ScaleLinear, ScaleLog, ScaleBand:
	default:
		return resolved[T]{}, wrapOptionErr(ErrInvalidScaleType, "scaleType", int(opts.Scale))
	}

	r := resolved[T]{
		Options:      opts,
		innerPadding: DefaultInnerBandPadding,
		outerPadding: DefaultOuterBandPadding,
		show:         true,
		minTickPad:   DefaultMinTickPaddingForRotation,
		rotationDeg:  DefaultTickLabelRotationDeg,
	}
	if opts.InnerBandPadding != nil {
		r.innerPadding = *opts.InnerBandPadding
	}
	if opts.OuterBandPadding != nil {
		r.outerPadding = *opts.OuterBandPadding
	}
	if opts.Show != nil {
		r.show = *opts.Show
	}
	if opts.MinTickPaddingForRotation != nil {
		r.minTickPad = *opts.MinTickPaddingForRotation
	}
	if opts.TickLabelRotationDeg != nil {
		r.rotationDeg = *opts.TickLabelRotationDeg
	}
	// Stacking only has meaning for linear domains.
	if opts.Scale != ScaleLinear {
		r.Stacked = false
	}

	return r, nil
}
