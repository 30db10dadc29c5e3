package axis

import (
	"github.com/ryadav96/react-charts/scale"
)

// Build resolves one axis. primary marks the interaction axis (the one
// along which datums are uniquely positioned); only a primary
// continuous axis receives an implied band scale. series and opts are
// read-only; a fresh Axis is returned on every call.
//
// Errors: ErrInvalidPosition, ErrInvalidScaleType, ErrMissingValueFn /
// ErrMissingCategoryFn, ErrInvalidDomain — all fatal, none retried
// (the computation is deterministic, retrying unchanged inputs is
// meaningless).
func Build[T any](primary bool, opts Options[T], series []Series[T], grid Grid, canvasWidth, canvasHeight float64) (*Axis[T], error) {
	ro, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	vertical := ro.Position.Vertical()
	// Vertical ranges run high→low: screen Y grows downward while
	// domain values should grow upward visually.
	var rng, outer [2]float64
	if vertical {
		rng = [2]float64{grid.Height, 0}
		outer = [2]float64{canvasHeight, 0}
	} else {
		rng = [2]float64{0, grid.Width}
		outer = [2]float64{0, canvasWidth}
	}

	ax := &Axis[T]{
		Position:                  ro.Position,
		ScaleType:                 ro.Scale,
		Vertical:                  vertical,
		Primary:                   primary,
		Range:                     rng,
		OuterRange:                outer,
		Show:                      ro.show,
		ElementType:               ro.ElementType,
		Stacked:                   ro.Stacked,
		Invert:                    ro.Invert,
		InnerBandPadding:          ro.innerPadding,
		OuterBandPadding:          ro.outerPadding,
		MinTickPaddingForRotation: ro.minTickPad,
		TickLabelRotationDeg:      ro.rotationDeg,
		Value:                     ro.Value,
		Category:                  ro.Category,
	}

	switch ro.Scale {
	case ScaleTime, ScaleLocalTime:
		ax.Family = FamilyTime
		err = buildContinuous(ax, ro, series)
	case ScaleLinear, ScaleLog:
		ax.Family = FamilyLinear
		err = buildContinuous(ax, ro, series)
	case ScaleBand:
		ax.Family = FamilyBand
		err = buildBand(ax, ro, series)
	default:
		// resolveOptions already rejected unknown types; keep the
		// dispatch exhaustive anyway.
		err = wrapOptionErr(ErrInvalidScaleType, "scaleType", int(ro.Scale))
	}
	if err != nil {
		return nil, err
	}

	return ax, nil
}

// buildContinuous resolves the domain, builds the grid and outer
// scales, composes the formatter chain and, for primary axes, infers
// the implied interaction bands.
func buildContinuous[T any](ax *Axis[T], ro resolved[T], series []Series[T]) error {
	if ro.Value == nil {
		return ErrMissingValueFn
	}

	values := continuousValues(series, ro.Value, ro.Stacked)
	minV, maxV, nice, err := resolveContinuousDomain(
		values, ro.Min, ro.Max, ro.HardMin, ro.HardMax,
		ro.MinDomainLength, ax.Family == FamilyLinear)
	if err != nil {
		return err
	}

	s := newContinuousScale(ro.Scale)
	d0, d1 := minV, maxV
	if ro.Invert {
		d0, d1 = d1, d0
	}
	s.SetDomain(d0, d1).SetRange(ax.Range[0], ax.Range[1])
	// Nice runs after inversion so rounding operates on the final
	// domain direction.
	if nice {
		s.Nice(defaultNiceCount)
	}

	ax.Scale = s
	ax.OuterScale = s.Copy().SetRange(ax.OuterRange[0], ax.OuterRange[1])
	ax.Format = newChain(s.TickFormat(defaultNiceCount), ro.Formats)

	if ax.Primary {
		ax.ImpliedBand = impliedBandScale(s, series, ro.Value, ro.innerPadding, ro.outerPadding)
	}

	return nil
}

// newContinuousScale maps a continuous ScaleType to its scale kind.
func newContinuousScale(st ScaleType) *scale.Continuous {
	switch st {
	case ScaleTime:
		return scale.NewTime()
	case ScaleLocalTime:
		return scale.NewLocalTime()
	case ScaleLog:
		return scale.NewLog()
	default:
		return scale.NewLinear()
	}
}

// buildBand resolves the category domain and builds the grid and outer
// band scales. Band axes are already discrete: they never receive a
// secondary implied band scale.
func buildBand[T any](ax *Axis[T], ro resolved[T], series []Series[T]) error {
	if ro.Category == nil {
		return ErrMissingCategoryFn
	}

	cats := bandCategories(series, ro.Category)
	if ro.Invert {
		for l, r := 0, len(cats)-1; l < r; l, r = l+1, r-1 {
			cats[l], cats[r] = cats[r], cats[l]
		}
	}

	b := scale.NewBand[string]().
		SetDomain(cats).
		SetRange(ax.Range[0], ax.Range[1]).
		SetPadding(ro.innerPadding, ro.outerPadding)

	ax.Band = b
	ax.OuterBand = b.Copy().SetRange(ax.OuterRange[0], ax.OuterRange[1])
	ax.CategoryFormat = newChain[string](identityFormat, ro.CategoryFormats)

	return nil
}
