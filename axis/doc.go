// Package axis resolves chart axes: given data series, axis options and
// the pixel geometry of the plotting grid, it computes the axis domain,
// builds the domain→pixel scales and composes the tick/tooltip/cursor
// formatter chain.
//
// 🚀 What does Build produce?
//
//	One Axis descriptor per call, holding everything a renderer needs:
//	  • the resolved domain ([min,max] or ordered category set)
//	  • a scale over the clipped grid range, plus an outer copy over
//	    the full canvas range for elements drawn outside the grid
//	  • for the primary continuous axis, a synthetic band scale of
//	    inferred uniform slots used by hover/hit-testing code
//	  • the four-entry formatter chain (default → scale → tooltip →
//	    cursor), each level falling back to the one before it
//
// ✨ Domain resolution rules (the heart of the package):
//
//   - Min/Max are soft bounds: they only ever WIDEN the data-driven
//     extent, never shrink it, and they switch auto-nice rounding off.
//   - HardMin/HardMax replace the extent outright (applied after the
//     soft bounds, so they always win) and also switch nice off.
//   - MinDomainLength (linear-family axes) widens the domain symmetrically
//     around the midpoint of its bounds until the span is reached.
//   - Invert reverses the domain after resolution; nice rounding runs
//     after inversion so it operates on the final direction.
//   - An extent that is still undefined after every rule (empty series
//     and no hard bounds) fails with ErrInvalidDomain.
//
// ⚙️ Usage:
//
//	opts := axis.DefaultOptions[Point](axis.PositionBottom, axis.ScaleLinear)
//	opts.Value = func(p Point) float64 { return p.X }
//	ax, err := axis.Build(true, opts, series, axis.Grid{Width: 400, Height: 200}, 440, 240)
//	if err != nil { ... }
//	px := ax.Scale.Scale(12.5)
//
// The computation is synchronous, deterministic and side-effect free:
// series and options are never mutated, a fresh Axis is returned per
// call, and concurrent calls over different inputs need no coordination.
// Implied-band inference sorts the projected points once, O(n log n)
// over all datums combined.
package axis
