// Package charts is a small, pure-Go toolkit for resolving chart axes:
// it turns raw data series plus a handful of axis options into concrete
// scales, pixel ranges and label formatters, ready for any renderer.
//
// 🚀 What does it do?
//
//	Given series of datums and the pixel size of a plotting grid, the
//	toolkit decides the axis domain (min/max or category set), builds
//	the scale that maps domain values to pixels, and composes the
//	formatter chain used for tick labels, tooltips and cursors:
//	  • Continuous axes: time, local time, linear, logarithmic
//	  • Discrete axes: band (categorical) with inner/outer padding
//	  • Implied band slots for hover/hit-testing on continuous axes
//
// ✨ Why choose it?
//
//   - Deterministic – same inputs, same axis; no hidden state
//   - Side-effect free – series and options are never mutated
//   - Pure Go – no cgo, no rendering dependencies
//   - Typed – generic over your datum payload, no interface{} values
//
// Under the hood, everything is organized under three subpackages:
//
//	axis/    — domain resolution, scale building, implied-band
//	           inference, formatter chains (the entry point)
//	scale/   — linear/log/time continuous scales and ordinal band
//	           scales with nice rounding, ticks and tick formatting
//	dataset/ — deterministic synthetic series (pulse, chirp, OHLC)
//	           for demos, tests and benchmarks
//
// Quick sketch:
//
//	ax, err := axis.Build(true, opts, series, grid, w, h)
//	px := ax.Scale.Scale(42)        // domain → pixel
//	label := ax.Format.Tooltip(42)  // domain → text
//
// Dive into axis/doc.go for the full model and the example_test.go
// files for runnable scenarios.
package charts
