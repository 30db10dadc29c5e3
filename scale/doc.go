// Package scale provides the minimal scale algebra the axis package is
// built on: continuous scales (linear, log10, time, local time) mapping
// float64 domains onto pixel ranges, and ordinal band scales mapping
// discrete categories onto evenly spaced, padded pixel slots.
//
// 🚀 What is a scale?
//
//	A scale is a pure mapping from data space ("domain") to screen
//	space ("range"):
//	  • Continuous — linear interpolation over a [d0,d1] domain,
//	    optionally through a log10 transform; time scales are linear
//	    scales over epoch-millisecond values with calendar-aware
//	    nice rounding, ticks and label layouts.
//	  • Band — each distinct category gets a uniform slot; inner
//	    padding spaces the slots, outer padding insets the ends.
//
// ✨ Key features:
//   - nice rounding of continuous domains to human-friendly bounds
//     (1/2/5 decimal ladder, decades for log, calendar units for time)
//   - tick generation and tick label formatting matched to the domain
//   - inversion: pixel → domain value (nearest-slot snap for bands)
//   - reversed ranges (screen Y grows downward) handled throughout
//   - value semantics: Copy() gives an independent scale, no sharing
//
// ⚙️ Usage:
//
//	s := scale.NewLinear().SetDomain(10, 30).SetRange(0, 100)
//	s.Nice(10)               // round bounds outward
//	px := s.Scale(20)        // 50
//	v := s.Invert(px)        // 20
//	label := s.TickFormat(10)(20)
//
// All operations run in O(1) except Ticks (O(count)) and band domain
// assignment (O(n)). Nothing here panics; degenerate domains map to
// the range midpoint and degenerate ranges invert to the domain start.
package scale
