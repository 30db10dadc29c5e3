package scale

import (
	"math"
	"time"
)

// Kind selects the interpolation and labeling behavior of a Continuous
// scale.
//
//   - Linear    — identity transform, decimal ticks and labels.
//   - Log       — sign-preserving log10 transform; the domain must not
//     span or touch zero (unchecked precondition, mirroring the
//     underlying mathematics: log10(0) is -Inf).
//   - Time      — linear over epoch milliseconds, calendar-aware nice
//     rounding, ticks and labels rendered in UTC.
//   - LocalTime — same as Time, rendered in the process-local zone.
type Kind int

const (
	// Linear interpolates the domain directly.
	Linear Kind = iota
	// Log interpolates through a sign-preserving log10 transform.
	Log
	// Time treats domain values as epoch milliseconds, labeled in UTC.
	Time
	// LocalTime treats domain values as epoch milliseconds, labeled in
	// the local time zone.
	LocalTime
)

// Continuous maps a [d0,d1] float64 domain onto a [r0,r1] pixel range.
// The zero value is not usable; use one of the New* constructors.
// Continuous is a value type: Copy returns an independent scale and no
// method shares state between copies.
type Continuous struct {
	kind   Kind
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a linear scale with unit domain and range.
func NewLinear() *Continuous {
	return &Continuous{kind: Linear, d0: 0, d1: 1, r0: 0, r1: 1}
}

// NewLog returns a log10 scale with domain [1,10] and unit range.
func NewLog() *Continuous {
	return &Continuous{kind: Log, d0: 1, d1: 10, r0: 0, r1: 1}
}

// NewTime returns a UTC time scale with unit domain and range.
// Domain values are epoch milliseconds; see TimeValue and ToTime.
func NewTime() *Continuous {
	return &Continuous{kind: Time, d0: 0, d1: 1, r0: 0, r1: 1}
}

// NewLocalTime returns a local-zone time scale with unit domain and range.
func NewLocalTime() *Continuous {
	return &Continuous{kind: LocalTime, d0: 0, d1: 1, r0: 0, r1: 1}
}

// Kind reports the scale's interpolation kind.
func (s *Continuous) Kind() Kind { return s.kind }

// SetDomain assigns the domain endpoints in order; d0 > d1 yields a
// descending (inverted) axis. Returns s for chaining.
func (s *Continuous) SetDomain(d0, d1 float64) *Continuous {
	s.d0, s.d1 = d0, d1
	return s
}

// SetRange assigns the pixel range endpoints in order; r0 > r1 is the
// usual convention for vertical axes. Returns s for chaining.
func (s *Continuous) SetRange(r0, r1 float64) *Continuous {
	s.r0, s.r1 = r0, r1
	return s
}

// Domain returns the current domain endpoints in assignment order.
func (s *Continuous) Domain() (d0, d1 float64) { return s.d0, s.d1 }

// Range returns the current range endpoints in assignment order.
func (s *Continuous) Range() (r0, r1 float64) { return s.r0, s.r1 }

// Copy returns an independent scale with the same kind, domain and range.
func (s *Continuous) Copy() *Continuous {
	c := *s
	return &c
}

// transform maps a domain value into interpolation space. For Log the
// transform is sign-preserving: negative domains map through -log10(-v),
// so a strictly negative domain behaves symmetrically to a positive one.
func (s *Continuous) transform(v float64) float64 {
	if s.kind != Log {
		return v
	}
	if v < 0 {
		return -math.Log10(-v)
	}
	return math.Log10(v)
}

// untransform maps an interpolation-space value back to the domain.
// The sign branch follows the domain's sign (no zero crossing allowed).
func (s *Continuous) untransform(t float64) float64 {
	if s.kind != Log {
		return t
	}
	if s.d0 < 0 || s.d1 < 0 {
		return -math.Pow(10, -t)
	}
	return math.Pow(10, t)
}

// Scale projects a domain value to a pixel position. A degenerate
// domain (d0 == d1 after transform) maps every value to the range
// midpoint so callers never divide by zero.
func (s *Continuous) Scale(v float64) float64 {
	t0, t1 := s.transform(s.d0), s.transform(s.d1)
	if t0 == t1 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (s.transform(v)-t0)/(t1-t0)*(s.r1-s.r0)
}

// Invert projects a pixel position back to a domain value. A degenerate
// range returns d0.
func (s *Continuous) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.d0
	}
	t0, t1 := s.transform(s.d0), s.transform(s.d1)
	return s.untransform(t0 + (px-s.r0)/(s.r1-s.r0)*(t1-t0))
}

// Nice rounds the domain outward to human-friendly bounds sized for
// about count ticks, preserving the domain's direction:
//   - Linear — floor/ceil to the 1/2/5 decimal tick increment.
//   - Log    — floor/ceil to whole decades.
//   - Time   — snap to the calendar unit chosen for the span
//     (seconds … years), in the scale's zone.
//
// A degenerate or non-finite domain is left unchanged.
func (s *Continuous) Nice(count int) *Continuous {
	lo, hi := s.d0, s.d1
	rev := lo > hi
	if rev {
		lo, hi = hi, lo
	}
	if !(hi > lo) || math.IsInf(hi-lo, 0) {
		return s
	}

	switch s.kind {
	case Time, LocalTime:
		lo, hi = niceTimeDomain(lo, hi, count, s.location())
	case Log:
		lo = s.untransform(math.Floor(snapUnit(s.transform(lo))))
		hi = s.untransform(math.Ceil(snapUnit(s.transform(hi))))
	default:
		lo, hi = niceLinear(lo, hi, count)
	}

	if rev {
		lo, hi = hi, lo
	}
	s.d0, s.d1 = lo, hi

	return s
}

// Ticks returns about count representative values inside the domain,
// ordered in domain direction.
func (s *Continuous) Ticks(count int) []float64 {
	if count <= 0 {
		return nil
	}
	switch s.kind {
	case Time, LocalTime:
		lo, hi := s.d0, s.d1
		rev := lo > hi
		if rev {
			lo, hi = hi, lo
		}
		ts := timeTicks(lo, hi, count, s.location())
		if rev {
			reverseFloats(ts)
		}
		return ts
	case Log:
		return s.logTicks()
	default:
		return linearTicks(s.d0, s.d1, count)
	}
}

// logTicks emits whole decades between the domain bounds (in domain
// direction), falling back to the plain bounds when the domain spans
// less than one decade.
func (s *Continuous) logTicks() []float64 {
	lo, hi := s.d0, s.d1
	rev := lo > hi
	if rev {
		lo, hi = hi, lo
	}
	t0 := math.Ceil(snapUnit(s.transform(lo)))
	t1 := math.Floor(snapUnit(s.transform(hi)))
	if t1 < t0 {
		return []float64{lo, hi}
	}
	ticks := make([]float64, 0, int(t1-t0)+1)
	for p := t0; p <= t1; p++ {
		ticks = append(ticks, s.untransform(p))
	}
	if rev {
		reverseFloats(ticks)
	}

	return ticks
}

// TickFormat returns a label renderer matched to the domain and to the
// precision of the tick increment for about count ticks. Time kinds
// pick a layout from the domain span (seconds → clock time, days →
// dates, years → the year alone).
func (s *Continuous) TickFormat(count int) func(float64) string {
	switch s.kind {
	case Time, LocalTime:
		return timeTickFormat(math.Abs(s.d1-s.d0), s.location())
	case Log:
		return formatCompact
	default:
		return linearTickFormat(s.d0, s.d1, count)
	}
}

// location resolves the formatting zone for time kinds.
func (s *Continuous) location() *time.Location {
	if s.kind == LocalTime {
		return time.Local
	}
	return time.UTC
}

// logSnapEps guards decade boundaries against log10 rounding error:
// log10(1000) may land a few ulps off 3, which would shift a floor or
// ceil by a whole decade.
const logSnapEps = 1e-9

// snapUnit rounds t to the nearest integer when it is within
// logSnapEps of one.
func snapUnit(t float64) float64 {
	if r := math.Round(t); math.Abs(t-r) < logSnapEps {
		return r
	}
	return t
}

func reverseFloats(vs []float64) {
	for l, r := 0, len(vs)-1; l < r; l, r = l+1, r-1 {
		vs[l], vs[r] = vs[r], vs[l]
	}
}
