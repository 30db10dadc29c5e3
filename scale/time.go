package scale

import (
	"math"
	"time"
)

// Millisecond spans used for interval selection. Month and year use
// nominal lengths here; actual tick positions are computed with
// calendar arithmetic, so the nominal values only steer which unit is
// chosen.
const (
	msSecond = 1000.0
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
	msMonth  = 30 * msDay
	msYear   = 365 * msDay
)

// TimeValue converts a time.Time into the epoch-millisecond domain
// value used by Time and LocalTime scales.
func TimeValue(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// ToTime converts an epoch-millisecond domain value back into a
// time.Time (UTC; use In to re-zone).
func ToTime(v float64) time.Time {
	return time.UnixMilli(int64(math.Round(v))).UTC()
}

// timeStep is one rung of the calendar tick ladder. Sub-month rungs
// carry a fixed duration; month and year rungs use calendar arithmetic
// because their lengths vary.
type timeStep struct {
	d      time.Duration
	months int
	years  int
}

// span reports the nominal width of the step in milliseconds.
func (st timeStep) span() float64 {
	switch {
	case st.years > 0:
		return float64(st.years) * msYear
	case st.months > 0:
		return float64(st.months) * msMonth
	default:
		return float64(st.d) / float64(time.Millisecond)
	}
}

// timeSteps is the tick ladder, smallest first.
var timeSteps = []timeStep{
	{d: time.Millisecond},
	{d: 5 * time.Millisecond},
	{d: 10 * time.Millisecond},
	{d: 50 * time.Millisecond},
	{d: 100 * time.Millisecond},
	{d: 500 * time.Millisecond},
	{d: time.Second},
	{d: 5 * time.Second},
	{d: 15 * time.Second},
	{d: 30 * time.Second},
	{d: time.Minute},
	{d: 5 * time.Minute},
	{d: 15 * time.Minute},
	{d: 30 * time.Minute},
	{d: time.Hour},
	{d: 3 * time.Hour},
	{d: 6 * time.Hour},
	{d: 12 * time.Hour},
	{d: 24 * time.Hour},
	{d: 48 * time.Hour},
	{d: 7 * 24 * time.Hour},
	{months: 1},
	{months: 3},
	{years: 1},
}

// chooseTimeStep picks the ladder rung whose span best matches
// span/count: the first rung at or above the target, unless the rung
// below is proportionally closer. Beyond one year the year rung scales
// up.
func chooseTimeStep(span float64, count int) timeStep {
	if count < 1 {
		count = 1
	}
	target := span / float64(count)
	for i, st := range timeSteps {
		if st.span() < target {
			continue
		}
		if i > 0 {
			prev := timeSteps[i-1]
			if target/prev.span() < st.span()/target {
				return prev
			}
		}
		return st
	}
	years := int(math.Max(1, math.Round(target/msYear)))

	return timeStep{years: years}
}

// floorTime snaps t down to the step boundary in loc. Sub-day steps
// truncate against the UTC epoch (exact for whole-hour offsets); day
// and larger steps use calendar fields so midnight, month starts and
// year starts land where the zone says they are.
func floorTime(t time.Time, st timeStep, loc *time.Location) time.Time {
	t = t.In(loc)
	switch {
	case st.years > 0:
		y := (t.Year() / st.years) * st.years
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case st.months > 0:
		m := (int(t.Month()) - 1) / st.months * st.months
		return time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, loc)
	case st.d >= 24*time.Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	default:
		return t.Truncate(st.d)
	}
}

// addStep advances t by one step using calendar arithmetic for month
// and year rungs.
func addStep(t time.Time, st timeStep) time.Time {
	switch {
	case st.years > 0:
		return t.AddDate(st.years, 0, 0)
	case st.months > 0:
		return t.AddDate(0, st.months, 0)
	default:
		return t.Add(st.d)
	}
}

// ceilTime snaps t up to the next step boundary (identity when t is
// already on one).
func ceilTime(t time.Time, st timeStep, loc *time.Location) time.Time {
	f := floorTime(t, st, loc)
	if f.Before(t.In(loc)) {
		return addStep(f, st)
	}
	return f
}

// niceTimeDomain widens [lo,hi] (epoch ms, lo < hi) outward to the
// calendar boundaries of the step chosen for count ticks.
func niceTimeDomain(lo, hi float64, count int, loc *time.Location) (float64, float64) {
	st := chooseTimeStep(hi-lo, count)
	nlo := TimeValue(floorTime(ToTime(lo), st, loc))
	nhi := TimeValue(ceilTime(ToTime(hi), st, loc))

	return nlo, nhi
}

// timeTicks emits calendar-aligned tick values in [lo,hi] (epoch ms,
// lo ≤ hi) for about count ticks.
func timeTicks(lo, hi float64, count int, loc *time.Location) []float64 {
	st := chooseTimeStep(hi-lo, count)
	t := ceilTime(ToTime(lo), st, loc)
	var ticks []float64
	for {
		v := TimeValue(t)
		if v > hi {
			break
		}
		ticks = append(ticks, v)
		next := addStep(t, st)
		if !next.After(t) {
			break
		}
		t = next
	}

	return ticks
}

// timeTickFormat picks a label layout from the domain span: clock time
// for sub-day spans, dates for sub-year spans, the year alone beyond.
func timeTickFormat(span float64, loc *time.Location) func(float64) string {
	var layout string
	switch {
	case span < msMinute:
		layout = "15:04:05"
	case span < msDay:
		layout = "15:04"
	case span < 2*msMonth:
		layout = "Jan 02"
	case span < 2*msYear:
		layout = "Jan 2006"
	default:
		layout = "2006"
	}

	return func(v float64) string {
		return ToTime(v).In(loc).Format(layout)
	}
}
