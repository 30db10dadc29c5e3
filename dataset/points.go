package dataset

import "time"

// Point is a timestamped sample, shaped to plug into axis extractors:
// the time feeds a time axis, the value a linear one.
type Point struct {
	Time  time.Time
	Value float64
}

// Sampled stamps values with timestamps starting at start and advancing
// by step per sample.
func Sampled(values []float64, start time.Time, step time.Duration) []Point {
	out := make([]Point, len(values))
	for i, v := range values {
		out[i] = Point{Time: start.Add(time.Duration(i) * step), Value: v}
	}

	return out
}
