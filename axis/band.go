package axis

import (
	"math"
	"sort"

	"github.com/ryadav96/react-charts/scale"
)

// impliedBandScale discretizes a continuous primary axis into uniform
// interaction slots: hover and hit-testing code needs band-like
// snapping even when the underlying scale is continuous.
//
// The slot width is the smallest nonzero pixel distance between any two
// projected datum positions across all series. The positions are sorted
// once and scanned pairwise-adjacent — for collinear points the minimum
// pairwise distance equals the minimum adjacent gap, so this is the
// O(n log n) equivalent of the full quadratic scan. With zero or one
// distinct position the width defaults to the full range span.
//
// The synthetic domain is the integer sequence [0, floor(max(range)/
// width)), banded with the axis's configured paddings. The result is
// never used for rendering; it only lets interaction code snap a pixel
// position to the nearest inferred slot.
func impliedBandScale[T any](s *scale.Continuous, series []Series[T], value func(T) float64, innerPadding, outerPadding float64) *scale.Band[int] {
	r0, r1 := s.Range()

	var positions []float64
	for _, sr := range series {
		for _, d := range sr {
			v := value(d.Original)
			if math.IsNaN(v) {
				continue
			}
			positions = append(positions, s.Scale(v))
		}
	}
	width := minNonzeroGap(positions)
	if width == 0 {
		width = math.Abs(r1 - r0)
	}

	bandRange := math.Max(r0, r1)
	n := 0
	if width > 0 {
		n = int(math.Floor(bandRange / width))
	}
	slots := make([]int, n)
	for i := range slots {
		slots[i] = i
	}

	return scale.NewBand[int]().
		SetDomain(slots).
		SetRange(0, bandRange).
		SetPadding(innerPadding, outerPadding)
}

// minNonzeroGap returns the smallest nonzero distance between any two
// positions, or 0 when every position coincides (or fewer than two
// exist).
func minNonzeroGap(positions []float64) float64 {
	if len(positions) < 2 {
		return 0
	}
	sorted := make([]float64, len(positions))
	copy(sorted, positions)
	sort.Float64s(sorted)

	gap := 0.0
	for i := 1; i < len(sorted); i++ {
		d := sorted[i] - sorted[i-1]
		if d > 0 && (gap == 0 || d < gap) {
			gap = d
		}
	}

	return gap
}
