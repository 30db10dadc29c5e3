package scale

import "math"

// Band maps an ordered set of distinct categories onto uniform pixel
// slots. Inner padding (fraction of the step left blank between slots)
// and outer padding (fraction of the step inset at both ends) follow
// the usual band-scale conventions; slot centers stay aligned for any
// padding values in [0,1].
//
// Band is generic over the category key so the same machinery serves
// true categorical axes (K=string) and synthetic interaction slots
// (K=int). The zero value is not usable; use NewBand.
type Band[K comparable] struct {
	domain []K
	index  map[K]int

	r0, r1 float64
	inner  float64
	outer  float64

	// derived on every mutation
	step      float64
	bandwidth float64
	start     float64
	reverse   bool
}

// Slot centering factor: leftover space after padding is split evenly.
const bandAlign = 0.5

// NewBand returns an empty band scale over the unit range with no
// padding.
func NewBand[K comparable]() *Band[K] {
	b := &Band[K]{r0: 0, r1: 1, index: map[K]int{}}
	b.rescale()
	return b
}

// SetDomain assigns the category set. Duplicates are collapsed to their
// first occurrence; order is otherwise preserved. Returns b for
// chaining.
func (b *Band[K]) SetDomain(keys []K) *Band[K] {
	b.domain = b.domain[:0]
	b.index = make(map[K]int, len(keys))
	for _, k := range keys {
		if _, seen := b.index[k]; seen {
			continue
		}
		b.index[k] = len(b.domain)
		b.domain = append(b.domain, k)
	}
	b.rescale()

	return b
}

// SetRange assigns the pixel range; r0 > r1 flips slot order on screen
// (vertical axes). Returns b for chaining.
func (b *Band[K]) SetRange(r0, r1 float64) *Band[K] {
	b.r0, b.r1 = r0, r1
	b.rescale()

	return b
}

// SetPadding assigns inner and outer padding as fractions of the step.
// Values are clamped to [0,1]. Returns b for chaining.
func (b *Band[K]) SetPadding(inner, outer float64) *Band[K] {
	b.inner = clamp01(inner)
	b.outer = clamp01(outer)
	b.rescale()

	return b
}

// Domain returns the category set in slot order. The slice is shared;
// callers must not mutate it.
func (b *Band[K]) Domain() []K { return b.domain }

// Range returns the pixel range endpoints in assignment order.
func (b *Band[K]) Range() (r0, r1 float64) { return b.r0, b.r1 }

// Padding returns the inner and outer padding fractions.
func (b *Band[K]) Padding() (inner, outer float64) { return b.inner, b.outer }

// Bandwidth returns the painted width of one slot.
func (b *Band[K]) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between consecutive slot starts.
func (b *Band[K]) Step() float64 { return b.step }

// Len returns the number of distinct categories.
func (b *Band[K]) Len() int { return len(b.domain) }

// Copy returns an independent band scale with the same domain, range
// and padding.
func (b *Band[K]) Copy() *Band[K] {
	c := NewBand[K]()
	c.inner, c.outer = b.inner, b.outer
	c.r0, c.r1 = b.r0, b.r1
	c.SetDomain(b.domain)

	return c
}

// Scale returns the pixel position of the slot start for k, or false
// when k is not in the domain.
func (b *Band[K]) Scale(k K) (float64, bool) {
	i, ok := b.index[k]
	if !ok {
		return 0, false
	}
	return b.slotStart(i), true
}

// Center returns the pixel position of the slot center for k, or false
// when k is not in the domain.
func (b *Band[K]) Center(k K) (float64, bool) {
	px, ok := b.Scale(k)
	if !ok {
		return 0, false
	}
	return px + b.bandwidth/2, true
}

// Invert snaps a pixel position to the category whose slot center is
// nearest, clamping positions outside the range to the end slots.
// Returns false only for an empty domain.
func (b *Band[K]) Invert(px float64) (K, bool) {
	var zero K
	n := len(b.domain)
	if n == 0 {
		return zero, false
	}
	if b.step == 0 {
		return b.domain[0], true
	}
	i := int(math.Round((px - b.start - b.bandwidth/2) / b.step))
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	if b.reverse {
		i = n - 1 - i
	}

	return b.domain[i], true
}

// slotStart computes the pixel start of slot i (domain order).
func (b *Band[K]) slotStart(i int) float64 {
	if b.reverse {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i)
}

// rescale recomputes step, bandwidth and the first slot start from the
// current domain, range and padding.
func (b *Band[K]) rescale() {
	n := float64(len(b.domain))
	lo, hi := b.r0, b.r1
	b.reverse = hi < lo
	if b.reverse {
		lo, hi = hi, lo
	}

	slots := n - b.inner + 2*b.outer
	if slots < 1 {
		slots = 1
	}
	b.step = (hi - lo) / slots
	b.bandwidth = b.step * (1 - b.inner)
	b.start = lo + (hi-lo-b.step*(n-b.inner))*bandAlign
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
