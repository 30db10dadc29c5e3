package dataset

import "math"

// Pulse returns a length-n pulse sequence with optional trend and
// noise.
//
// Shape:
//   - Rectangular: y ∈ {0, A}, on while the phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2·frac − 1| (no trig).
//
// Additions: linear trend y += trend·i, Gaussian noise y += sigma·N(0,1)
// (deterministic per seed).
//
// Returns nil if n < 1. Complexity: O(n) time and memory.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1): (i·f0) mod 1.
		frac := math.Mod(float64(i)*cfg.frequency, 1)

		var y float64
		if cfg.triangular {
			y = cfg.amplitude * (1 - math.Abs(2*frac-1))
		} else if frac < cfg.duty {
			y = cfg.amplitude
		}

		y += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			y += cfg.sigma * rng.NormFloat64()
		}
		out[i] = y
	}

	return out
}
