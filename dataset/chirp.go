package dataset

import "math"

// tau = 2π, hoisted out of the sample loop.
const tau = 2 * math.Pi

// Chirp returns a length-n linear chirp: a sinusoid whose frequency
// sweeps from the base frequency to the sweep-to frequency.
//
// Model:
//   - fi = f0 + (f1 − f0)·i/(n−1)   (cycles/sample)
//   - θ  accumulates τ·fi per sample (phase-continuous)
//   - yᵢ = A·sin(θᵢ) + trend·i + noise
//
// Returns nil if n < 1. Complexity: O(n) time and memory.
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	theta := 0.0
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi := cfg.frequency + (cfg.sweepTo-cfg.frequency)*t
		theta += tau * fi

		y := cfg.amplitude * math.Sin(theta)
		y += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			y += cfg.sigma * rng.NormFloat64()
		}
		out[i] = y
	}

	return out
}
