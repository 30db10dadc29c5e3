package dataset

import "math/rand"

// Option customizes a generator by mutating its config before any
// samples are produced. Option constructors validate and panic on
// meaningless inputs; the generators themselves never panic.
type Option func(*config)

// WithAmplitude sets the waveform amplitude A (>0). Panics if A <= 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("dataset: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the pulse base frequency f0 in cycles/sample (>0)
// and the chirp start frequency. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("dataset: WithFrequency(f0<=0)")
	}
	return func(c *config) { c.frequency = f0 }
}

// WithSweepTo sets the chirp end frequency f1 in cycles/sample (>0).
// Panics if f1 <= 0.
func WithSweepTo(f1 float64) Option {
	if f1 <= 0 {
		panic("dataset: WithSweepTo(f1<=0)")
	}
	return func(c *config) { c.sweepTo = f1 }
}

// WithDuty sets the rectangular pulse duty cycle in [0,1]. Panics on
// values outside the interval.
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("dataset: WithDuty(duty outside [0,1])")
	}
	return func(c *config) { c.duty = duty }
}

// WithTriangular selects the pulse shape: triangular envelope instead
// of the rectangular default.
func WithTriangular(on bool) Option {
	return func(c *config) { c.triangular = on }
}

// WithTrend sets the linear trend increment per sample. Any real value
// is accepted, including 0.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithNoise sets the Gaussian noise sigma (≥0); 0 disables noise.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("dataset: WithNoise(sigma<0)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithStartPrice sets the OHLC initial price S0 (>0). Panics if S0 <= 0.
func WithStartPrice(s0 float64) Option {
	if s0 <= 0 {
		panic("dataset: WithStartPrice(S0<=0)")
	}
	return func(c *config) { c.startPrice = s0 }
}

// WithDrift sets the OHLC daily drift μ. Any real value is accepted.
func WithDrift(mu float64) Option {
	return func(c *config) { c.drift = mu }
}

// WithVolatility sets the OHLC daily volatility σ (≥0). Panics if
// sigma < 0.
func WithVolatility(sigma float64) Option {
	if sigma < 0 {
		panic("dataset: WithVolatility(sigma<0)")
	}
	return func(c *config) { c.volatility = sigma }
}

// WithRand provides an explicit RNG shared across composed calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new deterministic RNG with the given seed,
// overriding the per-call seed argument.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
