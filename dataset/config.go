package dataset

import "math/rand"

// config aggregates every generator knob. It is resolved once per call
// and passed by value, so generators stay free of global state.
type config struct {
	amplitude  float64 // waveform amplitude, > 0
	frequency  float64 // pulse base frequency (cycles/sample), > 0
	sweepTo    float64 // chirp end frequency (cycles/sample), > 0
	duty       float64 // rectangular duty cycle in [0,1]
	triangular bool    // pulse shape: rectangular(false) or triangular(true)
	trend      float64 // linear trend increment per sample
	sigma      float64 // Gaussian noise sigma, ≥ 0

	startPrice float64 // OHLC initial price, > 0
	drift      float64 // OHLC daily drift μ
	volatility float64 // OHLC daily volatility σ, ≥ 0

	rng *rand.Rand // shared RNG stream; nil → seed a local one per call
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 0.125 // period ≈ 8 samples
	defaultSweepTo    = 0.25
	defaultDuty       = 0.5
	defaultTrend      = 0.0
	defaultSigma      = 0.0
	defaultStartPrice = 100.0
	defaultDrift      = 0.0005
	defaultVolatility = 0.02
)

// newConfig applies defaults then the options in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		sweepTo:    defaultSweepTo,
		duty:       defaultDuty,
		trend:      defaultTrend,
		sigma:      defaultSigma,
		startPrice: defaultStartPrice,
		drift:      defaultDrift,
		volatility: defaultVolatility,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng when set (shared stream), else a fresh RNG
// seeded by seed. Keeps determinism across composed calls.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}
