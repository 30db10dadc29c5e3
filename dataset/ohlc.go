package dataset

import "math"

// intradaySteps is the fixed number of intraday GBM steps per day; a
// small constant is enough to form realistic wicks.
const intradaySteps = 8

// Candle is one OHLC trading day.
type Candle struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// OHLC returns deterministic candle data for days trading days,
// simulated as discrete-time geometric Brownian motion with
// intradaySteps steps per day:
//
//	S ← S · exp((μ − σ²/2)·Δt + σ·√Δt·Z),  Z ~ N(0,1),  Δt = 1/steps.
//
// Invariant after every day: Low ≤ min(Open, Close) ≤ max(Open, Close)
// ≤ High.
//
// Returns nil if days < 1. Complexity: O(days) time and memory.
func OHLC(days int, seed int64, opts ...Option) []Candle {
	if days < 1 {
		return nil
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]Candle, days)
	s := cfg.startPrice

	dt := 1.0 / float64(intradaySteps)
	drift := (cfg.drift - 0.5*cfg.volatility*cfg.volatility) * dt
	noise := cfg.volatility * math.Sqrt(dt)

	for d := 0; d < days; d++ {
		open := s
		high, low := open, open

		for step := 0; step < intradaySteps; step++ {
			s *= math.Exp(drift + noise*rng.NormFloat64())
			if s > high {
				high = s
			}
			if s < low {
				low = s
			}
		}

		out[d] = Candle{Open: open, High: high, Low: low, Close: s}
	}

	return out
}
