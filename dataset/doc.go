// Package dataset generates deterministic synthetic series for chart
// demos, tests and benchmarks: rectangular/triangular pulses, linear
// chirps and OHLC candle data, plus helpers that stamp the samples
// with timestamps so they plug straight into axis extractors.
//
// 🚀 What's inside?
//
//	  • Pulse — rectangular (duty-cycle) or triangular waveform
//	  • Chirp — sinusoid sweeping linearly from f0 to f1
//	  • OHLC  — open/high/low/close candles via discrete-time GBM
//	  • Sampled — wrap any numeric slice into timestamped Points
//
//	All generators accept an optional linear trend and additive
//	Gaussian noise, and are strictly deterministic per (n, seed,
//	options): the same inputs always produce the same samples.
//
// ⚙️ Usage:
//
//	values := dataset.Pulse(64, 42,
//	  dataset.WithAmplitude(10),
//	  dataset.WithTriangular(true),
//	  dataset.WithNoise(0.5))
//	points := dataset.Sampled(values, start, time.Minute)
//
// Policy: option constructors validate and panic on meaningless inputs
// (nil RNG, negative sigma); generators themselves never panic and
// return nil on invalid sizes. Each generator runs in O(n) time and
// memory.
package dataset
