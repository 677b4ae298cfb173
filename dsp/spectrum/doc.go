// Package spectrum measures the amplitude spectrum of sampled pulses.
//
// Forward transforms are delegated to algo-fft; bin magnitudes use the
// SIMD kernels from algo-vecmath. The package is used to confirm that a
// synthesized wavelet peaks at its nominal frequency.
package spectrum
