package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// MinFFTSize is the smallest transform length used by [Amplitude].
const MinFFTSize = 4096

var (
	errEmptyInput      = errors.New("spectrum input must not be empty")
	errInvalidInterval = errors.New("spectrum sample interval must be finite and > 0")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// FFTSize returns the transform length used for n samples: the next power
// of two of 4*n, but never less than MinFFTSize.
func FFTSize(n int) int {
	size := nextPowerOf2(4 * n)
	if size < MinFFTSize {
		size = MinFFTSize
	}
	return size
}

// Amplitude returns the one-sided amplitude spectrum of samples taken every
// dt seconds. The input is zero-padded to FFTSize(len(samples)); freqs[k] is
// k/(N*dt) for k in [0, N/2].
func Amplitude(samples []float64, dt float64) (freqs, mags []float64, err error) {
	if len(samples) == 0 {
		return nil, nil, errEmptyInput
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, nil, fmt.Errorf("%w: %v", errInvalidInterval, dt)
	}

	fftSize := FFTSize(len(samples))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	mags = Magnitude(out[:half])
	freqs = make([]float64, half)
	df := 1 / (float64(fftSize) * dt)
	for k := range freqs {
		freqs[k] = float64(k) * df
	}
	return freqs, mags, nil
}

// PeakFrequency returns the frequency in Hz at which the amplitude spectrum
// of samples is largest, refined by a parabolic fit through the log
// magnitudes of the three bins around the maximum.
func PeakFrequency(samples []float64, dt float64) (float64, error) {
	freqs, mags, err := Amplitude(samples, dt)
	if err != nil {
		return 0, err
	}

	k := 0
	for i, m := range mags {
		if m > mags[k] {
			k = i
		}
	}
	if k == 0 || k == len(mags)-1 {
		return freqs[k], nil
	}

	a, b, c := mags[k-1], mags[k], mags[k+1]
	if a <= 0 || c <= 0 {
		return freqs[k], nil
	}
	la, lb, lc := math.Log(a), math.Log(b), math.Log(c)
	denom := la - 2*lb + lc
	if denom == 0 {
		return freqs[k], nil
	}
	p := 0.5 * (la - lc) / denom
	return freqs[k] + p*(freqs[1]-freqs[0]), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
