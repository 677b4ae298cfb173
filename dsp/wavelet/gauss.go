package wavelet

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/dgwaveform/dsp/hermite"
)

// Waveform is a sampled pulse together with its sample interval.
type Waveform struct {
	Samples        []float64
	SampleInterval float64 // seconds
}

// Len returns the number of samples.
func (w Waveform) Len() int {
	return len(w.Samples)
}

// Sigma returns the standard deviation in seconds of the Gaussian whose n-th
// derivative has its amplitude spectrum maximum at fpeak.
//
// The spectrum of the n-th derivative is proportional to
// f^n * exp(-2*pi^2*sigma^2*f^2), which peaks at f = sqrt(n)/(2*pi*sigma).
// For n=2 this gives the Ricker wavelet's sigma = 1/(sqrt(2)*pi*fpeak).
func Sigma(n int, fpeak float64) float64 {
	return math.Sqrt(float64(n)) / (2 * math.Pi * fpeak)
}

// GaussianDerivative returns d^n/dx^n exp(-x^2/2) = (-1)^n He_n(x) exp(-x^2/2).
// He_n overflows for large n and |x|; Generate uses the scaled
// hermite.Function instead.
func GaussianDerivative(n int, x float64) float64 {
	v := hermite.Eval(n, x) * math.Exp(-0.5*x*x)
	if n%2 == 1 {
		return -v
	}
	return v
}

// Generate samples sign times the n-th derivative of a Gaussian centred at
// plan.CausalDelay on the grid t_i = i*plan.SampleInterval.
//
// Derivatives are taken with respect to the normalized time
// x = (t-t0)/sigma and the result is scaled to unit peak magnitude, so the
// polarity of the largest lobe follows (-1)^n * sign. Samples are evaluated
// as (-1)^n He_n(x) exp(-x^2/2) / sqrt(n!), which differs from the
// derivative only by a constant the normalization removes.
func Generate(plan Plan, n int, fpeak float64, sign int) (Waveform, error) {
	if err := plan.Validate(); err != nil {
		return Waveform{}, err
	}
	if n < 1 {
		return Waveform{}, configErrorf("n", "derivative order must be >= 1: %d", n)
	}
	if fpeak <= 0 || math.IsNaN(fpeak) || math.IsInf(fpeak, 0) {
		return Waveform{}, configErrorf("fpeak", "peak frequency must be finite and > 0: %g", fpeak)
	}
	if err := validateSign(sign); err != nil {
		return Waveform{}, err
	}

	sigma := Sigma(n, fpeak)
	polarity := float64(sign)
	if n%2 == 1 {
		polarity = -polarity
	}
	out := make([]float64, plan.SampleCount)
	for i := range out {
		x := (float64(i)*plan.SampleInterval - plan.CausalDelay) / sigma
		v := hermite.Function(n, x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Waveform{}, configErrorf("n", "waveform not representable for order %d at sample %d", n, i)
		}
		out[i] = v
	}

	peak := vecmath.MaxAbs(out)
	if peak > 0 {
		vecmath.ScaleBlockInPlace(out, polarity/peak)
	}

	return Waveform{Samples: out, SampleInterval: plan.SampleInterval}, nil
}

// FromRequest resolves req and generates its pulse in one step.
func FromRequest(req Request) (Plan, Waveform, error) {
	plan, err := Resolve(req)
	if err != nil {
		return Plan{}, Waveform{}, err
	}
	w, err := Generate(plan, req.Order, req.PeakFrequency, req.Sign)
	if err != nil {
		return Plan{}, Waveform{}, err
	}
	return plan, w, nil
}
