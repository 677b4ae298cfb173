package wavelet

import "math"

// MinSampleInterval is the smallest sample interval in seconds a plan may use.
// Finer grids exceed what the single-precision trace format can represent.
const MinSampleInterval = 1e-6

// MaxSampleCount is the longest plan Resolve accepts, the capacity of the
// 16-bit sample count field of a trace header.
const MaxSampleCount = math.MaxUint16

// Plan is the sampling grid derived from a Request.
type Plan struct {
	SampleInterval float64 // seconds
	CausalDelay    float64 // seconds, t0
	MaxFrequency   float64 // Hz
	SampleCount    int
}

// Resolve derives the sampling plan for req:
//
//	fmax = nfpeak * fpeak
//	dt   = 0.5 / fmax
//	t0   = shift + sqrt(n) / fpeak
//	nt   = req.Length, or round(2*t0/dt + 1)
//
// A computed nt slightly below 1 is raised to 1. Counts above
// MaxSampleCount, non-finite counts, and negative shifts so large that the
// pulse lies more than MaxSampleCount samples before time zero are
// configuration errors.
func Resolve(req Request) (Plan, error) {
	if err := req.Validate(); err != nil {
		return Plan{}, err
	}

	nfpeak := req.EffectiveOversample()
	fmax := float64(nfpeak) * req.PeakFrequency
	dt := 0.5 / fmax
	if !(dt >= MinSampleInterval) {
		return Plan{}, configErrorf("nfpeak",
			"frequency parameters exceed representable precision (dt=%g s); reduce oversample factor or peak frequency", dt)
	}

	t0 := req.Shift + math.Sqrt(float64(req.Order))/req.PeakFrequency

	nt := req.Length
	if nt > MaxSampleCount {
		return Plan{}, configErrorf("nt", "sample count must be <= %d: %d", MaxSampleCount, nt)
	}
	if nt == 0 {
		count := math.Round(2*t0/dt + 1)
		switch {
		case math.IsNaN(count) || math.IsInf(count, 0):
			return Plan{}, configErrorf("shift", "computed sample count is not finite (t0=%g s)", t0)
		case count > MaxSampleCount:
			return Plan{}, configErrorf("shift",
				"computed sample count %g exceeds %d; reduce shift or oversample factor, or set nt", count, MaxSampleCount)
		case count < -MaxSampleCount:
			return Plan{}, configErrorf("shift", "shift moves the pulse %g samples before time zero", -count)
		case count < 1:
			nt = 1
		default:
			nt = int(count)
		}
	}

	return Plan{
		SampleInterval: dt,
		CausalDelay:    t0,
		MaxFrequency:   fmax,
		SampleCount:    nt,
	}, nil
}

// SampleIntervalMicros returns the interval rounded to whole microseconds,
// the unit of the trace header dt field.
func (p Plan) SampleIntervalMicros() int {
	return int(math.Round(p.SampleInterval * 1e6))
}

// Duration returns the time covered by the plan in seconds.
func (p Plan) Duration() float64 {
	return float64(p.SampleCount-1) * p.SampleInterval
}

// Validate reports whether the plan describes a usable grid.
func (p Plan) Validate() error {
	if p.SampleCount < 1 || p.SampleCount > MaxSampleCount {
		return configErrorf("nt", "sample count must be in [1, %d]: %d", MaxSampleCount, p.SampleCount)
	}
	if !(p.SampleInterval >= MinSampleInterval) || math.IsInf(p.SampleInterval, 0) {
		return configErrorf("dt", "sample interval must be finite and >= %g s: %g", MinSampleInterval, p.SampleInterval)
	}
	if math.IsNaN(p.CausalDelay) || math.IsInf(p.CausalDelay, 0) {
		return configErrorf("t0", "causal delay must be finite: %g", p.CausalDelay)
	}
	return nil
}
