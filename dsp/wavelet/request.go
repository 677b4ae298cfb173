package wavelet

import "math"

const (
	// DefaultOrder is the derivative order used when none is given.
	DefaultOrder = 2
	// DefaultPeakFrequency is the peak frequency in Hz used when none is given.
	DefaultPeakFrequency = 35.0
)

// Request holds the user-facing pulse parameters.
//
// Zero values of Oversample and Length mean "derive": Oversample becomes
// Order*Order and Length is computed from the causal delay.
type Request struct {
	Order         int
	PeakFrequency float64
	Oversample    int
	Length        int
	Shift         float64
	Sign          int
	Verbose       bool
}

// Option configures a Request.
type Option func(*Request)

// WithOrder sets the derivative order n.
func WithOrder(n int) Option {
	return func(r *Request) {
		r.Order = n
	}
}

// WithPeakFrequency sets the peak frequency in Hz.
func WithPeakFrequency(hz float64) Option {
	return func(r *Request) {
		r.PeakFrequency = hz
	}
}

// WithOversample sets nfpeak, the ratio of maximum to peak frequency.
func WithOversample(factor int) Option {
	return func(r *Request) {
		r.Oversample = factor
	}
}

// WithLength overrides the computed sample count.
func WithLength(samples int) Option {
	return func(r *Request) {
		r.Length = samples
	}
}

// WithShift adds a time shift in seconds on top of the causal delay.
// Positive values move the pulse to the right.
func WithShift(seconds float64) Option {
	return func(r *Request) {
		r.Shift = seconds
	}
}

// WithSign sets the polarity, +1 or -1.
func WithSign(sign int) Option {
	return func(r *Request) {
		r.Sign = sign
	}
}

// WithVerbose enables diagnostic output in callers that honour it.
func WithVerbose(verbose bool) Option {
	return func(r *Request) {
		r.Verbose = verbose
	}
}

// DefaultRequest returns the request produced when no option is given.
func DefaultRequest() Request {
	return Request{
		Order:         DefaultOrder,
		PeakFrequency: DefaultPeakFrequency,
		Sign:          1,
	}
}

// NewRequest applies options to the defaults and validates the result.
func NewRequest(opts ...Option) (Request, error) {
	r := DefaultRequest()
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	return r, nil
}

// EffectiveOversample returns nfpeak after applying the order-squared default.
func (r Request) EffectiveOversample() int {
	if r.Oversample == 0 {
		return r.Order * r.Order
	}
	return r.Oversample
}

// Validate checks the parameters that do not depend on derived quantities.
func (r Request) Validate() error {
	if r.Order < 1 {
		return configErrorf("n", "derivative order must be >= 1: %d", r.Order)
	}
	if r.PeakFrequency <= 0 || math.IsNaN(r.PeakFrequency) || math.IsInf(r.PeakFrequency, 0) {
		return configErrorf("fpeak", "peak frequency must be finite and > 0: %g", r.PeakFrequency)
	}
	if r.Oversample < 0 {
		return configErrorf("nfpeak", "frequency oversample must be >= 1: %d", r.Oversample)
	}
	if r.Length < 0 {
		return configErrorf("nt", "sample count must be >= 1: %d", r.Length)
	}
	if math.IsNaN(r.Shift) || math.IsInf(r.Shift, 0) {
		return configErrorf("shift", "shift must be finite: %g", r.Shift)
	}
	if err := validateSign(r.Sign); err != nil {
		return err
	}
	return nil
}

func validateSign(sign int) error {
	if sign != 1 && sign != -1 {
		return configErrorf("sign", "polarity must be 1 or -1: %d", sign)
	}
	return nil
}
