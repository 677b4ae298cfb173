// Package wavelet synthesizes Gaussian-derivative source pulses.
//
// A [Request] describes the pulse (derivative order, peak frequency and the
// sampling knobs). [Resolve] turns it into a [Plan] holding the sample
// interval, causal delay and trace length, and [Generate] evaluates the
// n-th derivative of the Gaussian on that grid:
//
//	req, err := wavelet.NewRequest(wavelet.WithOrder(2), wavelet.WithPeakFrequency(35))
//	plan, err := wavelet.Resolve(req)
//	w, err := wavelet.Generate(plan, req.Order, req.PeakFrequency, req.Sign)
//
// The n=2 pulse is the Ricker wavelet.
package wavelet
