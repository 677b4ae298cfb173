package su

import (
	"fmt"
	"math"
)

// HeaderSize is the size in bytes of an SU trace header.
const HeaderSize = 240

// Byte offsets of the named header fields.
const (
	offTracl = 0   // int32, trace sequence number within line
	offTrid  = 28  // int16, trace identification code
	offNs    = 114 // uint16, number of samples
	offDt    = 116 // uint16, sample interval in microseconds
	offNtr   = 204 // int32, number of traces (SU extension)
)

// TridSeismic is the trace identification code for seismic data. NewTrace
// writes it, as sudgwaveform does, rather than 0 (unknown).
const TridSeismic = 1

// MaxSamples is the largest sample count the ns field can carry.
const MaxSamples = math.MaxUint16

// Header holds the trace header fields set by this module.
type Header struct {
	Tracl int32
	Trid  int16
	Ns    uint16
	Dt    uint16 // microseconds
	Ntr   int32
}

// Trace is one SU record.
type Trace struct {
	Header Header
	Data   []float32
}

// NewTrace builds the single-trace record for a synthesized pulse sampled
// every dt seconds: tracl=1, trid=1, ns=len(samples), dt in microseconds,
// ntr=1. Samples are converted to single precision.
func NewTrace(samples []float64, dt float64) (*Trace, error) {
	if len(samples) > MaxSamples {
		return nil, fmt.Errorf("%w: %d", ErrTooManySamples, len(samples))
	}
	us := math.Round(dt * 1e6)
	if !(us >= 1) || us > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %g s", ErrIntervalOverflow, dt)
	}

	data := make([]float32, len(samples))
	for i, v := range samples {
		data[i] = float32(v)
	}

	return &Trace{
		Header: Header{
			Tracl: 1,
			Trid:  TridSeismic,
			Ns:    uint16(len(samples)),
			Dt:    uint16(us),
			Ntr:   1,
		},
		Data: data,
	}, nil
}

// SampleInterval returns the header sample interval in seconds.
func (h Header) SampleInterval() float64 {
	return float64(h.Dt) * 1e-6
}
