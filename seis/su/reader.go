package su

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Reader decodes SU traces from a stream.
type Reader struct {
	r     *bufio.Reader
	order binary.ByteOrder
	hdr   [HeaderSize]byte
}

// NewReader returns a Reader on r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := applyOptions(opts)
	return &Reader{r: bufio.NewReader(r), order: o.order}
}

// Read returns the next trace, or io.EOF at a clean end of stream.
func (r *Reader) Read() (*Trace, error) {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortHeader
		}
		return nil, fmt.Errorf("su: read header: %w", err)
	}

	h := Header{
		Tracl: int32(r.order.Uint32(r.hdr[offTracl:])),
		Trid:  int16(r.order.Uint16(r.hdr[offTrid:])),
		Ns:    r.order.Uint16(r.hdr[offNs:]),
		Dt:    r.order.Uint16(r.hdr[offDt:]),
		Ntr:   int32(r.order.Uint32(r.hdr[offNtr:])),
	}

	raw := make([]byte, 4*int(h.Ns))
	if _, err := io.ReadFull(r.r, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortData
		}
		return nil, fmt.Errorf("su: read data: %w", err)
	}
	data := make([]float32, h.Ns)
	for i := range data {
		data[i] = math.Float32frombits(r.order.Uint32(raw[4*i:]))
	}

	return &Trace{Header: h, Data: data}, nil
}

// ReadAll reads traces until end of stream.
func (r *Reader) ReadAll() ([]*Trace, error) {
	var out []*Trace
	for {
		tr, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tr)
	}
}
