package su

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type options struct {
	order binary.ByteOrder
}

// Option configures a Writer or Reader.
type Option func(*options)

// WithByteOrder selects the byte order of headers and samples.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{order: binary.LittleEndian}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Writer emits SU traces to an underlying stream.
type Writer struct {
	w      *bufio.Writer
	order  binary.ByteOrder
	hdr    [HeaderSize]byte
	count  int
	closed bool
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	o := applyOptions(opts)
	return &Writer{w: bufio.NewWriter(w), order: o.order}
}

// Write encodes tr. Ns is taken from the header and must match len(tr.Data).
func (w *Writer) Write(tr *Trace) error {
	if w.closed {
		return ErrClosed
	}
	if int(tr.Header.Ns) != len(tr.Data) {
		return fmt.Errorf("su: header ns %d does not match %d samples", tr.Header.Ns, len(tr.Data))
	}

	clear(w.hdr[:])
	w.order.PutUint32(w.hdr[offTracl:], uint32(tr.Header.Tracl))
	w.order.PutUint16(w.hdr[offTrid:], uint16(tr.Header.Trid))
	w.order.PutUint16(w.hdr[offNs:], tr.Header.Ns)
	w.order.PutUint16(w.hdr[offDt:], tr.Header.Dt)
	w.order.PutUint32(w.hdr[offNtr:], uint32(tr.Header.Ntr))
	if _, err := w.w.Write(w.hdr[:]); err != nil {
		return fmt.Errorf("su: write header: %w", err)
	}

	var buf [4]byte
	for _, v := range tr.Data {
		w.order.PutUint32(buf[:], math.Float32bits(v))
		if _, err := w.w.Write(buf[:]); err != nil {
			return fmt.Errorf("su: write data: %w", err)
		}
	}
	w.count++
	return nil
}

// Count returns the number of traces written.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered output, marking the end of the trace stream.
// It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("su: flush: %w", err)
	}
	return nil
}
