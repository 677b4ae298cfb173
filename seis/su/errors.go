package su

import "errors"

var (
	// ErrTooManySamples reports a trace longer than the 16-bit ns field allows.
	ErrTooManySamples = errors.New("su: sample count exceeds 65535")
	// ErrIntervalOverflow reports a sample interval that does not fit the
	// 16-bit dt field in microseconds.
	ErrIntervalOverflow = errors.New("su: sample interval out of range for dt field")
	// ErrShortHeader reports a stream that ends inside a trace header.
	ErrShortHeader = errors.New("su: truncated trace header")
	// ErrShortData reports a stream that ends inside the trace samples.
	ErrShortData = errors.New("su: truncated trace data")
	// ErrClosed reports a write after Close.
	ErrClosed = errors.New("su: writer closed")
)
