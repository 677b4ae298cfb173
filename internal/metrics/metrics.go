// Package metrics records per-run Prometheus metrics for batch use.
//
// The tool runs once per invocation, so nothing is served over HTTP; the
// collected values are written in the text exposition format for the node
// exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels runs that emitted a trace.
	OutcomeSuccess = "success"
	// OutcomeError labels runs that failed before emitting a trace.
	OutcomeError = "error"
)

const namespace = "dgwaveform"

// Recorder owns the collectors of a single run.
type Recorder struct {
	reg *prometheus.Registry

	runs           *prometheus.CounterVec
	samples        prometheus.Gauge
	sampleInterval prometheus.Gauge
	peakFrequency  prometheus.Gauge
	generation     prometheus.Histogram
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Waveform generation runs, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		samples: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "samples",
			Help:      "Number of samples in the emitted trace.",
		}),
		sampleInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sample_interval_seconds",
			Help:      "Sample interval of the emitted trace.",
		}),
		peakFrequency: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "peak_frequency_hertz",
			Help:      "Requested peak frequency of the wavelet.",
		}),
		generation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_seconds",
			Help:      "Time spent resolving and synthesizing the wavelet.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
		}),
	}
	r.reg.MustRegister(r.runs, r.samples, r.sampleInterval, r.peakFrequency, r.generation)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// ObserveTrace records the shape of the emitted trace.
func (r *Recorder) ObserveTrace(samples int, dt, fpeak float64, took time.Duration) {
	r.samples.Set(float64(samples))
	r.sampleInterval.Set(dt)
	r.peakFrequency.Set(fpeak)
	r.generation.Observe(took.Seconds())
}

// ObserveOutcome counts a finished run. Any label other than OutcomeError is
// recorded as success.
func (r *Recorder) ObserveOutcome(outcome string) {
	label := outcome
	if label != OutcomeError {
		label = OutcomeSuccess
	}
	r.runs.WithLabelValues(label).Inc()
}

// WriteTextfile writes all collected metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
