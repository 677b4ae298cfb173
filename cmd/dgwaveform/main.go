// Command dgwaveform writes a Gaussian-derivative waveform as one Seismic
// Unix trace.
//
// Usage:
//
//	dgwaveform [parameters] > out.su
//
// Parameters may be given as flags (-n=2) or in Seismic Unix style (n=2).
//
// Examples:
//
//	dgwaveform n=1 > ricker2.su
//	dgwaveform n=2 > ricker3.su
//	dgwaveform n=10 fpeak=300 > sonic.su
//	dgwaveform -par wavelet.yaml -o pulse.su
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/dgwaveform/dsp/spectrum"
	"github.com/cwbudde/dgwaveform/dsp/wavelet"
	"github.com/cwbudde/dgwaveform/internal/config"
	"github.com/cwbudde/dgwaveform/internal/logging"
	"github.com/cwbudde/dgwaveform/internal/metrics"
	"github.com/cwbudde/dgwaveform/seis/su"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "DGWAVEFORM - make Gaussian derivative waveform in SU format\n\n")
		fmt.Fprintf(w, "Usage: dgwaveform [parameters] > stdout\n\n")
		fmt.Fprintf(w, "Parameters (flag -key=value or key=value):\n")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  n=2\torder of derivative (n>=1)\n")
		fmt.Fprintf(tw, "  fpeak=35\tpeak frequency in Hz\n")
		fmt.Fprintf(tw, "  nfpeak=n*n\tmax. frequency = nfpeak * fpeak\n")
		fmt.Fprintf(tw, "  nt=computed\tlength of waveform\n")
		fmt.Fprintf(tw, "  shift=0\tadditional time shift in s (used for plotting)\n")
		fmt.Fprintf(tw, "  sign=1\tuse -1 to change sign\n")
		fmt.Fprintf(tw, "  verbose=0\t1 displays diagnostic messages\n")
		fmt.Fprintf(tw, "  par=\tYAML parameter file, overridden by explicit parameters\n")
		fmt.Fprintf(tw, "  o=-\toutput file\n")
		fmt.Fprintf(tw, "  endian=little\ttrace byte order, little or big\n")
		fmt.Fprintf(tw, "  log-format=text\tdiagnostic format, text or json\n")
		fmt.Fprintf(tw, "  metrics-file=\tPrometheus textfile to write after the run\n")
		_ = tw.Flush()
		fmt.Fprintf(w, "\nThe waveform is the n-th derivative of a Gaussian whose variance is set\n")
		fmt.Fprintf(w, "by the peak frequency, the frequency at which the amplitude spectrum of the\n")
		fmt.Fprintf(w, "derivative has its maximum. nfpeak sets the maximum frequency and hence\n")
		fmt.Fprintf(w, "the sampling interval; larger values give smoother plots. The pulse is\n")
		fmt.Fprintf(w, "delayed by sqrt(n)/fpeak to make it pseudo-causal; shift adds to that.\n")
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  dgwaveform n=1 > ricker2.su\n")
		fmt.Fprintf(w, "  dgwaveform n=2 > ricker3.su\n")
		fmt.Fprintf(w, "  dgwaveform n=10 fpeak=300 > sonic.su\n")
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	params, err := config.Parse(args, stderr, usage(stderr))
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("invalid parameters", slog.Any("error", err))
		return 2
	}

	level := "info"
	if params.Verbose {
		level = "debug"
	}
	logger := logging.New(stderr, level, params.JSONLogs())

	rec := metrics.NewRecorder()
	err = generate(params, stdout, logger, rec)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
		logger.Error("waveform not written", slog.Any("error", err))
	}
	rec.ObserveOutcome(outcome)
	if params.Output.MetricsFile != "" {
		if werr := rec.WriteTextfile(params.Output.MetricsFile); werr != nil {
			logger.Error("failed to write metrics", slog.String("path", params.Output.MetricsFile), slog.Any("error", werr))
			if err == nil {
				return 1
			}
		}
	}
	if err != nil {
		return 1
	}
	return 0
}

func generate(params config.Params, stdout io.Writer, logger *slog.Logger, rec *metrics.Recorder) error {
	start := time.Now()

	req, err := params.Request()
	if err != nil {
		return err
	}
	plan, err := wavelet.Resolve(req)
	if err != nil {
		return err
	}
	logger.Info("sampling plan",
		slog.Int("n", req.Order),
		slog.Float64("fpeak", req.PeakFrequency),
		slog.Float64("fmax", plan.MaxFrequency),
		slog.Float64("t0", plan.CausalDelay),
		slog.Int("nt", plan.SampleCount),
		slog.String("dt", fmt.Sprintf("%.12f", plan.SampleInterval)),
	)

	w, err := wavelet.Generate(plan, req.Order, req.PeakFrequency, req.Sign)
	if err != nil {
		return err
	}
	logger.Debug("waveform computed", slog.Int("samples", w.Len()))
	rec.ObserveTrace(w.Len(), w.SampleInterval, req.PeakFrequency, time.Since(start))

	if req.Verbose {
		if f, err := spectrum.PeakFrequency(w.Samples, w.SampleInterval); err != nil {
			logger.Debug("peak frequency not measured", slog.Any("error", err))
		} else {
			logger.Debug("measured peak frequency", slog.Float64("hz", f))
		}
	}

	tr, err := su.NewTrace(w.Samples, w.SampleInterval)
	if err != nil {
		return err
	}
	order, err := params.ByteOrder()
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(params.Output.Path, stdout)
	if err != nil {
		return err
	}
	sw := su.NewWriter(out, su.WithByteOrder(order))
	if err := sw.Write(tr); err != nil {
		_ = closeOut()
		return err
	}
	if err := sw.Close(); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Info("waveform written", slog.String("output", outputName(params.Output.Path)))
	return nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func outputName(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
