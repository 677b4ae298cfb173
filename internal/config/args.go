package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// NormalizeArgs rewrites Seismic Unix style key=value parameters into
// -key=value flags so both spellings are accepted.
func NormalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if !strings.HasPrefix(a, "-") && strings.Contains(a, "=") {
			a = "-" + a
		}
		out[i] = a
	}
	return out
}

// Parse builds Params from command line arguments (without the program
// name). A parameter file named by par= is applied first; explicitly given
// flags override it. Unknown parameters are an error.
func Parse(args []string, stderr io.Writer, usage func()) (Params, error) {
	var (
		cli     = Default()
		parFile string
	)

	fs := flag.NewFlagSet("dgwaveform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if usage != nil {
		fs.Usage = usage
	}

	fs.StringVar(&parFile, "par", "", "YAML parameter file")
	fs.IntVar(&cli.N, "n", cli.N, "order of derivative (n>=1)")
	fs.Float64Var(&cli.FPeak, "fpeak", cli.FPeak, "peak frequency in Hz")
	fs.IntVar(&cli.NFPeak, "nfpeak", 0, "max. frequency = nfpeak * fpeak (default n*n)")
	fs.IntVar(&cli.NT, "nt", 0, "length of waveform (default computed from the time shift)")
	fs.Float64Var(&cli.Shift, "shift", 0, "additional time shift in s; positive shifts right")
	fs.IntVar(&cli.Sign, "sign", cli.Sign, "use -1 to change sign")
	fs.BoolVar(&cli.Verbose, "verbose", false, "display diagnostic messages")
	fs.StringVar(&cli.Output.Path, "o", "", "output file (default stdout)")
	fs.StringVar(&cli.Output.Endian, "endian", cli.Output.Endian, "trace byte order: little or big")
	fs.StringVar(&cli.Output.MetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.StringVar(&cli.Logging.Format, "log-format", cli.Logging.Format, "diagnostic format: text or json")

	if err := fs.Parse(NormalizeArgs(args)); err != nil {
		return Params{}, err
	}
	if fs.NArg() > 0 {
		return Params{}, fmt.Errorf("unknown parameter %q", fs.Arg(0))
	}

	p, err := Load(parFile)
	if err != nil {
		return Params{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			p.N = cli.N
		case "fpeak":
			p.FPeak = cli.FPeak
		case "nfpeak":
			p.NFPeak = cli.NFPeak
		case "nt":
			p.NT = cli.NT
		case "shift":
			p.Shift = cli.Shift
		case "sign":
			p.Sign = cli.Sign
		case "verbose":
			p.Verbose = cli.Verbose
		case "o":
			p.Output.Path = cli.Output.Path
		case "endian":
			p.Output.Endian = cli.Output.Endian
		case "metrics-file":
			p.Output.MetricsFile = cli.Output.MetricsFile
		case "log-format":
			p.Logging.Format = cli.Logging.Format
		}
	})

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
