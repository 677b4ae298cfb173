// Package config collects the dgwaveform parameters from defaults, an
// optional YAML parameter file and the command line.
package config

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/dgwaveform/dsp/wavelet"
)

// Params holds every tunable of a run.
type Params struct {
	N       int     `yaml:"n"`
	FPeak   float64 `yaml:"fpeak"`
	NFPeak  int     `yaml:"nfpeak"` // 0 means n*n
	NT      int     `yaml:"nt"`     // 0 means computed
	Shift   float64 `yaml:"shift"`
	Sign    int     `yaml:"sign"`
	Verbose bool    `yaml:"verbose"`

	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Output controls where and how the trace is written.
type Output struct {
	Path        string `yaml:"path"` // empty or "-" means stdout
	Endian      string `yaml:"endian"`
	MetricsFile string `yaml:"metricsFile"`
}

// Logging controls diagnostic output on stderr.
type Logging struct {
	Format string `yaml:"format"` // text or json
}

// Default returns the parameters used when nothing is specified.
func Default() Params {
	return Params{
		N:     wavelet.DefaultOrder,
		FPeak: wavelet.DefaultPeakFrequency,
		Sign:  1,
		Output: Output{
			Endian: "little",
		},
		Logging: Logging{
			Format: "text",
		},
	}
}

// Load reads a YAML parameter file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Params, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Params{}, fmt.Errorf("parameter file %s not found: %w", path, err)
		}
		return Params{}, fmt.Errorf("read parameter file: %w", err)
	}
	if err := Decode(data, &p); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Decode unmarshals YAML into p, rejecting unknown keys.
func Decode(data []byte, p *Params) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse parameter file: %w", err)
	}
	return nil
}

// Validate checks the output and logging settings. Waveform parameters are
// validated by the wavelet package.
func (p Params) Validate() error {
	if _, err := p.ByteOrder(); err != nil {
		return err
	}
	switch strings.ToLower(p.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json: %q", p.Logging.Format)
	}
	return nil
}

// ByteOrder returns the trace byte order named by Output.Endian.
func (p Params) ByteOrder() (binary.ByteOrder, error) {
	switch strings.ToLower(p.Output.Endian) {
	case "", "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("endian must be little or big: %q", p.Output.Endian)
}

// JSONLogs reports whether logs should be emitted as JSON.
func (p Params) JSONLogs() bool {
	return strings.EqualFold(p.Logging.Format, "json")
}

// Request converts the waveform parameters into a validated wavelet.Request.
func (p Params) Request() (wavelet.Request, error) {
	return wavelet.NewRequest(
		wavelet.WithOrder(p.N),
		wavelet.WithPeakFrequency(p.FPeak),
		wavelet.WithOversample(p.NFPeak),
		wavelet.WithLength(p.NT),
		wavelet.WithShift(p.Shift),
		wavelet.WithSign(p.Sign),
		wavelet.WithVerbose(p.Verbose),
	)
}
