package wavelet

import (
	"errors"
	"math"
	"testing"
)

func TestResolveDefaultScenario(t *testing.T) {
	req, err := NewRequest(WithOrder(2), WithPeakFrequency(35))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if got := req.EffectiveOversample(); got != 4 {
		t.Fatalf("nfpeak = %d, want 4", got)
	}

	plan, err := Resolve(req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	const eps = 1e-4
	if math.Abs(plan.MaxFrequency-140) > eps {
		t.Fatalf("MaxFrequency = %v, want 140", plan.MaxFrequency)
	}
	if math.Abs(plan.SampleInterval-0.0035714) > eps {
		t.Fatalf("SampleInterval = %v, want 0.0035714", plan.SampleInterval)
	}
	if math.Abs(plan.CausalDelay-0.04040) > eps {
		t.Fatalf("CausalDelay = %v, want 0.04040", plan.CausalDelay)
	}
	// 2*t0/dt + 1 = 23.627
	if plan.SampleCount != 24 {
		t.Fatalf("SampleCount = %d, want 24", plan.SampleCount)
	}
	if plan.SampleIntervalMicros() != 3571 {
		t.Fatalf("SampleIntervalMicros = %d, want 3571", plan.SampleIntervalMicros())
	}
}

func TestResolveFirstOrderUsesUnitOversample(t *testing.T) {
	req, err := NewRequest(WithOrder(1), WithPeakFrequency(35))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	plan, err := Resolve(req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if req.EffectiveOversample() != 1 {
		t.Fatalf("nfpeak = %d, want 1", req.EffectiveOversample())
	}
	if plan.MaxFrequency != req.PeakFrequency {
		t.Fatalf("MaxFrequency = %v, want %v", plan.MaxFrequency, req.PeakFrequency)
	}

	second, err := Resolve(DefaultRequest())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if plan.MaxFrequency >= second.MaxFrequency {
		t.Fatalf("n=1 fmax %v should be below n=2 fmax %v", plan.MaxFrequency, second.MaxFrequency)
	}
}

func TestResolveExplicitLength(t *testing.T) {
	for _, opts := range [][]Option{
		{WithLength(128)},
		{WithLength(128), WithOrder(7), WithPeakFrequency(90)},
		{WithLength(128), WithShift(0.5), WithOversample(3)},
	} {
		req, err := NewRequest(opts...)
		if err != nil {
			t.Fatalf("NewRequest() error = %v", err)
		}
		plan, w, err := FromRequest(req)
		if err != nil {
			t.Fatalf("FromRequest() error = %v", err)
		}
		if plan.SampleCount != 128 || w.Len() != 128 {
			t.Fatalf("length = %d/%d, want 128", plan.SampleCount, w.Len())
		}
	}
}

func TestResolveRejectsBadOrder(t *testing.T) {
	for _, n := range []int{0, -1} {
		req := DefaultRequest()
		req.Order = n
		_, err := Resolve(req)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Resolve(n=%d) error = %v, want ConfigurationError", n, err)
		}
		if cfgErr.Field != "n" {
			t.Fatalf("Field = %q, want n", cfgErr.Field)
		}
	}
}

func TestResolveRejectsPrecisionOverflow(t *testing.T) {
	req := DefaultRequest()
	req.Oversample = 10000
	req.PeakFrequency = 1000
	_, err := Resolve(req)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Resolve() error = %v, want ConfigurationError", err)
	}
}

func TestResolveAcceptsIntervalAtLimit(t *testing.T) {
	// dt = 0.5 / (1 * 500000) = 1e-6
	req := DefaultRequest()
	req.Oversample = 1
	req.PeakFrequency = 500000
	plan, err := Resolve(req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if plan.SampleInterval < MinSampleInterval {
		t.Fatalf("SampleInterval = %v below limit", plan.SampleInterval)
	}
}

func TestResolveRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Request)
		field string
	}{
		{"zero fpeak", func(r *Request) { r.PeakFrequency = 0 }, "fpeak"},
		{"negative fpeak", func(r *Request) { r.PeakFrequency = -35 }, "fpeak"},
		{"nan fpeak", func(r *Request) { r.PeakFrequency = math.NaN() }, "fpeak"},
		{"negative nfpeak", func(r *Request) { r.Oversample = -2 }, "nfpeak"},
		{"negative nt", func(r *Request) { r.Length = -5 }, "nt"},
		{"bad sign", func(r *Request) { r.Sign = 2 }, "sign"},
		{"zero sign", func(r *Request) { r.Sign = 0 }, "sign"},
		{"inf shift", func(r *Request) { r.Shift = math.Inf(1) }, "shift"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultRequest()
			tt.mod(&req)
			_, err := Resolve(req)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Resolve() error = %v, want ConfigurationError", err)
			}
			if cfgErr.Field != tt.field {
				t.Fatalf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestResolveValidInputsInvariants(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for _, fpeak := range []float64{1, 10, 35, 300, 2000} {
			for _, shift := range []float64{-1, 0, 0.01} {
				req := DefaultRequest()
				req.Order = n
				req.PeakFrequency = fpeak
				req.Shift = shift
				plan, err := Resolve(req)
				if err != nil {
					var cfgErr *ConfigurationError
					if !errors.As(err, &cfgErr) {
						t.Fatalf("unexpected error type %T", err)
					}
					continue
				}
				if plan.SampleCount < 1 {
					t.Fatalf("n=%d fpeak=%v shift=%v: SampleCount = %d", n, fpeak, shift, plan.SampleCount)
				}
				if plan.SampleInterval <= 0 {
					t.Fatalf("n=%d fpeak=%v: SampleInterval = %v", n, fpeak, plan.SampleInterval)
				}
			}
		}
	}
}

func TestNewRequestDefaults(t *testing.T) {
	req, err := NewRequest()
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if req.Order != 2 || req.PeakFrequency != 35 || req.Sign != 1 || req.Shift != 0 || req.Length != 0 {
		t.Fatalf("unexpected defaults: %+v", req)
	}

	if _, err := NewRequest(WithOrder(0)); err == nil {
		t.Fatal("expected error for order 0")
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Field: "n", Msg: "derivative order must be >= 1: 0"}
	if got := err.Error(); got != "wavelet: n: derivative order must be >= 1: 0" {
		t.Fatalf("Error() = %q", got)
	}
	bare := &ConfigurationError{Msg: "bad"}
	if got := bare.Error(); got != "wavelet: bad" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestResolveRejectsOversizedCounts(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"huge positive shift", []Option{WithShift(1e20)}},
		{"huge negative shift", []Option{WithShift(-1e20)}},
		{"shift beyond header capacity", []Option{WithShift(200)}},
		{"explicit nt above header capacity", []Option{WithLength(70000)}},
		{"explicit nt far above header capacity", []Option{WithLength(50000000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(tt.opts...)
			if err != nil {
				t.Fatalf("NewRequest() error = %v", err)
			}
			plan, err := Resolve(req)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Resolve() = %+v, %v, want ConfigurationError", plan, err)
			}
		})
	}
}

func TestResolveCountAtHeaderCapacity(t *testing.T) {
	req, err := NewRequest(WithLength(MaxSampleCount))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	plan, err := Resolve(req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if plan.SampleCount != MaxSampleCount {
		t.Fatalf("SampleCount = %d, want %d", plan.SampleCount, MaxSampleCount)
	}
}

func TestResolveSmallNegativeShiftKeepsOneSample(t *testing.T) {
	// t0 = 0.0404 - 0.05 < 0, so 2*t0/dt + 1 rounds to -4.
	req, err := NewRequest(WithShift(-0.05))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	plan, err := Resolve(req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if plan.SampleCount != 1 {
		t.Fatalf("SampleCount = %d, want 1", plan.SampleCount)
	}
}
