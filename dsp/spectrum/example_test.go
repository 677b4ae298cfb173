package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/dgwaveform/dsp/spectrum"
	"github.com/cwbudde/dgwaveform/dsp/wavelet"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExamplePeakFrequency() {
	req, _ := wavelet.NewRequest(wavelet.WithOrder(2), wavelet.WithPeakFrequency(35))
	_, w, err := wavelet.FromRequest(req)
	if err != nil {
		panic(err)
	}
	f, err := spectrum.PeakFrequency(w.Samples, w.SampleInterval)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f Hz\n", f)
	// Output:
	// 35 Hz
}
