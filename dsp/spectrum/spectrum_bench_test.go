package spectrum

import (
	"testing"

	"github.com/cwbudde/dgwaveform/internal/testutil"
)

func BenchmarkPeakFrequency(b *testing.B) {
	x := testutil.DeterministicSine(300, 1.0/48000, 1, 2048)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PeakFrequency(x, 1.0/48000); err != nil {
			b.Fatal(err)
		}
	}
}
