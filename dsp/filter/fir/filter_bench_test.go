package fir

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/filter/design"
)

func BenchmarkProcessSample(b *testing.B) {
	for _, taps := range []int{8, 32, 128, 512} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			coeffs := make([]float64, taps)
			for i := range coeffs {
				coeffs[i] = 1.0 / float64(taps)
			}

			f := New(coeffs)

			x := 1.0
			for b.Loop() {
				x = f.ProcessSample(x)
			}

			_ = x
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, taps := range []int{8, 32, 128, 512} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			coeffs := make([]float64, taps)
			for i := range coeffs {
				coeffs[i] = 1.0 / float64(taps)
			}

			f := New(coeffs)

			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = float64(i) * 0.001
			}

			b.SetBytes(1024 * 8)
			b.ResetTimer()

			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}

func BenchmarkDigitalFilter(b *testing.B) {
	for _, atten := range []float64{40, 60, 80} {
		b.Run(fmt.Sprintf("atten=%g", atten), func(b *testing.B) {
			win, err := NewKaiserWindow(0.05, atten)
			if err != nil {
				b.Fatal(err)
			}

			shape := design.Lowpass{W: 0.25}

			b.ReportAllocs()

			for b.Loop() {
				if _, err := DigitalFilter(shape, win); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
