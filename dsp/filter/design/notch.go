package design

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
)

// Notch designs a single biquad that rejects freq (Hz) with the given -3 dB
// bandwidth (Hz), after Orfanidis. The section has an exact zero at the
// notch frequency and unity gain at DC and Nyquist. Frequencies are
// normalized against the sample rate from the options, default 2.
func Notch(freq, bandwidth float64, opts ...ShapeOption) (biquad.Coefficients, error) {
	cfg := applyShapeOptions(opts)

	w, err := normalizeFreq(freq, cfg.sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	bw, err := normalizeFreq(bandwidth, cfg.sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	b := 1 / (1 + math.Tan(math.Pi*bw/2))
	cw := math.Cos(math.Pi * w)

	return biquad.Coefficients{
		B0: b,
		B1: -2 * b * cw,
		B2: b,
		A1: -2 * b * cw,
		A2: 2*b - 1,
	}, nil
}
