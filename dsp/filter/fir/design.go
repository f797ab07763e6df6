package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/dsp/filter/design"
	"github.com/cwbudde/algo-filter/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Window specifies the taper for a window-method FIR design: the window
// coefficients, whose length fixes the tap count, and whether the designed
// taps are rescaled to unity gain at the band's reference frequency.
type Window struct {
	Coeffs []float64
	Scale  bool
}

// NewWindow wraps explicit window coefficients with rescaling enabled.
// Set Scale to false on the result to keep the raw windowed-sinc gain.
func NewWindow(coeffs []float64) Window {
	return Window{Coeffs: append([]float64(nil), coeffs...), Scale: true}
}

// NewKaiserWindow builds a Kaiser window sized by KaiserOrder for the given
// transition width (a fraction of Nyquist) and stopband attenuation in dB.
func NewKaiserWindow(transitionWidth, attenuationDB float64) (Window, error) {
	n, alpha, err := KaiserOrder(transitionWidth, attenuationDB)
	if err != nil {
		return Window{}, err
	}

	coeffs, err := window.Kaiser(n, math.Pi*alpha)
	if err != nil {
		return Window{}, err
	}

	return Window{Coeffs: coeffs, Scale: true}, nil
}

// KaiserOrder estimates the tap count and Kaiser shape parameter for a
// window-method design with the given transition width (a fraction of
// Nyquist) and stopband attenuation in dB.
//
// The returned shape parameter is beta/pi; multiply by pi before passing it
// to window.Kaiser. Attenuations below 21 dB yield a rectangular window
// (shape parameter 0).
func KaiserOrder(transitionWidth, attenuationDB float64) (int, float64, error) {
	if !(transitionWidth > 0) || math.IsInf(transitionWidth, 0) {
		return 0, 0, fmt.Errorf("%w: transition width must be positive", ErrInvalidParam)
	}

	if !(attenuationDB >= 0) {
		return 0, 0, fmt.Errorf("%w: attenuation must be non-negative", ErrInvalidParam)
	}

	n := int(math.Ceil((attenuationDB-7.95)/(2.285*math.Pi*transitionWidth))) + 1
	if n < 1 {
		n = 1
	}

	var beta float64

	switch {
	case attenuationDB > 50:
		beta = 0.1102 * (attenuationDB - 8.7)
	case attenuationDB >= 21:
		beta = 0.5842*math.Pow(attenuationDB-21, 0.4) + 0.07886*(attenuationDB-21)
	}

	return n, beta / math.Pi, nil
}

// DigitalFilter designs FIR taps for the band shape by the window method:
// the ideal windowed-sinc prototype for len(win.Coeffs) taps is multiplied
// elementwise by the window, then rescaled to unity gain at the shape's
// reference frequency (DC, Nyquist, or the band midpoint) when win.Scale is
// set. Highpass and bandstop shapes require an odd tap count.
func DigitalFilter(shape design.Shape, win Window) ([]float64, error) {
	if len(win.Coeffs) == 0 {
		return nil, fmt.Errorf("%w: window must not be empty", ErrInvalidParam)
	}

	proto, err := prototype(len(win.Coeffs), shape)
	if err != nil {
		return nil, err
	}

	if len(proto) != len(win.Coeffs) {
		panic("fir: prototype length diverged from window length")
	}

	taps := make([]float64, len(proto))
	vecmath.MulBlock(taps, proto, win.Coeffs)

	if win.Scale {
		scale := scaleFactor(taps, shape)
		if scale == 0 {
			return nil, fmt.Errorf("%w: zero gain at the scaling frequency", ErrInvalidParam)
		}

		vecmath.ScaleBlock(taps, taps, 1/scale)
	}

	return taps, nil
}

// prototype returns the ideal impulse response for n taps of the shape.
// Highpass and bandstop are built by spectral inversion: negate the
// complementary response and add a unit impulse at the center tap, which
// only exists when n is odd.
func prototype(n int, shape design.Shape) ([]float64, error) {
	switch s := shape.(type) {
	case design.Lowpass:
		if err := checkEdge(s.W); err != nil {
			return nil, err
		}

		return lowpassTaps(n, s.W), nil

	case design.Highpass:
		if err := checkEdge(s.W); err != nil {
			return nil, err
		}

		if n%2 == 0 {
			return nil, fmt.Errorf("%w: highpass needs an odd tap count, got %d", ErrEvenTaps, n)
		}

		taps := lowpassTaps(n, s.W)
		invert(taps)

		return taps, nil

	case design.Bandpass:
		if err := checkBand(s.W1, s.W2); err != nil {
			return nil, err
		}

		return bandpassTaps(n, s.W1, s.W2), nil

	case design.Bandstop:
		if err := checkBand(s.W1, s.W2); err != nil {
			return nil, err
		}

		if n%2 == 0 {
			return nil, fmt.Errorf("%w: bandstop needs an odd tap count, got %d", ErrEvenTaps, n)
		}

		taps := bandpassTaps(n, s.W1, s.W2)
		invert(taps)

		return taps, nil
	}

	return nil, fmt.Errorf("%w: unsupported band shape %T", ErrInvalidParam, shape)
}

// scaleFactor evaluates the unscaled response at the shape's reference
// frequency: DC for lowpass and bandstop, Nyquist for highpass, the band
// midpoint for bandpass.
func scaleFactor(taps []float64, shape design.Shape) float64 {
	switch s := shape.(type) {
	case design.Lowpass, design.Bandstop:
		sum := 0.0
		for _, t := range taps {
			sum += t
		}

		return sum

	case design.Highpass:
		sum := 0.0
		for k, t := range taps {
			if k%2 == 0 {
				sum += t
			} else {
				sum -= t
			}
		}

		return sum

	case design.Bandpass:
		center := float64(len(taps)-1) / 2
		mid := (s.W1 + s.W2) / 2

		sum := 0.0
		for k, t := range taps {
			sum += t * math.Cos(math.Pi*mid*(float64(k)-center))
		}

		return sum
	}

	panic("fir: unsupported band shape in scaleFactor")
}

func lowpassTaps(n int, w float64) []float64 {
	taps := make([]float64, n)
	center := float64(n-1) / 2

	for k := range taps {
		taps[k] = w * sinc(w*(float64(k)-center))
	}

	return taps
}

func bandpassTaps(n int, w1, w2 float64) []float64 {
	taps := make([]float64, n)
	center := float64(n-1) / 2

	for k := range taps {
		m := float64(k) - center
		taps[k] = w2*sinc(w2*m) - w1*sinc(w1*m)
	}

	return taps
}

func invert(taps []float64) {
	for i := range taps {
		taps[i] = -taps[i]
	}

	taps[(len(taps)-1)/2]++
}

func checkEdge(w float64) error {
	if !(w > 0) {
		return fmt.Errorf("%w: frequency must be positive", ErrInvalidParam)
	}

	if w >= 1 {
		return fmt.Errorf("%w: frequency must be less than the Nyquist frequency", ErrInvalidParam)
	}

	return nil
}

func checkBand(w1, w2 float64) error {
	if err := checkEdge(w1); err != nil {
		return err
	}

	if err := checkEdge(w2); err != nil {
		return err
	}

	if w1 >= w2 {
		return fmt.Errorf("%w: band edges must satisfy w1 < w2", ErrInvalidParam)
	}

	return nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
