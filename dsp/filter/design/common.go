package design

import (
	"fmt"
	"math"
)

// machineEpsilon is the double-precision ulp at 1.0, used by the gain
// cleanup in the highpass and bandstop transforms.
const machineEpsilon = 2.220446049250313e-16

// dbToMinusOne converts a decibel power ratio to 10^(db/10) - 1, keeping
// precision for small ripple values.
func dbToMinusOne(db float64) float64 {
	return math.Expm1(math.Ln10 * db / 10.0)
}

func abs2(x complex128) float64 {
	return real(x)*real(x) + imag(x)*imag(x)
}

// normalizeFreq converts a frequency in Hz to a fraction of the Nyquist
// frequency sampleRate/2.
func normalizeFreq(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate must be positive", ErrInvalidParam)
	}

	if freq <= 0 || math.IsNaN(freq) {
		return 0, fmt.Errorf("%w: frequency must be positive", ErrInvalidParam)
	}

	if freq >= sampleRate/2 {
		return 0, fmt.Errorf("%w: frequency must be less than the Nyquist frequency", ErrInvalidParam)
	}

	return 2 * freq / sampleRate, nil
}

func validateOrder(order int) error {
	if order <= 0 {
		return fmt.Errorf("%w: order must be positive", ErrInvalidParam)
	}

	return nil
}

func validateRipple(rippleDB float64) error {
	if rippleDB < 0 || math.IsNaN(rippleDB) {
		return fmt.Errorf("%w: ripple must not be negative", ErrInvalidParam)
	}

	return nil
}
