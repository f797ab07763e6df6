package design

import (
	"math"
	"math/cmplx"
)

// Butterworth designs an analog lowpass Butterworth prototype of the given
// order: maximally flat passband, cutoff at frequency 1, unity gain. The
// poles sit equally spaced on the left half of the unit circle, in
// conjugate pairs with one real pole at -1 for odd orders. There are no
// zeros.
func Butterworth(order int) (ZeroPoleGain, error) {
	if err := validateOrder(order); err != nil {
		return ZeroPoleGain{}, err
	}

	poles := make([]complex128, order)
	for i := range order / 2 {
		w := float64(2*i+1) / float64(2*order)
		pole := complex(-math.Sin(math.Pi*w), math.Cos(math.Pi*w))
		poles[2*i] = pole
		poles[2*i+1] = cmplx.Conj(pole)
	}

	if order%2 == 1 {
		poles[order-1] = -1
	}

	return ZeroPoleGain{Poles: poles, Gain: 1}, nil
}
