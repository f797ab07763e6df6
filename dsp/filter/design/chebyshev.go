package design

import (
	"math"
	"math/cmplx"
)

// chebyshevPoles places order poles on the ellipse with axes sinh(mu) and
// cosh(mu), mu = asinh(1/epsilon)/order, at the Butterworth angular grid.
// Conjugate pairs are adjacent; an odd order ends with the real pole
// -sinh(mu), placed exactly on the axis.
func chebyshevPoles(order int, epsilon float64) []complex128 {
	mu := math.Asinh(1/epsilon) / float64(order)
	b := -math.Sinh(mu)
	c := math.Cosh(mu)

	poles := make([]complex128, order)
	for i := range order / 2 {
		w := float64(2*i+1) / float64(2*order)
		pole := complex(b*math.Sin(math.Pi*w), c*math.Cos(math.Pi*w))
		poles[2*i] = pole
		poles[2*i+1] = cmplx.Conj(pole)
	}

	if order%2 == 1 {
		poles[order-1] = complex(b, 0)
	}

	return poles
}

// Chebyshev1 designs an analog lowpass Chebyshev type I prototype:
// equiripple passband with the given ripple in dB, monotone stopband,
// cutoff at frequency 1. There are no zeros. The gain normalizes the
// response so the passband oscillates between 1 and 10^(-ripple/20).
func Chebyshev1(order int, rippleDB float64) (ZeroPoleGain, error) {
	if err := validateOrder(order); err != nil {
		return ZeroPoleGain{}, err
	}

	if err := validateRipple(rippleDB); err != nil {
		return ZeroPoleGain{}, err
	}

	epsilon := math.Sqrt(dbToMinusOne(rippleDB))
	poles := chebyshevPoles(order, epsilon)

	k := 1.0
	for i := range order / 2 {
		k *= abs2(poles[2*i])
	}

	if order%2 == 0 {
		k /= math.Sqrt(1 + epsilon*epsilon)
	} else {
		k *= -real(poles[order-1])
	}

	return ZeroPoleGain{Poles: poles, Gain: k}, nil
}

// Chebyshev2 designs an analog lowpass Chebyshev type II (inverse
// Chebyshev) prototype: monotone passband, equiripple stopband held at
// -ripple dB, cutoff at frequency 1. The poles are the reciprocals of a
// type I pole set computed with the stopband epsilon convention, and the
// zeros sit on the imaginary axis at the stopband ripple extrema. An odd
// order has one fewer zero than poles.
func Chebyshev2(order int, rippleDB float64) (ZeroPoleGain, error) {
	if err := validateOrder(order); err != nil {
		return ZeroPoleGain{}, err
	}

	if err := validateRipple(rippleDB); err != nil {
		return ZeroPoleGain{}, err
	}

	epsilon := 1 / math.Sqrt(dbToMinusOne(rippleDB))

	poles := chebyshevPoles(order, epsilon)
	for i, p := range poles {
		poles[i] = 1 / p
	}

	zeros := make([]complex128, order-order%2)

	k := 1.0
	for i := range order / 2 {
		w := float64(2*i+1) / float64(2*order)
		zero := complex(0, -1/math.Cos(math.Pi*w))
		zeros[2*i] = zero
		zeros[2*i+1] = cmplx.Conj(zero)
		k *= abs2(poles[2*i]) / abs2(zero)
	}

	if order%2 == 1 {
		k *= -real(poles[order-1])
	}

	return ZeroPoleGain{Zeros: zeros, Poles: poles, Gain: k}, nil
}
