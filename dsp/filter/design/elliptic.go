package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/internal/ellipticmath"
)

// Elliptic designs an analog lowpass elliptic (Cauer) prototype:
// equiripple in both bands, with at most passbandRippleDB of passband
// ripple and at least stopbandRippleDB of stopband attenuation, cutoff at
// frequency 1. Elliptic filters reach a given transition sharpness at the
// lowest order of the classical families.
//
// Zeros sit on the imaginary axis in conjugate pairs; poles come from the
// Jacobi elliptic cd function evaluated off the real axis, following
// Orfanidis' lecture notes on elliptic filter design. An odd order adds one
// real pole and drops one zero.
func Elliptic(order int, passbandRippleDB, stopbandRippleDB float64) (ZeroPoleGain, error) {
	if err := validateOrder(order); err != nil {
		return ZeroPoleGain{}, err
	}

	if passbandRippleDB <= 0 || math.IsNaN(passbandRippleDB) {
		return ZeroPoleGain{}, fmt.Errorf("%w: passband ripple must be positive", ErrInvalidParam)
	}

	if !(passbandRippleDB < stopbandRippleDB) {
		return ZeroPoleGain{}, fmt.Errorf("%w: passband ripple must be less than stopband ripple", ErrInfeasible)
	}

	epsP := math.Sqrt(dbToMinusOne(passbandRippleDB))
	epsS := math.Sqrt(dbToMinusOne(stopbandRippleDB))

	k1 := epsP / epsS
	if k1 >= 1 {
		return ZeroPoleGain{}, fmt.Errorf("%w: order too high for parameters", ErrInfeasible)
	}

	// Degree equation: the discrimination modulus k follows from k1 and
	// the order through the elliptic function sn on the odd grid points.
	k1p := math.Sqrt(1 - k1*k1)
	landenK1p := ellipticmath.Landen(k1p)

	kp := 1.0
	for i := range order / 2 {
		u := float64(2*i+1) / float64(order)
		kp *= real(ellipticmath.SNE(complex(u, 0), landenK1p))
	}

	kp = math.Pow(k1p, float64(order)) * math.Pow(kp, 4)
	k := math.Sqrt(1 - kp*kp)
	landenK := ellipticmath.Landen(k)

	// v0 shifts the pole grid off the real axis; asne of a purely
	// imaginary argument keeps it exactly real.
	v0 := complex(0, -1/float64(order)) * ellipticmath.ASNE(complex(0, 1/epsP), k1)

	zeros := make([]complex128, 2*(order/2))
	poles := make([]complex128, order)
	gain := 1.0

	for i := range order / 2 {
		u := float64(2*i+1) / float64(order)

		zero := complex(0, -1/(k*real(ellipticmath.CDE(complex(u, 0), landenK))))
		zeros[2*i] = zero
		zeros[2*i+1] = cmplx.Conj(zero)

		pole := complex(0, 1) * ellipticmath.CDE(complex(u, 0)-complex(0, 1)*v0, landenK)
		poles[2*i] = pole
		poles[2*i+1] = cmplx.Conj(pole)

		gain *= abs2(pole) / abs2(zero)
	}

	if order%2 == 1 {
		pole := complex(0, 1) * ellipticmath.SNE(complex(0, 1)*v0, landenK)
		poles[order-1] = pole
		gain *= -real(pole)
	} else {
		gain *= core.DBToLinear(-passbandRippleDB)
	}

	return ZeroPoleGain{Zeros: zeros, Poles: poles, Gain: gain}, nil
}
