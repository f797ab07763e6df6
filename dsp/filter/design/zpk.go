package design

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// ZeroPoleGain is the factored transfer function representation
//
//	H(x) = Gain * Π(x - Zeros[i]) / Π(x - Poles[j])
//
// used both for analog prototypes (x = s) and digital filters (x = z).
// Zeros and poles of designs driven by real parameters are real or occur in
// conjugate pairs; the slice order carries no meaning beyond the pairing
// adjacency used during construction. Values are never mutated after being
// returned; every design and transform step allocates fresh slices.
type ZeroPoleGain struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// System is a linear filter representation reducible to zeros, poles, and
// gain. ZeroPoleGain, PolynomialRatio, and SecondOrderSections implement it;
// the set is closed.
type System interface {
	zeroPoleGain() (ZeroPoleGain, error)
}

func (zpk ZeroPoleGain) zeroPoleGain() (ZeroPoleGain, error) {
	return zpk, nil
}

// Order returns the order of the transfer function, the larger of the zero
// and pole counts.
func (zpk ZeroPoleGain) Order() int {
	return max(len(zpk.Zeros), len(zpk.Poles))
}

// Transfer evaluates the transfer function at an arbitrary point of the
// complex plane: s = jw for analog designs, z = e^(jw) for digital ones.
func (zpk ZeroPoleGain) Transfer(x complex128) complex128 {
	num := complex(1, 0)
	for _, z := range zpk.Zeros {
		num *= x - z
	}

	den := complex(1, 0)
	for _, p := range zpk.Poles {
		den *= x - p
	}

	return complex(zpk.Gain, 0) * num / den
}

// Response evaluates a digital filter's frequency response at the
// normalized frequency w, a fraction of Nyquist in [0, 1].
func (zpk ZeroPoleGain) Response(w float64) complex128 {
	return zpk.Transfer(cmplx.Exp(complex(0, math.Pi*w)))
}

// MagnitudeDB returns 20*log10 of the response magnitude at the normalized
// frequency w.
func (zpk ZeroPoleGain) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(zpk.Response(w)))
}
