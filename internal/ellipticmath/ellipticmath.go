package ellipticmath

import (
	"math"
	"math/cmplx"
)

// landenIterations is the fixed length of the descending-modulus
// sequence. The recurrence converges quadratically, so seven terms
// reach double precision for every modulus filter design produces.
const landenIterations = 7

// Landen returns the descending Landen sequence for modulus k.
func Landen(k float64) []float64 {
	v := make([]float64, landenIterations)
	for i := range v {
		k = k / (1 + math.Sqrt((1-k)*(1+k)))
		k *= k
		v[i] = k
	}
	return v
}

// CDE evaluates the Jacobi cd function at u*K(k) given the Landen
// sequence of k. The accumulation runs over the sequence in reverse on
// the reciprocal of the result and is inverted once at the end.
func CDE(u complex128, landen []float64) complex128 {
	winv := 1 / cmplx.Cos(u*math.Pi/2)
	for i := len(landen) - 1; i >= 0; i-- {
		v := complex(landen[i], 0)
		winv = (winv + v/winv) / (1 + v)
	}
	return 1 / winv
}

// SNE evaluates the Jacobi sn function at u*K(k) given the Landen
// sequence of k.
func SNE(u complex128, landen []float64) complex128 {
	winv := 1 / cmplx.Sin(u*math.Pi/2)
	for i := len(landen) - 1; i >= 0; i-- {
		v := complex(landen[i], 0)
		winv = (winv + v/winv) / (1 + v)
	}
	return 1 / winv
}

// ASNE inverts SNE for modulus k via the ascending Landen
// transformation. The fixed point runs until the iterate stops
// changing exactly. Callers must keep k < 1 or the iteration may not
// terminate.
func ASNE(w complex128, k float64) complex128 {
	oldw := cmplx.NaN()
	for w != oldw {
		oldw = w
		kold := k
		kp := math.Sqrt((1 - k) * (1 + k))
		k = math.Abs((1 - kp) / (1 + kp))
		w = 2 * w / ((1 + complex(k, 0)) * (1 + cmplx.Sqrt(1-complex(kold*kold, 0)*w*w)))
	}
	return 2 * cmplx.Asin(w) / math.Pi
}
