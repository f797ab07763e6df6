package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/internal/polyroot"
)

// PolynomialRatio is the transfer function representation B(x)/A(x), with
// both coefficient slices in descending power order. For digital filters
// with equal numerator and denominator degree this matches the usual
// ascending-z^-1 reading of the same sequences.
type PolynomialRatio struct {
	B []float64
	A []float64
}

// Polynomial converts any filter representation into transfer function
// coefficients by expanding the zero and pole products. The numerator
// absorbs the gain; the denominator is monic.
func Polynomial(sys System) (PolynomialRatio, error) {
	if pr, ok := sys.(PolynomialRatio); ok {
		return PolynomialRatio{
			B: append([]float64(nil), pr.B...),
			A: append([]float64(nil), pr.A...),
		}, nil
	}

	zpk, err := sys.zeroPoleGain()
	if err != nil {
		return PolynomialRatio{}, err
	}

	// Conjugate-paired roots leave real coefficients; the imaginary
	// residue is round-off and is dropped.
	bc := polyroot.Expand(zpk.Zeros)
	b := make([]float64, len(bc))

	for i, c := range bc {
		b[i] = zpk.Gain * real(c)
	}

	ac := polyroot.Expand(zpk.Poles)
	a := make([]float64, len(ac))

	for i, c := range ac {
		a[i] = real(c)
	}

	return PolynomialRatio{B: b, A: a}, nil
}

func (pr PolynomialRatio) zeroPoleGain() (ZeroPoleGain, error) {
	b := trimLeadingZeros(pr.B)
	a := trimLeadingZeros(pr.A)

	if len(b) == 0 || len(a) == 0 {
		return ZeroPoleGain{}, fmt.Errorf("%w: zero polynomial", ErrInvalidParam)
	}

	zeros, err := realRoots(b)
	if err != nil {
		return ZeroPoleGain{}, fmt.Errorf("%w: numerator: %v", ErrInvalidParam, err)
	}

	poles, err := realRoots(a)
	if err != nil {
		return ZeroPoleGain{}, fmt.Errorf("%w: denominator: %v", ErrInvalidParam, err)
	}

	return ZeroPoleGain{Zeros: zeros, Poles: poles, Gain: b[0] / a[0]}, nil
}

// Response evaluates the transfer function at the normalized frequency w, a
// fraction of Nyquist in [0, 1].
func (pr PolynomialRatio) Response(w float64) complex128 {
	x := cmplx.Exp(complex(0, math.Pi*w))
	return polyEvalReal(pr.B, x) / polyEvalReal(pr.A, x)
}

// MagnitudeDB returns 20*log10 of the response magnitude at the normalized
// frequency w.
func (pr PolynomialRatio) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(pr.Response(w)))
}

func realRoots(coeff []float64) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, nil
	}

	c := make([]complex128, len(coeff))
	for i, v := range coeff {
		c[i] = complex(v, 0)
	}

	return polyroot.DurandKerner(c)
}

func polyEvalReal(coeff []float64, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}

	v := complex(coeff[0], 0)
	for i := 1; i < len(coeff); i++ {
		v = v*x + complex(coeff[i], 0)
	}

	return v
}

func trimLeadingZeros(coeff []float64) []float64 {
	for i, c := range coeff {
		if c != 0 {
			return coeff[i:]
		}
	}

	return nil
}
