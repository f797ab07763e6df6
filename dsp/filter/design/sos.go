package design

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
	"github.com/cwbudde/algo-filter/internal/polyroot"
)

// SecondOrderSections is a cascade of monic biquad sections with the
// overall gain carried separately. It is numerically better conditioned
// than a single high-order PolynomialRatio.
type SecondOrderSections struct {
	Sections []biquad.Coefficients
	Gain     float64
}

// SOS factors any filter representation into second-order sections. Poles
// and zeros are grouped into conjugate or real pairs; sections with the
// larger and more resonant pole groups come first, each paired with a zero
// group of matching kind when one is available.
func SOS(sys System) (SecondOrderSections, error) {
	if sos, ok := sys.(SecondOrderSections); ok {
		return SecondOrderSections{
			Sections: append([]biquad.Coefficients(nil), sos.Sections...),
			Gain:     sos.Gain,
		}, nil
	}

	zpk, err := sys.zeroPoleGain()
	if err != nil {
		return SecondOrderSections{}, err
	}

	if len(zpk.Zeros) > len(zpk.Poles) {
		return SecondOrderSections{}, fmt.Errorf("%w: more zeros than poles", ErrInvalidParam)
	}

	pGroups := polyroot.GroupConjugates(zpk.Poles)
	zGroups := polyroot.GroupConjugates(zpk.Zeros)

	sort.Slice(pGroups, func(i, j int) bool {
		if len(pGroups[i]) != len(pGroups[j]) {
			return len(pGroups[i]) > len(pGroups[j])
		}

		return groupImagAbs(pGroups[i]) > groupImagAbs(pGroups[j])
	})

	var zComplex, zSingle [][]complex128

	for _, g := range zGroups {
		if len(g) == 2 {
			zComplex = append(zComplex, g)
		} else {
			zSingle = append(zSingle, g)
		}
	}

	sections := make([]biquad.Coefficients, 0, len(pGroups))

	for _, pg := range pGroups {
		var zg []complex128

		if len(pg) == 2 {
			if len(zComplex) > 0 {
				zg = zComplex[0]
				zComplex = zComplex[1:]
			} else if len(zSingle) > 0 {
				zg = zSingle[0]
				zSingle = zSingle[1:]
			}
		} else {
			if len(zSingle) > 0 {
				zg = zSingle[0]
				zSingle = zSingle[1:]
			} else if len(zComplex) > 0 {
				zg = zComplex[0]
				zComplex = zComplex[1:]
			}
		}

		b1, b2 := quadFromGroup(zg)
		a1, a2 := quadFromGroup(pg)
		sections = append(sections, biquad.Coefficients{
			B0: 1, B1: b1, B2: b2,
			A1: a1, A2: a2,
		})
	}

	return SecondOrderSections{Sections: sections, Gain: zpk.Gain}, nil
}

func (s SecondOrderSections) zeroPoleGain() (ZeroPoleGain, error) {
	zeros := make([]complex128, 0, 2*len(s.Sections))
	poles := make([]complex128, 0, 2*len(s.Sections))
	gain := s.Gain

	for _, sec := range s.Sections {
		lead, roots, err := numeratorRoots(sec)
		if err != nil {
			return ZeroPoleGain{}, err
		}

		gain *= lead
		zeros = append(zeros, roots...)
		poles = append(poles, denominatorRoots(sec)...)
	}

	cancelOriginPairs(&zeros, &poles)

	return ZeroPoleGain{Zeros: zeros, Poles: poles, Gain: gain}, nil
}

// Response evaluates the cascade's frequency response at the normalized
// frequency w, a fraction of Nyquist in [0, 1].
func (s SecondOrderSections) Response(w float64) complex128 {
	return complex(s.Gain, 0) * biquad.CascadeResponse(s.Sections, w, 2)
}

// MagnitudeDB returns 20*log10 of the response magnitude at the normalized
// frequency w.
func (s SecondOrderSections) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(s.Response(w)))
}

// numeratorRoots returns the z-plane roots of B0*z^2 + B1*z + B2 together
// with the leading coefficient. A section with B0 = 0 has lower degree and
// no implicit roots at the origin.
func numeratorRoots(sec biquad.Coefficients) (float64, []complex128, error) {
	switch {
	case sec.B0 != 0:
		r := sec.Zeros()
		return sec.B0, r[:], nil
	case sec.B1 != 0:
		return sec.B1, []complex128{complex(-sec.B2/sec.B1, 0)}, nil
	case sec.B2 != 0:
		return sec.B2, nil, nil
	default:
		return 0, nil, fmt.Errorf("%w: section numerator is zero", ErrInvalidParam)
	}
}

// denominatorRoots returns the z-plane roots of z^2 + A1*z + A2, the biquad
// denominator with its implicit unity leading coefficient.
func denominatorRoots(sec biquad.Coefficients) []complex128 {
	r := sec.Poles()
	return r[:]
}

// cancelOriginPairs removes matched zero/pole pairs at the origin that the
// z^2 normalization of first-order sections introduces on both sides.
func cancelOriginPairs(zeros, poles *[]complex128) {
	for {
		zi := originIndex(*zeros)
		pi := originIndex(*poles)

		if zi < 0 || pi < 0 {
			return
		}

		*zeros = append((*zeros)[:zi], (*zeros)[zi+1:]...)
		*poles = append((*poles)[:pi], (*poles)[pi+1:]...)
	}
}

func originIndex(roots []complex128) int {
	for i, r := range roots {
		if r == 0 {
			return i
		}
	}

	return -1
}

func groupImagAbs(g []complex128) float64 {
	if len(g) == 0 {
		return 0
	}

	maxImag := 0.0
	for _, r := range g {
		if a := math.Abs(imag(r)); a > maxImag {
			maxImag = a
		}
	}

	return maxImag
}

func quadFromGroup(group []complex128) (float64, float64) {
	switch len(group) {
	case 0:
		return 0, 0
	case 1:
		r := group[0]
		return -real(r), 0
	default:
		r1, r2 := group[0], group[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}
