package design

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
)

func butterworthSOS(t *testing.T, order int, w float64) (ZeroPoleGain, SecondOrderSections) {
	t.Helper()

	proto, err := Butterworth(order)
	if err != nil {
		t.Fatalf("Butterworth(%d): %v", order, err)
	}
	filt, err := DigitalFilter(Lowpass{W: w}, proto)
	if err != nil {
		t.Fatalf("DigitalFilter: %v", err)
	}
	sos, err := SOS(filt)
	if err != nil {
		t.Fatalf("SOS: %v", err)
	}

	return filt, sos
}

func TestSOS_ButterworthStructure(t *testing.T) {
	filt, sos := butterworthSOS(t, 4, 0.25)

	if len(sos.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sos.Sections))
	}
	if sos.Gain != filt.Gain {
		t.Fatalf("gain = %g, want %g", sos.Gain, filt.Gain)
	}

	for i, sec := range sos.Sections {
		if sec.B0 != 1 {
			t.Fatalf("section %d: B0 = %g, want 1", i, sec.B0)
		}

		// All four zeros sit at z=-1, so each numerator is (z+1)^2.
		if !almostEqual(sec.B1, 2, 1e-12) || !almostEqual(sec.B2, 1, 1e-12) {
			t.Fatalf("section %d: numerator = [1 %g %g], want [1 2 1]", i, sec.B1, sec.B2)
		}
		if !sec.IsStable() {
			t.Fatalf("section %d is unstable: %+v", i, sec)
		}
	}
}

func TestSOS_OddOrderTrailingFirstOrder(t *testing.T) {
	_, sos := butterworthSOS(t, 5, 0.3)

	if len(sos.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sos.Sections))
	}

	last := sos.Sections[2]
	if last.B2 != 0 || last.A2 != 0 {
		t.Fatalf("trailing section %+v is not first order", last)
	}
	if !almostEqual(last.B1, 1, 1e-12) {
		t.Fatalf("trailing B1 = %g, want 1", last.B1)
	}

	for i := 0; i < 2; i++ {
		if sos.Sections[i].A2 == 0 {
			t.Fatalf("section %d should be second order: %+v", i, sos.Sections[i])
		}
	}
}

func TestSOS_MostResonantFirst(t *testing.T) {
	proto, err := Elliptic(4, 0.5, 40)
	if err != nil {
		t.Fatalf("Elliptic: %v", err)
	}
	filt, err := DigitalFilter(Lowpass{W: 0.3}, proto)
	if err != nil {
		t.Fatalf("DigitalFilter: %v", err)
	}
	sos, err := SOS(filt)
	if err != nil {
		t.Fatalf("SOS: %v", err)
	}

	if len(sos.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sos.Sections))
	}

	p0 := sos.Sections[0].Poles()
	p1 := sos.Sections[1].Poles()
	if math.Abs(imag(p0[0])) < math.Abs(imag(p1[0])) {
		t.Fatalf("sections are not ordered most resonant first: %v before %v", p0, p1)
	}
}

func TestSOS_ResponseMatchesZeroPoleGain(t *testing.T) {
	proto, err := Chebyshev2(4, 40)
	if err != nil {
		t.Fatalf("Chebyshev2: %v", err)
	}
	filt, err := DigitalFilter(Lowpass{W: 0.3}, proto)
	if err != nil {
		t.Fatalf("DigitalFilter: %v", err)
	}
	sos, err := SOS(filt)
	if err != nil {
		t.Fatalf("SOS: %v", err)
	}

	for _, w := range []float64{0, 0.1, 0.3, 0.5, 0.9} {
		got := sos.Response(w)
		want := filt.Response(w)
		if !almostEqualC(got, want, tol) {
			t.Fatalf("w=%g: response %v, want %v", w, got, want)
		}
	}
}

func TestSOS_RoundTrip(t *testing.T) {
	proto, err := Chebyshev2(4, 40)
	if err != nil {
		t.Fatalf("Chebyshev2: %v", err)
	}
	filt, err := DigitalFilter(Lowpass{W: 0.3}, proto)
	if err != nil {
		t.Fatalf("DigitalFilter: %v", err)
	}
	sos, err := SOS(filt)
	if err != nil {
		t.Fatalf("SOS: %v", err)
	}

	back, err := sos.zeroPoleGain()
	if err != nil {
		t.Fatalf("zeroPoleGain: %v", err)
	}

	assertSameRoots(t, back.Zeros, filt.Zeros, tol)
	assertSameRoots(t, back.Poles, filt.Poles, tol)
	if !almostEqual(back.Gain, filt.Gain, 1e-12) {
		t.Fatalf("gain = %g, want %g", back.Gain, filt.Gain)
	}
}

func TestSOS_FirstOrderRoundTrip(t *testing.T) {
	sos := SecondOrderSections{
		Sections: []biquad.Coefficients{{B0: 0.5, B1: 0.3, A1: -0.4}},
		Gain:     2,
	}

	back, err := sos.zeroPoleGain()
	if err != nil {
		t.Fatalf("zeroPoleGain: %v", err)
	}

	// The z^2 normalization introduces matched origin roots on both sides
	// of a first-order section; they must cancel.
	if len(back.Zeros) != 1 || len(back.Poles) != 1 {
		t.Fatalf("expected 1 zero and 1 pole, got %d and %d", len(back.Zeros), len(back.Poles))
	}
	if !almostEqualC(back.Zeros[0], -0.6, 1e-12) {
		t.Fatalf("zero = %v, want -0.6", back.Zeros[0])
	}
	if !almostEqualC(back.Poles[0], 0.4, 1e-12) {
		t.Fatalf("pole = %v, want 0.4", back.Poles[0])
	}
	if !almostEqual(back.Gain, 1, 1e-12) {
		t.Fatalf("gain = %g, want 1", back.Gain)
	}
}

func TestSOS_FromPolynomialRatio(t *testing.T) {
	pr := PolynomialRatio{B: []float64{0.5, 0.5}, A: []float64{1, 0}}

	sos, err := SOS(pr)
	if err != nil {
		t.Fatalf("SOS: %v", err)
	}

	if len(sos.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sos.Sections))
	}
	if !almostEqual(sos.Sections[0].B1, 1, 1e-12) {
		t.Fatalf("B1 = %g, want 1", sos.Sections[0].B1)
	}

	if got := cmplx.Abs(sos.Response(0)); !almostEqual(got, 1, 1e-12) {
		t.Fatalf("|H(0)| = %g, want 1", got)
	}
}

func TestSOS_Identity(t *testing.T) {
	orig := SecondOrderSections{
		Sections: []biquad.Coefficients{{B0: 1, B1: 0.5, B2: 0.25, A1: -0.3, A2: 0.1}},
		Gain:     0.75,
	}

	clone, err := SOS(orig)
	if err != nil {
		t.Fatalf("SOS: %v", err)
	}

	if clone.Gain != orig.Gain || len(clone.Sections) != 1 || clone.Sections[0] != orig.Sections[0] {
		t.Fatalf("clone %+v does not match original %+v", clone, orig)
	}
}

func TestSOS_MoreZerosThanPoles(t *testing.T) {
	zpk := ZeroPoleGain{
		Zeros: []complex128{complex(0, 1), complex(0, -1), complex(0, 2), complex(0, -2)},
		Poles: []complex128{-0.5},
		Gain:  1,
	}

	if _, err := SOS(zpk); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam, got %v", err)
	}
}
