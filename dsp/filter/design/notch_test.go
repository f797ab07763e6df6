package design

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestNotch_CoefficientStructure(t *testing.T) {
	c, err := Notch(0.3, 0.05)
	if err != nil {
		t.Fatalf("Notch: %v", err)
	}

	if c.B0 != c.B2 {
		t.Fatalf("B0 = %g, B2 = %g, want equal", c.B0, c.B2)
	}
	if c.B1 != c.A1 {
		t.Fatalf("B1 = %g, A1 = %g, want equal", c.B1, c.A1)
	}
	if !(math.Abs(c.A1) < 2*c.B0) {
		t.Fatalf("|A1| = %g must be below 2*B0 = %g", math.Abs(c.A1), 2*c.B0)
	}
	if !c.IsStable() {
		t.Fatalf("notch section %+v is unstable", c)
	}
}

func TestNotch_NullDepth(t *testing.T) {
	c, err := Notch(0.3, 0.05)
	if err != nil {
		t.Fatalf("Notch: %v", err)
	}

	// The numerator root sits exactly on the unit circle, so the closed
	// form cancels down to rounding noise.
	if got := c.MagnitudeSquared(0.3, 2); math.Abs(got) > 1e-12 {
		t.Fatalf("|H|^2 at the notch = %g, want 0", got)
	}
}

func TestNotch_UnityEdges(t *testing.T) {
	c, err := Notch(0.3, 0.05)
	if err != nil {
		t.Fatalf("Notch: %v", err)
	}

	if got := cmplx.Abs(c.Response(0, 2)); !almostEqual(got, 1, 1e-12) {
		t.Fatalf("|H(0)| = %g, want 1", got)
	}
	if got := cmplx.Abs(c.Response(1, 2)); !almostEqual(got, 1, 1e-12) {
		t.Fatalf("|H(Nyquist)| = %g, want 1", got)
	}
}

func TestNotch_CustomSampleRate(t *testing.T) {
	// 60 Hz at 1 kHz is the same normalized design as 0.12 at the
	// default rate.
	got, err := Notch(60, 5, WithSampleRate(1000))
	if err != nil {
		t.Fatalf("Notch: %v", err)
	}
	want, err := Notch(0.12, 0.01)
	if err != nil {
		t.Fatalf("Notch: %v", err)
	}

	if got != want {
		t.Fatalf("coefficients %+v, want %+v", got, want)
	}
}

func TestNotch_Validation(t *testing.T) {
	for _, tc := range []struct {
		name      string
		freq      float64
		bandwidth float64
	}{
		{"zero frequency", 0, 0.05},
		{"negative frequency", -0.1, 0.05},
		{"frequency at Nyquist", 1, 0.05},
		{"zero bandwidth", 0.3, 0},
		{"negative bandwidth", 0.3, -0.01},
	} {
		if _, err := Notch(tc.freq, tc.bandwidth); !errors.Is(err, ErrInvalidParam) {
			t.Fatalf("%s: expected ErrInvalidParam, got %v", tc.name, err)
		}
	}

	if _, err := Notch(0.3, 0.05, WithSampleRate(0)); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("zero sample rate: expected ErrInvalidParam, got %v", err)
	}
}
