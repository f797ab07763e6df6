package design

import (
	"errors"
	"math"
	"testing"
)

func TestNewLowpass_NyquistFraction(t *testing.T) {
	// At the default rate of 2 the edge passes through unchanged.
	lp, err := NewLowpass(0.3)
	if err != nil {
		t.Fatalf("NewLowpass: %v", err)
	}
	if lp.W != 0.3 {
		t.Fatalf("W = %g, want 0.3", lp.W)
	}
}

func TestNewLowpass_SampleRate(t *testing.T) {
	lp, err := NewLowpass(1000, WithSampleRate(8000))
	if err != nil {
		t.Fatalf("NewLowpass: %v", err)
	}
	if lp.W != 0.25 {
		t.Fatalf("W = %g, want 0.25", lp.W)
	}
}

func TestNewBandpass_Edges(t *testing.T) {
	bp, err := NewBandpass(300, 3400, WithSampleRate(8000))
	if err != nil {
		t.Fatalf("NewBandpass: %v", err)
	}
	if !almostEqual(bp.W1, 0.075, 1e-15) || !almostEqual(bp.W2, 0.85, 1e-15) {
		t.Fatalf("edges = %g, %g, want 0.075, 0.85", bp.W1, bp.W2)
	}
}

func TestShapeConstructors_Validation(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
	}{
		{"zero frequency", func() error { _, err := NewLowpass(0); return err }()},
		{"negative frequency", func() error { _, err := NewHighpass(-100, WithSampleRate(8000)); return err }()},
		{"frequency at Nyquist", func() error { _, err := NewLowpass(4000, WithSampleRate(8000)); return err }()},
		{"frequency above Nyquist", func() error { _, err := NewHighpass(5000, WithSampleRate(8000)); return err }()},
		{"inverted band", func() error { _, err := NewBandpass(0.5, 0.2); return err }()},
		{"empty band", func() error { _, err := NewBandstop(0.4, 0.4); return err }()},
		{"zero sample rate", func() error { _, err := NewLowpass(100, WithSampleRate(0)); return err }()},
		{"negative sample rate", func() error { _, err := NewLowpass(100, WithSampleRate(-8000)); return err }()},
	} {
		if !errors.Is(tc.err, ErrInvalidParam) {
			t.Fatalf("%s: expected ErrInvalidParam, got %v", tc.name, tc.err)
		}
	}
}

func TestPrewarp(t *testing.T) {
	// 4*tan(pi*w/2) maps the Nyquist fraction onto the analog axis.
	lp := Lowpass{W: 0.25}.prewarped().(Lowpass)
	want := 4 * math.Tan(math.Pi/8)
	if !almostEqual(lp.W, want, 1e-15) {
		t.Fatalf("prewarped W = %g, want %g", lp.W, want)
	}

	bp := Bandpass{W1: 0.25, W2: 0.75}.prewarped().(Bandpass)
	if !almostEqual(bp.W1, want, 1e-15) {
		t.Fatalf("prewarped W1 = %g, want %g", bp.W1, want)
	}
	if !almostEqual(bp.W2, 4*math.Tan(3*math.Pi/8), 1e-12) {
		t.Fatalf("prewarped W2 = %g, want %g", bp.W2, 4*math.Tan(3*math.Pi/8))
	}
}
