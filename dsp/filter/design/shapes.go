package design

import (
	"fmt"
	"math"
)

// Shape selects one of the four band shapes a lowpass prototype can be
// mapped onto. The set is closed: Lowpass, Highpass, Bandpass, and Bandstop
// are the only implementations, and the per-shape transform math is
// exhaustive over them.
type Shape interface {
	// edges returns the band edges in ascending order.
	edges() []float64
	// prewarped warps each edge by 4*tan(pi*w/2) to compensate the
	// frequency compression of the bilinear transform.
	prewarped() Shape
	// transform maps a lowpass prototype normalized to cutoff 1 onto the
	// shape's band.
	transform(proto ZeroPoleGain) ZeroPoleGain
}

// Lowpass passes frequencies below the edge W, a fraction of Nyquist.
type Lowpass struct {
	W float64
}

// Highpass passes frequencies above the edge W, a fraction of Nyquist.
type Highpass struct {
	W float64
}

// Bandpass passes frequencies between W1 and W2, fractions of Nyquist.
type Bandpass struct {
	W1, W2 float64
}

// Bandstop rejects frequencies between W1 and W2, fractions of Nyquist.
type Bandstop struct {
	W1, W2 float64
}

type shapeConfig struct {
	sampleRate float64
}

func defaultShapeConfig() shapeConfig {
	return shapeConfig{sampleRate: 2}
}

// ShapeOption configures how shape constructors normalize frequencies.
type ShapeOption func(*shapeConfig)

// WithSampleRate sets the sample rate (Hz) the constructor frequencies are
// normalized against. The default of 2 makes Nyquist equal 1, so edges
// already expressed as Nyquist fractions pass through unchanged.
func WithSampleRate(sampleRate float64) ShapeOption {
	return func(c *shapeConfig) {
		c.sampleRate = sampleRate
	}
}

func applyShapeOptions(opts []ShapeOption) shapeConfig {
	cfg := defaultShapeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// NewLowpass constructs a lowpass shape with its edge at freq (Hz).
func NewLowpass(freq float64, opts ...ShapeOption) (Lowpass, error) {
	cfg := applyShapeOptions(opts)

	w, err := normalizeFreq(freq, cfg.sampleRate)
	if err != nil {
		return Lowpass{}, err
	}

	return Lowpass{W: w}, nil
}

// NewHighpass constructs a highpass shape with its edge at freq (Hz).
func NewHighpass(freq float64, opts ...ShapeOption) (Highpass, error) {
	cfg := applyShapeOptions(opts)

	w, err := normalizeFreq(freq, cfg.sampleRate)
	if err != nil {
		return Highpass{}, err
	}

	return Highpass{W: w}, nil
}

// NewBandpass constructs a bandpass shape spanning freq1 to freq2 (Hz).
func NewBandpass(freq1, freq2 float64, opts ...ShapeOption) (Bandpass, error) {
	cfg := applyShapeOptions(opts)

	w1, w2, err := normalizeBand(freq1, freq2, cfg.sampleRate)
	if err != nil {
		return Bandpass{}, err
	}

	return Bandpass{W1: w1, W2: w2}, nil
}

// NewBandstop constructs a bandstop shape rejecting freq1 to freq2 (Hz).
func NewBandstop(freq1, freq2 float64, opts ...ShapeOption) (Bandstop, error) {
	cfg := applyShapeOptions(opts)

	w1, w2, err := normalizeBand(freq1, freq2, cfg.sampleRate)
	if err != nil {
		return Bandstop{}, err
	}

	return Bandstop{W1: w1, W2: w2}, nil
}

func normalizeBand(freq1, freq2, sampleRate float64) (float64, float64, error) {
	w1, err := normalizeFreq(freq1, sampleRate)
	if err != nil {
		return 0, 0, err
	}

	w2, err := normalizeFreq(freq2, sampleRate)
	if err != nil {
		return 0, 0, err
	}

	if w1 >= w2 {
		return 0, 0, fmt.Errorf("%w: band edges must satisfy w1 < w2", ErrInvalidParam)
	}

	return w1, w2, nil
}

func (s Lowpass) edges() []float64  { return []float64{s.W} }
func (s Highpass) edges() []float64 { return []float64{s.W} }
func (s Bandpass) edges() []float64 { return []float64{s.W1, s.W2} }
func (s Bandstop) edges() []float64 { return []float64{s.W1, s.W2} }

func prewarp(w float64) float64 {
	return 4 * math.Tan(math.Pi*w/2)
}

func (s Lowpass) prewarped() Shape  { return Lowpass{W: prewarp(s.W)} }
func (s Highpass) prewarped() Shape { return Highpass{W: prewarp(s.W)} }

func (s Bandpass) prewarped() Shape {
	return Bandpass{W1: prewarp(s.W1), W2: prewarp(s.W2)}
}

func (s Bandstop) prewarped() Shape {
	return Bandstop{W1: prewarp(s.W1), W2: prewarp(s.W2)}
}

// validateAnalog checks edges for use with Transform, where any positive
// analog frequency is legal.
func validateAnalog(shape Shape) error {
	e := shape.edges()
	for _, w := range e {
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: frequency must be positive", ErrInvalidParam)
		}
	}

	if len(e) == 2 && e[0] >= e[1] {
		return fmt.Errorf("%w: band edges must satisfy w1 < w2", ErrInvalidParam)
	}

	return nil
}

// validateDigital checks edges lie strictly inside the open Nyquist
// interval (0, 1).
func validateDigital(shape Shape) error {
	e := shape.edges()
	for _, w := range e {
		if !(w > 0) {
			return fmt.Errorf("%w: frequency must be positive", ErrInvalidParam)
		}

		if w >= 1 {
			return fmt.Errorf("%w: frequency must be less than the Nyquist frequency", ErrInvalidParam)
		}
	}

	if len(e) == 2 && e[0] >= e[1] {
		return fmt.Errorf("%w: band edges must satisfy w1 < w2", ErrInvalidParam)
	}

	return nil
}
