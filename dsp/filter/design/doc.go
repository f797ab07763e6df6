// Package design computes pole-zero-gain descriptions of classical IIR
// filters.
//
// The pipeline follows the textbook route: an analog lowpass prototype
// ([Butterworth], [Chebyshev1], [Chebyshev2], [Elliptic]) normalized to
// cutoff 1 is mapped onto the requested band by [Transform], then discretized
// by [Bilinear]. [DigitalFilter] composes all three steps with the frequency
// prewarp that keeps the requested digital band edges accurate.
//
// Band shapes ([Lowpass], [Highpass], [Bandpass], [Bandstop]) carry edges as
// fractions of the Nyquist frequency; the New* constructors normalize a
// frequency in Hz against a sample rate (default 2, so frequencies pass
// through unchanged).
//
// Results convert between representations via [Polynomial] (transfer
// function coefficients) and [SOS] (cascaded biquad sections consumable by
// dsp/filter/biquad). [Notch] is a closed-form single-biquad design with no
// pole-zero intermediate.
package design
