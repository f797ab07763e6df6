// Package fir designs and applies finite impulse response filters.
//
// The design half implements the window method: [DigitalFilter] builds
// windowed-sinc taps for one of the four band shapes from
// dsp/filter/design, and [KaiserOrder] estimates the tap count and Kaiser
// shape parameter needed to meet a transition-width/attenuation target.
// Highpass and bandstop responses are built by spectral inversion and so
// require an odd tap count.
//
// The runtime half is a direct-form [Filter] applying pre-computed
// coefficients to a sample stream through a circular-buffer delay line. It
// is suitable for short filters; long filters are better served by
// FFT-based convolution.
package fir
