// Package resample provides rational sample-rate conversion using polyphase
// FIR filtering.
//
// The anti-aliasing prototype is a Kaiser-windowed lowpass sized from the
// conversion ratio and the stopband attenuation target (60 dB by default).
// DesignFilter and DesignFilterRational expose the prototype design on its
// own for callers that run their own polyphase machinery.
//
// Common workflows:
//   - NewRational(up, down, opts...)
//   - NewForRates(inRate, outRate, opts...)
//   - Resample(input, up, down, opts...)
//   - Upsample2x / Downsample2x convenience wrappers
package resample
