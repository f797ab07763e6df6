// Package biquad defines the second-order section (biquad) coefficient
// type shared by the filter designers, together with frequency-response
// evaluation and pole/zero introspection.
//
// A [Coefficients] value describes one stage of the normalized transfer
// function (b0 + b1*z^-1 + b2*z^-2) / (1 + a1*z^-1 + a2*z^-2). Cascades
// are plain []Coefficients slices; [CascadeResponse] evaluates them as a
// product. Coefficient design lives in dsp/filter/design; applying
// sections to sample data is out of scope for this module.
package biquad
