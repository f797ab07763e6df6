package fir

import "errors"

var (
	// ErrInvalidParam reports a design parameter outside its legal domain
	// (band edges out of range, empty window, negative attenuation).
	ErrInvalidParam = errors.New("fir: invalid parameter")

	// ErrEvenTaps reports an even tap count for a design that needs the
	// center tap of an odd-length impulse response.
	ErrEvenTaps = errors.New("fir: even tap count")
)
