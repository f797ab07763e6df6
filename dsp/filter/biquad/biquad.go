package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Passthrough returns the identity section (unity gain).
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// IsStable reports whether both poles lie strictly inside the unit
// circle, via the stability triangle |A2| < 1 and |A1| < 1 + A2.
func (c *Coefficients) IsStable() bool {
	if c.A2 >= 1 || c.A2 <= -1 {
		return false
	}
	return c.A1 < 1+c.A2 && c.A1 > -(1+c.A2)
}
