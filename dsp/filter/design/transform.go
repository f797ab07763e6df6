package design

import (
	"math"
	"math/cmplx"
)

// Transform maps an analog lowpass prototype normalized to cutoff 1 onto
// the band described by shape, returning a new analog pole-zero-gain value.
// Shape edges are interpreted as analog frequencies here; use DigitalFilter
// for the full digital pipeline.
func Transform(shape Shape, proto System) (ZeroPoleGain, error) {
	zpk, err := proto.zeroPoleGain()
	if err != nil {
		return ZeroPoleGain{}, err
	}

	if err := validateAnalog(shape); err != nil {
		return ZeroPoleGain{}, err
	}

	return shape.transform(zpk), nil
}

func (s Lowpass) transform(proto ZeroPoleGain) ZeroPoleGain {
	w := complex(s.W, 0)

	z := make([]complex128, len(proto.Zeros))
	for i, x := range proto.Zeros {
		z[i] = x * w
	}

	p := make([]complex128, len(proto.Poles))
	for i, x := range proto.Poles {
		p[i] = x * w
	}

	k := proto.Gain * math.Pow(s.W, float64(len(proto.Poles)-len(proto.Zeros)))

	return ZeroPoleGain{Zeros: z, Poles: p, Gain: k}
}

func (s Highpass) transform(proto ZeroPoleGain) ZeroPoleGain {
	w := complex(s.W, 0)
	np := len(proto.Poles)
	n := max(np, len(proto.Zeros))

	// Unfilled slots stay at the origin: reciprocating maps prototype
	// roots at infinity to zero.
	z := make([]complex128, n)
	num := complex(1, 0)

	for i, x := range proto.Zeros {
		z[i] = w / x
		num *= -x
	}

	p := make([]complex128, n)
	den := complex(1, 0)

	for i, x := range proto.Poles {
		p[i] = w / x
		den *= -x
	}

	return ZeroPoleGain{Zeros: z, Poles: p, Gain: proto.Gain * realSnapOne(num/den, np)}
}

func (s Bandpass) transform(proto ZeroPoleGain) ZeroPoleGain {
	nz := len(proto.Zeros)
	np := len(proto.Poles)
	ncommon := min(nz, np)
	halfBW := complex((s.W2-s.W1)/2, 0)
	prod := complex(s.W1*s.W2, 0)

	// Each root splits into a resonant pair; the count deficit between
	// zeros and poles is padded at the origin.
	z := make([]complex128, 2*nz+np-ncommon)
	for i, x := range proto.Zeros {
		b := x * halfBW
		pm := cmplx.Sqrt(b*b - prod)
		z[2*i] = b + pm
		z[2*i+1] = b - pm
	}

	p := make([]complex128, 2*np+nz-ncommon)
	for i, x := range proto.Poles {
		b := x * halfBW
		pm := cmplx.Sqrt(b*b - prod)
		p[2*i] = b + pm
		p[2*i+1] = b - pm
	}

	k := proto.Gain * math.Pow(s.W2-s.W1, float64(np-nz))

	return ZeroPoleGain{Zeros: z, Poles: p, Gain: k}
}

func (s Bandstop) transform(proto ZeroPoleGain) ZeroPoleGain {
	nz := len(proto.Zeros)
	np := len(proto.Poles)
	npairs := nz + np - min(nz, np)
	halfBW := complex((s.W2-s.W1)/2, 0)
	prod := complex(s.W1*s.W2, 0)

	z := make([]complex128, 2*npairs)
	num := complex(1, 0)

	for i, x := range proto.Zeros {
		b := halfBW / x
		pm := cmplx.Sqrt(b*b - prod)
		z[2*i] = b - pm
		z[2*i+1] = b + pm
		num *= -x
	}

	p := make([]complex128, 2*npairs)
	den := complex(1, 0)

	for i, x := range proto.Poles {
		b := halfBW / x
		pm := cmplx.Sqrt(b*b - prod)
		p[2*i] = b - pm
		p[2*i+1] = b + pm
		den *= -x
	}

	// Slots past the transformed roots take conjugate pairs at the
	// geometric-mean notch frequency, +-j*sqrt(w1*w2).
	mean := math.Sqrt(s.W1 * s.W2)
	for i := 2 * nz; i < len(z); i += 2 {
		z[i] = complex(0, mean)
		z[i+1] = complex(0, -mean)
	}

	for i := 2 * np; i < len(p); i += 2 {
		p[i] = complex(0, mean)
		p[i+1] = complex(0, -mean)
	}

	return ZeroPoleGain{Zeros: z, Poles: p, Gain: proto.Gain * realSnapOne(num/den, np)}
}

// realSnapOne returns real(prod), snapped to exactly 1 when prod lies
// within np machine epsilons of unity. Conjugate-paired roots make the
// accumulated product real and positive up to round-off; the snap keeps a
// drifted near-1 product from leaking into the gain. The threshold scales
// with the pole count at both call sites, including the one whose product
// also runs over zeros.
func realSnapOne(prod complex128, np int) float64 {
	if cmplx.Abs(prod-1) < float64(np)*machineEpsilon {
		return 1
	}

	return real(prod)
}
