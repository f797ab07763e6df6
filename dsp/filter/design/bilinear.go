package design

import (
	"fmt"
	"math"
)

// Bilinear maps an analog filter to a digital one through the bilinear
// transform x -> (2*fs + x) / (2*fs - x), which carries the imaginary axis
// onto the unit circle and preserves stability.
func Bilinear(sys System, sampleRate float64) (ZeroPoleGain, error) {
	proto, err := sys.zeroPoleGain()
	if err != nil {
		return ZeroPoleGain{}, err
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return ZeroPoleGain{}, fmt.Errorf("%w: sample rate must be positive", ErrInvalidParam)
	}

	fs2 := complex(2*sampleRate, 0)

	// Analog zeros at infinity land at z = -1, the Nyquist frequency.
	z := make([]complex128, max(len(proto.Poles), len(proto.Zeros)))
	for i := range z {
		z[i] = -1
	}

	num := complex(1, 0)
	for i, x := range proto.Zeros {
		z[i] = (fs2 + x) / (fs2 - x)
		num *= fs2 - x
	}

	p := make([]complex128, len(proto.Poles))
	den := complex(1, 0)

	for i, x := range proto.Poles {
		p[i] = (fs2 + x) / (fs2 - x)
		den *= fs2 - x
	}

	return ZeroPoleGain{Zeros: z, Poles: p, Gain: proto.Gain * real(num) / real(den)}, nil
}

// DigitalFilter designs a digital filter for the given band shape from an
// analog lowpass prototype: the shape edges are prewarped, the prototype is
// transformed onto the band, and the result is discretized at the internal
// sample rate of 2 matching the Nyquist-relative edge convention.
func DigitalFilter(shape Shape, proto System) (ZeroPoleGain, error) {
	zpk, err := proto.zeroPoleGain()
	if err != nil {
		return ZeroPoleGain{}, err
	}

	if err := validateDigital(shape); err != nil {
		return ZeroPoleGain{}, err
	}

	return Bilinear(shape.prewarped().transform(zpk), 2)
}
