package resample

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/filter/design"
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// DesignFilter designs the anti-aliasing prototype for converting by rate,
// the ratio of output rate to input rate. The prototype is intended for a
// polyphase structure with the configured phase count and has a DC gain equal
// to that count so interpolation preserves amplitude.
func DesignFilter(rate float64, opts ...Option) ([]float64, error) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, ErrInvalidRate
	}

	cfg := applyOptions(opts)

	// When decimating, the output Nyquist is the tighter constraint.
	cutoff := cfg.relBW / float64(cfg.phases)
	if rate < 1 {
		cutoff *= rate
	}

	return kaiserPrototype(cfg.phases, cutoff, cfg.attenuation)
}

// DesignFilterRational designs the prototype for an up/down conversion ratio.
// The ratio is reduced to lowest terms first and the phase count is the
// reduced up factor.
func DesignFilterRational(up, down int, opts ...Option) ([]float64, error) {
	if up <= 0 || down <= 0 {
		return nil, ErrInvalidRatio
	}

	g := gcd(up, down)
	up /= g
	down /= g

	return designRational(up, down, applyOptions(opts))
}

func designRational(up, down int, cfg config) ([]float64, error) {
	cutoff := cfg.relBW / float64(max(up, down))

	return kaiserPrototype(up, cutoff, cfg.attenuation)
}

// kaiserPrototype builds a Kaiser-windowed lowpass whose transition band
// spans 20% of the cutoff. The tap count is rounded up to a whole number of
// phases and then forced odd so the prototype has a center tap.
func kaiserPrototype(nPhases int, cutoff, attenuation float64) ([]float64, error) {
	hLen, alpha, err := fir.KaiserOrder(0.2*cutoff, attenuation)
	if err != nil {
		return nil, err
	}

	hLen = nPhases * ((hLen + nPhases - 1) / nPhases)
	if hLen%2 == 0 {
		hLen++
	}

	win, err := window.Kaiser(hLen, math.Pi*alpha)
	if err != nil {
		return nil, err
	}

	taps, err := fir.DigitalFilter(design.Lowpass{W: cutoff}, fir.Window{Coeffs: win, Scale: true})
	if err != nil {
		return nil, err
	}

	vecmath.ScaleBlock(taps, taps, float64(nPhases))

	return taps, nil
}

func splitPhases(taps []float64, up int) ([][]float64, int) {
	phases := make([][]float64, up)
	maxPhaseLn := 0

	for p := range up {
		phase := make([]float64, 0, (len(taps)-p+up-1)/up)
		for i := p; i < len(taps); i += up {
			phase = append(phase, taps[i])
		}

		if len(phase) > maxPhaseLn {
			maxPhaseLn = len(phase)
		}

		phases[p] = phase
	}

	return phases, maxPhaseLn
}

func approximateRatio(v float64, maxDen int) (num, den int) {
	if maxDen <= 0 {
		maxDen = 4096
	}

	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1, 1
	}

	a0 := math.Floor(v)
	p0, q0 := 1.0, 0.0
	p1, q1 := a0, 1.0
	x := v

	for {
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}

		x = 1 / frac
		a := math.Floor(x)
		p2 := a*p1 + p0

		q2 := a*q1 + q0
		if q2 > float64(maxDen) {
			break
		}

		p0, q0 = p1, q1
		p1, q1 = p2, q2
	}

	num = int(math.Round(p1))

	den = int(math.Round(q1))
	if den <= 0 {
		return 1, 1
	}

	g := gcd(num, den)

	return num / g, den / g
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}
