package window

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// oversample is the number of spectrum samples per DFT bin used by Analyze.
// The searches below interpolate between grid points, so the grid only has
// to be dense enough to bracket every main-lobe feature and sidelobe peak.
const oversample = 64

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients.
// The spectrum is sampled by a zero-padded FFT with oversample points per
// bin; lobe positions and levels are refined by interpolation on that grid.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0

	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return Analysis{}
	}

	out := Analysis{
		CoherentGain: sum / float64(n),
		ENBW:         float64(n) * sumSq / (sum * sum),
	}

	power := spectrumPower(coeffs)
	if len(power) < 2 || power[0] == 0 {
		return out
	}

	// Grid points per DFT bin of the unpadded window.
	gridPerBin := float64(2*(len(power)-1)) / float64(n)

	out.ScallopLossdB = core.LinearPowerToDB(powerAt(power, gridPerBin/2) / power[0])
	out.Bandwidth3dB = bandwidth3dB(power, gridPerBin)
	out.FirstMinimumBins = firstMinimum(power, gridPerBin)
	out.HighestSidelobedB = highestSidelobe(power, gridPerBin, out.FirstMinimumBins)

	return out
}

// spectrumPower returns |DFT|^2 of the zero-padded window on the one-sided
// grid [0, Nyquist].
func spectrumPower(coeffs []float64) []float64 {
	fftSize := nextPowerOfTwo(len(coeffs) * oversample)

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for i := range half {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}

	power := make([]float64, half)
	vecmath.Magnitude(power, re, im)

	for i, m := range power {
		power[i] = m * m
	}

	return power
}

// powerAt linearly interpolates the power grid at a fractional index.
func powerAt(power []float64, idx float64) float64 {
	if idx <= 0 {
		return power[0]
	}

	i := int(idx)
	if i >= len(power)-1 {
		return power[len(power)-1]
	}

	frac := idx - float64(i)

	return power[i] + frac*(power[i+1]-power[i])
}

// bandwidth3dB finds the two-sided half-power main lobe width in bins from
// the first crossing below half the DC power.
func bandwidth3dB(power []float64, gridPerBin float64) float64 {
	half := power[0] / 2

	for i := 1; i < len(power); i++ {
		if power[i] < half {
			frac := (power[i-1] - half) / (power[i-1] - power[i])
			return 2 * (float64(i-1) + frac) / gridPerBin
		}
	}

	return 0
}

// firstMinimum locates the first spectral null in bins. The scan requires a
// descent below 10% of the DC power before accepting a turn-around, so the
// wide main-lobe plateau of flat-top windows is not mistaken for a null.
func firstMinimum(power []float64, gridPerBin float64) float64 {
	threshold := power[0] * 0.1

	for i := 1; i < len(power)-1; i++ {
		if power[i] < threshold && power[i+1] > power[i] {
			return (float64(i) + parabolicVertex(power[i-1], power[i], power[i+1])) / gridPerBin
		}
	}

	return float64(len(power)-1) / gridPerBin
}

// highestSidelobe finds the peak sidelobe level in dB relative to DC,
// scanning from the first null to Nyquist.
func highestSidelobe(power []float64, gridPerBin, firstMinBins float64) float64 {
	start := int(firstMinBins*gridPerBin) + 1

	peak := 0.0
	peakIdx := -1

	for i := start; i < len(power); i++ {
		if power[i] > peak {
			peak = power[i]
			peakIdx = i
		}
	}

	if peakIdx <= 0 || peak == 0 {
		return math.Inf(-1)
	}

	if peakIdx < len(power)-1 {
		a, b, c := power[peakIdx-1], power[peakIdx], power[peakIdx+1]
		off := parabolicVertex(a, b, c)
		peak = b - 0.25*(a-c)*off
	}

	return core.LinearPowerToDB(peak / power[0])
}

// parabolicVertex returns the vertex offset in (-1, 1) of the parabola
// through three equally spaced samples.
func parabolicVertex(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	return 0.5 * (a - c) / den
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
