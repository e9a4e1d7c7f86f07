package pass

import (
	"math"

	"github.com/cwbudde/algo-figures/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// The sections are bilinear transforms prewarped at freq, so the cascade
// is -3 dB at freq exactly. For odd orders, the final section is
// first-order (B2=A2=0). Non-positive orders return nil.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, LowpassRBJ(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// LowpassRBJ designs a second-order lowpass section at freq (Hz) with
// quality factor q, following the RBJ audio EQ cookbook. Frequencies
// outside (0, sampleRate/2) yield zero coefficients; a non-positive q
// falls back to 1/sqrt(2).
func LowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	if _, ok := bilinearK(freq, sampleRate); !ok {
		return biquad.Coefficients{}
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = 1 / math.Sqrt2
	}

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	a0 := 1 + alpha
	return biquad.Coefficients{
		B0: (1 - cw) / 2 / a0,
		B1: (1 - cw) / a0,
		B2: (1 - cw) / 2 / a0,
		A1: -2 * cw / a0,
		A2: (1 - alpha) / a0,
	}
}
