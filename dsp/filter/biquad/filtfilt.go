package biquad

import (
	"fmt"
	"slices"
)

// FiltFilt applies the cascade described by coeffs forward and then
// backward over x, giving zero phase distortion and squared magnitude
// response.
//
// The input is extended at both ends by an odd reflection of
// 3*(2*len(coeffs)+1) samples (clamped to len(x)-1), and each pass starts
// from the steady state matching its first sample. This keeps the edges of
// short traces free of start-up transients.
func FiltFilt(coeffs []Coefficients, x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("filtfilt input must not be empty")
	}
	if len(coeffs) == 0 {
		return slices.Clone(x), nil
	}

	pad := min(3*(2*len(coeffs)+1), len(x)-1)
	ext := oddExtend(x, pad)

	chain := NewChain(coeffs)
	chain.Prime(ext[0])
	chain.ProcessBlock(ext)

	slices.Reverse(ext)
	chain.Prime(ext[0])
	chain.ProcessBlock(ext)
	slices.Reverse(ext)

	return ext[pad : pad+len(x)], nil
}

// oddExtend mirrors pad samples around each end point:
// 2*x[0]-x[pad..1] on the left and 2*x[n-1]-x[n-2..n-1-pad] on the right.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	out := make([]float64, n+2*pad)
	first, last := x[0], x[n-1]
	for i := range pad {
		out[i] = 2*first - x[pad-i]
		out[pad+n+i] = 2*last - x[n-2-i]
	}
	copy(out[pad:], x)
	return out
}
