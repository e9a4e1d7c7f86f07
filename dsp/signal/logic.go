package signal

import "fmt"

// Square thresholds x: high where x >= threshold, 0 elsewhere.
func Square(x []float64, threshold, high float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v >= threshold {
			out[i] = high
		}
	}
	return out
}

// XOR compares a and b against threshold (strictly greater counts as true)
// and returns high where exactly one of them is true, 0 elsewhere.
func XOR(a, b []float64, threshold, high float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("xor length mismatch: %d != %d", len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		if (a[i] > threshold) != (b[i] > threshold) {
			out[i] = high
		}
	}
	return out, nil
}

// Tile plays one period of a lookup table repeats times and appends closing,
// the sample that completes the last period. The result has
// len(period)*repeats+1 samples.
func Tile(period []float64, repeats int, closing float64) ([]float64, error) {
	if len(period) == 0 {
		return nil, fmt.Errorf("tile period must not be empty")
	}
	if repeats <= 0 {
		return nil, fmt.Errorf("tile repeats must be > 0: %d", repeats)
	}
	out := make([]float64, 0, len(period)*repeats+1)
	for range repeats {
		out = append(out, period...)
	}
	return append(out, closing), nil
}

// Fill returns a slice of n copies of v.
func Fill(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
