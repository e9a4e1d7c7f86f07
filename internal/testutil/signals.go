package testutil

import "math"

// SineAt evaluates amplitude*sin(2*pi*freqHz*t) at every instant of t.
func SineAt(t []float64, freqHz, amplitude float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*ti)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
