package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced samples over the closed interval
// [start, stop].
func Linspace(start, stop float64, n int) ([]float64, error) {
	switch {
	case n <= 0:
		return nil, fmt.Errorf("linspace length must be > 0: %d", n)
	case n == 1:
		return []float64{start}, nil
	}
	out := floats.Span(make([]float64, n), start, stop)
	out[n-1] = stop
	return out, nil
}

// Arange returns start, start+step, ... up to but excluding stop.
func Arange(start, stop, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("arange step must be > 0: %g", step)
	}
	if stop <= start {
		return nil, fmt.Errorf("arange stop must be > start: %g <= %g", stop, start)
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// Scale returns a copy of x multiplied by k, e.g. seconds to microseconds.
func Scale(x []float64, k float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	out := make([]float64, len(x))
	vecmath.ScaleBlock(out, x, k)
	return out
}

// Add returns the elementwise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("add length mismatch: %d != %d", len(a), len(b))
	}
	out := make([]float64, len(a))
	copy(out, a)
	vecmath.AddBlockInPlace(out, b)
	return out, nil
}

// Offset returns a copy of x shifted by c.
func Offset(x []float64, c float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + c
	}
	return out
}
