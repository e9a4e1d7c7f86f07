package zerocross

import (
	"fmt"
	"math"
)

// Crossing is one rising zero crossing.
type Crossing struct {
	Index int     // index of the last negative sample
	Time  float64 // interpolated crossing time
}

// Rising returns every rising crossing of v sampled at t, in time order.
func Rising(t, v []float64) ([]Crossing, error) {
	if len(t) != len(v) {
		return nil, fmt.Errorf("zerocross: time/value length mismatch: %d != %d", len(t), len(v))
	}

	var out []Crossing
	for i := 0; i+1 < len(v); i++ {
		if v[i] < 0 && v[i+1] >= 0 {
			out = append(out, Crossing{Index: i, Time: Interpolate(t[i], t[i+1], v[i], v[i+1])})
		}
	}
	return out, nil
}

// Interpolate returns the root of the line through (t1, v1) and (t2, v2).
// A flat segment returns t1.
func Interpolate(t1, t2, v1, v2 float64) float64 {
	if v2 == v1 {
		return t1
	}
	return t1 - v1*(t2-t1)/(v2-v1)
}

// Nearest returns the rising crossing of v closest to reference. If v has
// no rising crossing, reference itself is returned with ok == false.
func Nearest(t, v []float64, reference float64) (float64, bool, error) {
	crossings, err := Rising(t, v)
	if err != nil {
		return 0, false, err
	}
	if len(crossings) == 0 {
		return reference, false, nil
	}

	best := crossings[0].Time
	bestDist := math.Abs(best - reference)
	for _, c := range crossings[1:] {
		if d := math.Abs(c.Time - reference); d < bestDist {
			best, bestDist = c.Time, d
		}
	}
	return best, true, nil
}
