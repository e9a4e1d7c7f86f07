package time

import "math"

// Summary holds the time-domain figures logged for every synthesized trace.
type Summary struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	Min           float64
	Max           float64
	Peak          float64 // max(|max|, |min|)
	ZeroCrossings int
}

// Summarize computes a Summary in a single pass.
func Summarize(signal []float64) Summary {
	n := len(signal)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		Length: n,
		Min:    signal[0],
		Max:    signal[0],
	}
	var sumSq float64
	for i, x := range signal {
		sumSq += x * x
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
		if i > 0 && signal[i-1]*x < 0 {
			s.ZeroCrossings++
		}
	}
	s.DC = DC(signal)
	s.RMS = math.Sqrt(sumSq / float64(n))
	s.Peak = math.Max(math.Abs(s.Min), math.Abs(s.Max))

	return s
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	if len(signal) < 2 {
		return 0
	}

	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// RunningMax models an ideal peak-hold detector: out[i] is the largest value
// seen in signal[0..i]. The result is non-decreasing.
func RunningMax(signal []float64) []float64 {
	if len(signal) == 0 {
		return nil
	}

	out := make([]float64, len(signal))
	held := signal[0]
	for i, x := range signal {
		if x > held {
			held = x
		}
		out[i] = held
	}

	return out
}
