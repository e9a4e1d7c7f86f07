package signal

import (
	"fmt"
	"math"
)

// Tone is a closed-form sinusoid
//
//	v(t) = Amplitude * sin(2*pi*FreqHz*(t - Delay) - PhaseRad)
//
// Delay and PhaseRad express the same shift in time and angle units; a
// rising zero crossing sits at t = Delay when PhaseRad is 0.
type Tone struct {
	Amplitude float64
	FreqHz    float64
	PhaseRad  float64
	Delay     float64
}

// At evaluates the tone at time t.
func (tn Tone) At(t float64) float64 {
	return tn.Amplitude * math.Sin(2*math.Pi*tn.FreqHz*(t-tn.Delay)-tn.PhaseRad)
}

// Sample evaluates the tone at every instant of t.
func (tn Tone) Sample(t []float64) ([]float64, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("tone time axis must not be empty")
	}
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = tn.At(ti)
	}
	return out, nil
}

// Period returns 1/FreqHz, or 0 for a non-positive frequency.
func (tn Tone) Period() float64 {
	if tn.FreqHz <= 0 {
		return 0
	}
	return 1 / tn.FreqHz
}
