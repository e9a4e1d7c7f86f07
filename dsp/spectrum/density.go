package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-figures/dsp/core"
)

// PowerSpectrum returns the one-sided power spectrum |X[k]|^2, k = 0..n/2,
// of x zero padded to the next power of two n. The FFT size n is returned
// alongside so callers can map bins to frequency (k*sampleRate/n).
func PowerSpectrum(x []float64) ([]float64, int, error) {
	if len(x) == 0 {
		return nil, 0, fmt.Errorf("power spectrum input must not be empty")
	}

	n := core.NextPowerOfTwo(len(x))
	if n < 2 {
		n = 2
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT: %w", err)
	}

	return Power(out[:n/2+1]), n, nil
}

// OccupiedBandwidth returns the lowest frequency below which the given
// fraction of the total power of a one-sided spectrum lies.
func OccupiedBandwidth(power []float64, sampleRate float64, fftSize int, fraction float64) (float64, error) {
	if len(power) == 0 {
		return 0, fmt.Errorf("occupied bandwidth requires a non-empty spectrum")
	}
	if sampleRate <= 0 || fftSize <= 0 {
		return 0, fmt.Errorf("occupied bandwidth sample rate and fft size must be > 0: %g, %d", sampleRate, fftSize)
	}
	if fraction <= 0 || fraction > 1 {
		return 0, fmt.Errorf("occupied bandwidth fraction must be in (0, 1]: %g", fraction)
	}

	var total float64
	for _, p := range power {
		total += p
	}
	if total == 0 {
		return 0, nil
	}

	target := fraction * total
	var cum float64
	for k, p := range power {
		cum += p
		if cum >= target {
			return float64(k) * sampleRate / float64(fftSize), nil
		}
	}
	return float64(len(power)-1) * sampleRate / float64(fftSize), nil
}
