package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-figures/dsp/core"
	"github.com/cwbudde/algo-figures/dsp/spectrum"
)

// Generator creates signals on a shared sampling grid. Noise draws come from
// a single seeded stream, so consecutive calls return fresh but reproducible
// samples.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the seed the noise stream was last reset to.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed restarts the noise stream from seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// TimeAxis returns the sample instants of the grid covering [0, duration).
func (g *Generator) TimeAxis(duration float64) ([]float64, error) {
	n := g.cfg.SamplesFor(duration)
	if n <= 0 {
		return nil, fmt.Errorf("time axis duration must cover at least one sample: %g", duration)
	}
	dt := g.cfg.Period()
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out, nil
}

// Sine generates a sine wave on the grid, starting at phase 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// UniformNoise generates white noise in [-amplitude, amplitude].
func (g *Generator) UniformNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = (g.rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// GaussianNoise generates normally distributed samples with the given mean
// and standard deviation.
func (g *Generator) GaussianNoise(mean, stdDev float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if stdDev < 0 {
		return nil, fmt.Errorf("noise standard deviation must be >= 0: %f", stdDev)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = mean + g.rng.NormFloat64()*stdDev
	}
	return out, nil
}

// BandLimitedUniform draws uniform noise of peak-to-peak vpp on a coarse grid
// of duration*bandwidthHz*oversample points spanning t, then linearly
// interpolates it onto t. The result models noise whose spectrum rolls off
// near bandwidthHz.
func (g *Generator) BandLimitedUniform(t []float64, bandwidthHz, oversample, vpp float64) ([]float64, error) {
	if len(t) < 2 {
		return nil, fmt.Errorf("band-limited noise needs at least 2 time samples: %d", len(t))
	}
	if bandwidthHz <= 0 || oversample <= 0 {
		return nil, fmt.Errorf("band-limited noise bandwidth and oversample must be > 0: %g, %g", bandwidthHz, oversample)
	}
	duration := t[len(t)-1] - t[0]
	points := int(duration * bandwidthHz * oversample)
	if points < 2 {
		return nil, fmt.Errorf("band-limited noise grid too coarse: %d points", points)
	}
	grid, err := Linspace(t[0], t[len(t)-1], points)
	if err != nil {
		return nil, err
	}
	draws, err := g.UniformNoise(vpp/2, points)
	if err != nil {
		return nil, err
	}
	return spectrum.InterpolateLinear(grid, draws, t)
}
