package core

// ProcessorConfig defines the sampling grid shared by generators and filters.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 10 MHz grid, fine enough for the
// 100 kHz signals drawn in the figures.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 10e6,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Period returns the sample spacing in seconds.
func (c ProcessorConfig) Period() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return 1 / c.SampleRate
}

// SamplesFor returns how many samples of the grid fit into [0, duration),
// matching a half-open arange.
func (c ProcessorConfig) SamplesFor(duration float64) int {
	if duration <= 0 || c.SampleRate <= 0 {
		return 0
	}
	n := duration * c.SampleRate
	// Guard against 299.99999999 style rounding of exact multiples.
	r := float64(int(n + 0.5))
	if NearlyEqual(n, r, 1e-9) {
		return int(r)
	}
	return int(n) + 1
}
