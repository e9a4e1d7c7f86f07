package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestSamplesFor(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		duration float64
		want     int
	}{
		{name: "three periods at 100x", rate: 10e6, duration: 3 / 100e3, want: 300},
		{name: "fractional", rate: 1000, duration: 0.0025, want: 3},
		{name: "zero duration", rate: 1000, duration: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ApplyProcessorOptions(WithSampleRate(tt.rate))
			if got := cfg.SamplesFor(tt.duration); got != tt.want {
				t.Fatalf("SamplesFor(%v) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}

func TestPeriod(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(200e6))
	if !NearlyEqual(cfg.Period(), 5e-9, 1e-12) {
		t.Fatalf("Period() = %v, want 5e-9", cfg.Period())
	}
}
