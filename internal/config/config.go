// Package config loads the figures configuration from YAML.
// Values missing from the file keep their defaults; command-line flags
// are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-figures/figure/dds"
	"github.com/cwbudde/algo-figures/figure/peakdetect"
	"github.com/cwbudde/algo-figures/figure/phasexor"
	"github.com/cwbudde/algo-figures/figure/zerocross"
	"github.com/cwbudde/algo-figures/internal/fontfind"
	"github.com/cwbudde/algo-figures/internal/logging"
)

// Config contains all figure generation settings.
type Config struct {
	// OutputDir is where the SVG files are written.
	OutputDir string `yaml:"output_dir"`

	Logging LoggingConfig `yaml:"logging"`
	Font    FontConfig    `yaml:"font"`

	DDS        dds.Params        `yaml:"dds"`
	PeakDetect peakdetect.Params `yaml:"peakdetect"`
	PhaseXOR   phasexor.Params   `yaml:"phasexor"`
	ZeroCross  zerocross.Params  `yaml:"zerocross"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "debug", "info" (default), "warn" or "error".
	Level string `yaml:"level"`
}

// FontConfig configures font resolution.
type FontConfig struct {
	// Target is the file-name fragment to search for.
	Target string `yaml:"target"`
	// Dirs overrides the default search directories when non-empty.
	Dirs []string `yaml:"dirs,omitempty"`
	// Fallback is the generic family used when Target does not resolve.
	Fallback string `yaml:"fallback"`
}

// Default returns a Config reproducing the published figures.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Logging:   LoggingConfig{Level: "info"},
		Font: FontConfig{
			Target:   fontfind.DefaultTarget,
			Fallback: fontfind.DefaultFallback,
		},
		DDS:        dds.DefaultParams(),
		PeakDetect: peakdetect.DefaultParams(),
		PhaseXOR:   phasexor.DefaultParams(),
		ZeroCross:  zerocross.DefaultParams(),
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Resolver returns the font resolver described by the font section.
func (c *Config) Resolver() *fontfind.Resolver {
	r := fontfind.New(c.Font.Target)
	if len(c.Font.Dirs) > 0 {
		r.Dirs = c.Font.Dirs
	}
	if c.Font.Fallback != "" {
		r.Fallback = c.Font.Fallback
	}
	return r
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	if c.Font.Target == "" {
		return fmt.Errorf("font target must not be empty")
	}
	checks := []struct {
		section string
		err     error
	}{
		{"dds", c.DDS.Validate()},
		{"peakdetect", c.PeakDetect.Validate()},
		{"phasexor", c.PhaseXOR.Validate()},
		{"zerocross", c.ZeroCross.Validate()},
	}
	for _, ch := range checks {
		if ch.err != nil {
			return fmt.Errorf("%s: %w", ch.section, ch.err)
		}
	}
	return nil
}
