package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Font.Target != "IoskeleyMono_Regular" || cfg.Font.Fallback != "monospace" {
		t.Fatalf("font defaults = %+v", cfg.Font)
	}
	if cfg.ZeroCross.Seed != 42 || cfg.DDS.TableSize != 17 {
		t.Fatalf("figure defaults not applied: %+v %+v", cfg.ZeroCross, cfg.DDS)
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figures.yaml")
	content := `output_dir: out
logging:
  level: debug
font:
  target: "Ioskeley Mono"
  dirs: [/opt/fonts]
dds:
  periods: 3
phasexor:
  offsets: [20, 10, 0]
zerocross:
  seed: 7
  signals: 12
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.OutputDir != "out" || cfg.Logging.Level != "debug" {
		t.Fatalf("top-level = %q/%q", cfg.OutputDir, cfg.Logging.Level)
	}
	if diff := cmp.Diff([]string{"/opt/fonts"}, cfg.Font.Dirs); diff != "" {
		t.Fatalf("font dirs (-want +got):\n%s", diff)
	}
	if cfg.DDS.Periods != 3 || cfg.DDS.TableSize != 17 {
		t.Fatalf("dds = %+v, want periods overridden and table size kept", cfg.DDS)
	}
	if cfg.PhaseXOR.Offsets != [3]float64{20, 10, 0} {
		t.Fatalf("offsets = %v", cfg.PhaseXOR.Offsets)
	}
	if cfg.ZeroCross.Seed != 7 || cfg.ZeroCross.Signals != 12 || cfg.ZeroCross.NoiseStd != 0.35 {
		t.Fatalf("zerocross = %+v", cfg.ZeroCross)
	}

	r := cfg.Resolver()
	if r.Target != "Ioskeley Mono" || len(r.Dirs) != 1 || r.Fallback != "monospace" {
		t.Fatalf("resolver = %+v", r)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse([]byte("# nothing\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("empty config differs from default (-want +got):\n%s", diff)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("dds:\n  table_sise: 9\n"))
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Fatalf("Parse error = %v, want unknown field error", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "log level"},
		{"empty target", func(c *Config) { c.Font.Target = "" }, "font target"},
		{"dds", func(c *Config) { c.DDS.Periods = 0 }, "dds:"},
		{"peakdetect", func(c *Config) { c.PeakDetect.Samples = 1 }, "peakdetect:"},
		{"phasexor", func(c *Config) { c.PhaseXOR.FreqHz = 0 }, "phasexor:"},
		{"zerocross", func(c *Config) { c.ZeroCross.Signals = 0 }, "zerocross:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}
