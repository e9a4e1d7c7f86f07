// Package figure ties the individual figures to the configuration and
// writes them to disk.
package figure

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cwbudde/algo-figures/chart"
	"github.com/cwbudde/algo-figures/figure/dds"
	"github.com/cwbudde/algo-figures/figure/peakdetect"
	"github.com/cwbudde/algo-figures/figure/phasexor"
	"github.com/cwbudde/algo-figures/figure/zerocross"
	"github.com/cwbudde/algo-figures/internal/config"
)

// Figure is one chart with a fixed output file name.
type Figure interface {
	Name() string
	Filename() string
	Render(w io.Writer, th chart.Theme) error
}

// All returns every figure configured by cfg, in publication order.
func All(cfg *config.Config, logger *slog.Logger) []Figure {
	return []Figure{
		dds.New(cfg.DDS),
		peakdetect.New(cfg.PeakDetect),
		phasexor.New(cfg.PhaseXOR),
		zerocross.New(cfg.ZeroCross, logger),
	}
}

// Names returns the registry names of figs.
func Names(figs []Figure) []string {
	out := make([]string, len(figs))
	for i, f := range figs {
		out[i] = f.Name()
	}
	return out
}

// Select returns the figures named in names, in the order given. An empty
// names selects all of figs.
func Select(figs []Figure, names []string) ([]Figure, error) {
	if len(names) == 0 {
		return figs, nil
	}
	out := make([]Figure, 0, len(names))
	for _, n := range names {
		i := slices.IndexFunc(figs, func(f Figure) bool { return f.Name() == n })
		if i < 0 {
			return nil, fmt.Errorf("unknown figure %q (available: %s)", n, strings.Join(Names(figs), ", "))
		}
		out = append(out, figs[i])
	}
	return out, nil
}

// Save renders f into dir under its fixed file name and returns the path.
// The file is only written once rendering succeeded.
func Save(f Figure, dir string, th chart.Theme, logger *slog.Logger) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf, th); err != nil {
		return "", fmt.Errorf("render %s: %w", f.Name(), err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, f.Filename())
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if logger != nil {
		logger.Info("chart saved", "figure", f.Name(), "path", path)
	}
	return path, nil
}
