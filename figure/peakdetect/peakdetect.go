// Package peakdetect draws a noisy sine together with the output of an
// ideal peak detector, the running maximum of the input.
package peakdetect

import (
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-figures/chart"
	"github.com/cwbudde/algo-figures/dsp/signal"
	timestats "github.com/cwbudde/algo-figures/stats/time"
)

const (
	name     = "peakdetect"
	filename = "signal_chart.svg"
)

// Params configures the peak detector figure.
type Params struct {
	FreqHz  float64 `yaml:"freq_hz"`
	Vpp     float64 `yaml:"vpp"`
	Periods float64 `yaml:"periods"`
	Samples int     `yaml:"samples"`
	// NoiseVpp is the peak-to-peak amplitude of the added noise.
	NoiseVpp float64 `yaml:"noise_vpp"`
	// NoiseBandwidthHz and NoiseOversample set the coarse grid the noise is
	// drawn on before interpolation.
	NoiseBandwidthHz float64 `yaml:"noise_bandwidth_hz"`
	NoiseOversample  float64 `yaml:"noise_oversample"`
	Seed             int64   `yaml:"seed"`

	SignalColor string  `yaml:"signal_color"`
	PeakColor   string  `yaml:"peak_color"`
	YLimit      float64 `yaml:"y_limit"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// DefaultParams returns the published figure's parameters.
func DefaultParams() Params {
	return Params{
		FreqHz:           100e3,
		Vpp:              5,
		Periods:          2,
		Samples:          10000,
		NoiseVpp:         0.5,
		NoiseBandwidthHz: 2e6,
		NoiseOversample:  3,
		Seed:             1,
		SignalColor:      "#0055AA",
		PeakColor:        "#CC3311",
		YLimit:           3,
		Width:            6,
		Height:           4,
	}
}

// Validate checks p for values the figure cannot draw.
func (p Params) Validate() error {
	if p.FreqHz <= 0 {
		return fmt.Errorf("peakdetect freq_hz must be > 0: %g", p.FreqHz)
	}
	if p.Periods <= 0 {
		return fmt.Errorf("peakdetect periods must be > 0: %g", p.Periods)
	}
	if p.Samples < 2 {
		return fmt.Errorf("peakdetect samples must be >= 2: %d", p.Samples)
	}
	if p.Vpp < 0 || p.NoiseVpp < 0 {
		return fmt.Errorf("peakdetect amplitudes must be >= 0: %g, %g", p.Vpp, p.NoiseVpp)
	}
	if p.NoiseBandwidthHz <= 0 || p.NoiseOversample <= 0 {
		return fmt.Errorf("peakdetect noise grid must be > 0: %g, %g", p.NoiseBandwidthHz, p.NoiseOversample)
	}
	if _, err := chart.Color(p.SignalColor); err != nil {
		return fmt.Errorf("peakdetect signal_color: %w", err)
	}
	if _, err := chart.Color(p.PeakColor); err != nil {
		return fmt.Errorf("peakdetect peak_color: %w", err)
	}
	if p.YLimit <= 0 || p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("peakdetect limits and size must be > 0: %g, %gx%g", p.YLimit, p.Width, p.Height)
	}
	return nil
}

// Duration returns the span of the time axis in seconds.
func (p Params) Duration() float64 {
	return p.Periods / p.FreqHz
}

// Data is the synthesized content of the figure.
type Data struct {
	T      []float64 // seconds
	Clean  []float64
	Noise  []float64
	Input  []float64
	Detect []float64
}

// Synthesize builds the noisy input and the detector output.
func Synthesize(p Params) (Data, error) {
	if err := p.Validate(); err != nil {
		return Data{}, err
	}
	t, err := signal.Linspace(0, p.Duration(), p.Samples)
	if err != nil {
		return Data{}, err
	}
	clean, err := signal.Tone{Amplitude: p.Vpp / 2, FreqHz: p.FreqHz}.Sample(t)
	if err != nil {
		return Data{}, err
	}
	gen := signal.NewGeneratorWithOptions(nil, signal.WithSeed(p.Seed))
	noise, err := gen.BandLimitedUniform(t, p.NoiseBandwidthHz, p.NoiseOversample, p.NoiseVpp)
	if err != nil {
		return Data{}, fmt.Errorf("peakdetect noise: %w", err)
	}
	input, err := signal.Add(clean, noise)
	if err != nil {
		return Data{}, err
	}
	return Data{
		T:      t,
		Clean:  clean,
		Noise:  noise,
		Input:  input,
		Detect: timestats.RunningMax(input),
	}, nil
}

// Figure renders the peak detector figure.
type Figure struct {
	params Params
}

// New returns the figure for p.
func New(p Params) *Figure {
	return &Figure{params: p}
}

// Name returns the registry name.
func (f *Figure) Name() string { return name }

// Filename returns the fixed output file name.
func (f *Figure) Filename() string { return filename }

// Render synthesizes the data and writes the SVG to w.
func (f *Figure) Render(w io.Writer, th chart.Theme) error {
	d, err := Synthesize(f.params)
	if err != nil {
		return err
	}
	sizes := chart.DefaultSizes()
	sizes.Label = vg.Points(12)
	sizes.Legend = vg.Points(11)
	p := th.NewPlot(sizes)
	p.X.Label.Text = "Čas [μs]"
	p.Y.Label.Text = "Napětí [U]"

	us := signal.Scale(d.T, 1e6)
	input, err := chart.Line(us, d.Input, chart.Stroke(chart.MustColor(f.params.SignalColor), 0.7, nil))
	if err != nil {
		return err
	}
	detect, err := chart.Line(us, d.Detect, chart.Stroke(chart.MustColor(f.params.PeakColor), 1.5, chart.Dashed(1.5)))
	if err != nil {
		return err
	}
	grid := chart.Grid(chart.Stroke(chart.WithAlpha(chart.MustColor("#b0b0b0"), 0.7), 0.8, chart.Dashed(0.8)))
	p.Add(grid, input, detect)

	var lg chart.Legend
	lg.Add("U in", input)
	lg.Add("U šp", detect)
	lg.Apply(p)

	p.X.Min, p.X.Max = 0, us[len(us)-1]
	p.Y.Min, p.Y.Max = -f.params.YLimit, f.params.YLimit
	return chart.Write(w, chart.Inches(f.params.Width, f.params.Height), p)
}
