// Package zerocross draws the zero-crossing spread figure: several noisy
// 100 kHz sines whose ideal rising crossings scatter around 5 µs, each
// marked at the interpolated crossing found in the noisy trace.
package zerocross

import (
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-figures/chart"
	"github.com/cwbudde/algo-figures/dsp/filter/biquad"
	"github.com/cwbudde/algo-figures/dsp/filter/design/pass"
	"github.com/cwbudde/algo-figures/dsp/signal"
	"github.com/cwbudde/algo-figures/dsp/spectrum"
	crossing "github.com/cwbudde/algo-figures/measure/zerocross"
)

const (
	name     = "zerocross"
	filename = "noisy_signal_chart.svg"
)

// bandwidthFraction is the share of noise power reported as its bandwidth.
const bandwidthFraction = 0.99

// Params configures the zero-crossing figure. Times are in microseconds.
type Params struct {
	FreqHz    float64 `yaml:"freq_hz"`
	Amplitude float64 `yaml:"amplitude"`
	NoiseStd  float64 `yaml:"noise_std"`

	StartUS float64 `yaml:"start_us"`
	StopUS  float64 `yaml:"stop_us"`
	Samples int     `yaml:"samples"`

	// CutoffHz and FilterOrder describe the Butterworth low-pass that
	// limits the noise bandwidth.
	CutoffHz    float64 `yaml:"cutoff_hz"`
	FilterOrder int     `yaml:"filter_order"`

	Seed           int64   `yaml:"seed"`
	Signals        int     `yaml:"signals"`
	CrossingMeanUS float64 `yaml:"crossing_mean_us"`
	CrossingStdUS  float64 `yaml:"crossing_std_us"`

	MarkerColor      string  `yaml:"marker_color"`
	MarkerHalfHeight float64 `yaml:"marker_half_height"`
	YLimit           float64 `yaml:"y_limit"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
}

// DefaultParams returns the published figure's parameters.
func DefaultParams() Params {
	return Params{
		FreqHz:           100e3,
		Amplitude:        2.5,
		NoiseStd:         0.35,
		StartUS:          2.5,
		StopUS:           7.5,
		Samples:          1000,
		CutoffHz:         10e6,
		FilterOrder:      4,
		Seed:             42,
		Signals:          5,
		CrossingMeanUS:   5,
		CrossingStdUS:    0.2,
		MarkerColor:      "#00D138",
		MarkerHalfHeight: 0.2,
		YLimit:           3.5,
		Width:            8,
		Height:           6,
	}
}

// Validate checks p for values the figure cannot draw.
func (p Params) Validate() error {
	if p.FreqHz <= 0 {
		return fmt.Errorf("zerocross freq_hz must be > 0: %g", p.FreqHz)
	}
	if p.Amplitude < 0 || p.NoiseStd < 0 || p.CrossingStdUS < 0 {
		return fmt.Errorf("zerocross amplitude and deviations must be >= 0: %g, %g, %g", p.Amplitude, p.NoiseStd, p.CrossingStdUS)
	}
	if p.StopUS <= p.StartUS {
		return fmt.Errorf("zerocross stop_us must be > start_us: %g <= %g", p.StopUS, p.StartUS)
	}
	if p.Samples < 2 {
		return fmt.Errorf("zerocross samples must be >= 2: %d", p.Samples)
	}
	if p.Signals <= 0 {
		return fmt.Errorf("zerocross signals must be > 0: %d", p.Signals)
	}
	if p.FilterOrder <= 0 {
		return fmt.Errorf("zerocross filter_order must be > 0: %d", p.FilterOrder)
	}
	if fs := p.SampleRate(); p.CutoffHz <= 0 || p.CutoffHz >= fs/2 {
		return fmt.Errorf("zerocross cutoff_hz must be in (0, %g): %g", fs/2, p.CutoffHz)
	}
	if _, err := chart.Color(p.MarkerColor); err != nil {
		return fmt.Errorf("zerocross marker_color: %w", err)
	}
	if p.YLimit <= 0 || p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("zerocross limits and size must be > 0: %g, %gx%g", p.YLimit, p.Width, p.Height)
	}
	return nil
}

// SampleRate returns the rate implied by the time axis, in Hz.
func (p Params) SampleRate() float64 {
	dt := (p.StopUS - p.StartUS) / float64(p.Samples-1) * 1e-6
	return 1 / dt
}

// Trace is one noisy sine and its measured crossing.
type Trace struct {
	// Reference is the theoretical rising crossing, in µs.
	Reference float64
	Voltage   []float64
	// Crossing is the interpolated rising crossing nearest Reference, in
	// µs. Found is false when the trace has no rising crossing and
	// Crossing fell back to Reference.
	Crossing float64
	Found    bool
}

// Data is the synthesized content of the figure.
type Data struct {
	T      []float64 // µs
	Traces []Trace
	// NoiseBandwidthHz is the frequency below which most of the filtered
	// noise power of the first trace lies.
	NoiseBandwidthHz float64
}

// Synthesize draws the reference crossings, builds each noisy trace and
// measures its crossing. A trace without a rising crossing is logged and
// keeps its reference as the marker position.
func Synthesize(p Params, logger *slog.Logger) (Data, error) {
	if err := p.Validate(); err != nil {
		return Data{}, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	t, err := signal.Linspace(p.StartUS, p.StopUS, p.Samples)
	if err != nil {
		return Data{}, err
	}
	fs := p.SampleRate()
	coeffs := pass.ButterworthLP(p.CutoffHz, p.FilterOrder, fs)

	gen := signal.NewGeneratorWithOptions(nil, signal.WithSeed(p.Seed))
	refs, err := gen.GaussianNoise(p.CrossingMeanUS, p.CrossingStdUS, p.Signals)
	if err != nil {
		return Data{}, err
	}

	d := Data{T: t, Traces: make([]Trace, 0, p.Signals)}
	freqMHz := p.FreqHz * 1e-6
	for i, ref := range refs {
		pure, err := signal.Tone{Amplitude: p.Amplitude, FreqHz: freqMHz, Delay: ref}.Sample(t)
		if err != nil {
			return Data{}, err
		}
		white, err := gen.GaussianNoise(0, p.NoiseStd, len(t))
		if err != nil {
			return Data{}, err
		}
		colored, err := biquad.FiltFilt(coeffs, white)
		if err != nil {
			return Data{}, fmt.Errorf("zerocross trace %d: %w", i, err)
		}
		if i == 0 {
			d.NoiseBandwidthHz = noiseBandwidth(colored, fs)
			logger.Debug("filtered noise bandwidth", "hz", d.NoiseBandwidthHz, "cutoff_hz", p.CutoffHz)
		}
		v, err := signal.Add(pure, colored)
		if err != nil {
			return Data{}, err
		}
		at, ok, err := crossing.Nearest(t, v, ref)
		if err != nil {
			return Data{}, err
		}
		if !ok {
			logger.Warn("no rising zero crossing, marking theoretical position", "trace", i, "reference_us", ref)
		}
		d.Traces = append(d.Traces, Trace{Reference: ref, Voltage: v, Crossing: at, Found: ok})
	}
	return d, nil
}

func noiseBandwidth(x []float64, fs float64) float64 {
	power, n, err := spectrum.PowerSpectrum(x)
	if err != nil {
		return 0
	}
	bw, err := spectrum.OccupiedBandwidth(power, fs, n, bandwidthFraction)
	if err != nil {
		return 0
	}
	return bw
}

// Figure renders the zero-crossing figure.
type Figure struct {
	params Params
	logger *slog.Logger
}

// New returns the figure for p. A nil logger discards records.
func New(p Params, logger *slog.Logger) *Figure {
	return &Figure{params: p, logger: logger}
}

// Name returns the registry name.
func (f *Figure) Name() string { return name }

// Filename returns the fixed output file name.
func (f *Figure) Filename() string { return filename }

// Render synthesizes the data and writes the SVG to w.
func (f *Figure) Render(w io.Writer, th chart.Theme) error {
	d, err := Synthesize(f.params, f.logger)
	if err != nil {
		return err
	}
	p, err := f.plot(d, th)
	if err != nil {
		return err
	}
	return chart.Write(w, chart.Inches(f.params.Width, f.params.Height), p)
}

func (f *Figure) plot(d Data, th chart.Theme) (*plot.Plot, error) {
	sizes := chart.DefaultSizes()
	sizes.Label = vg.Points(12)
	p := th.NewPlot(sizes)
	p.X.Label.Text = "Čas [μs]"
	p.Y.Label.Text = "Napětí [V]"
	p.X.LineStyle.Width = vg.Points(1)
	p.Y.LineStyle.Width = vg.Points(1)

	gray := chart.MustColor("gray")
	p.Add(chart.Grid(chart.Stroke(chart.WithAlpha(gray, 0.5), 0.5, chart.Dashed(0.5))))
	p.Add(chart.HLine(0, chart.Stroke(chart.MustColor("black"), 0.8, nil)))

	for i, tr := range d.Traces {
		l, err := chart.Line(d.T, tr.Voltage, chart.Stroke(chart.WithAlpha(chart.Cycle(i), 0.8), 0.7, nil))
		if err != nil {
			return nil, fmt.Errorf("zerocross trace %d: %w", i, err)
		}
		p.Add(l)
	}
	marker := chart.Stroke(chart.MustColor(f.params.MarkerColor), 0.7, nil)
	h := f.params.MarkerHalfHeight
	for i, tr := range d.Traces {
		tick, err := chart.VLine(tr.Crossing, -h, h, marker)
		if err != nil {
			return nil, fmt.Errorf("zerocross marker %d: %w", i, err)
		}
		p.Add(tick)
	}

	p.X.Min, p.X.Max = f.params.StartUS, f.params.StopUS
	p.Y.Min, p.Y.Max = -f.params.YLimit, f.params.YLimit
	return p, nil
}
