// Package phasexor draws the XOR phase detector figure: two sines shifted
// in phase, their logic-level squares, and the XOR of the squares with
// its mean, stacked on one axis.
package phasexor

import (
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/colornames"

	"github.com/cwbudde/algo-figures/chart"
	"github.com/cwbudde/algo-figures/dsp/core"
	"github.com/cwbudde/algo-figures/dsp/signal"
	timestats "github.com/cwbudde/algo-figures/stats/time"
)

const (
	name     = "phasexor"
	filename = "czech_signals_chart.svg"
)

// Params configures the phase detector figure.
type Params struct {
	FreqHz float64 `yaml:"freq_hz"`
	// Oversample is the sample rate as a multiple of FreqHz.
	Oversample float64 `yaml:"oversample"`
	Periods    float64 `yaml:"periods"`
	Amplitude  float64 `yaml:"amplitude"`
	PhaseDeg   float64 `yaml:"phase_deg"`
	// LogicHigh is the square wave high level. XOR inputs are compared
	// against half of it.
	LogicHigh float64 `yaml:"logic_high"`
	// Offsets lift the reference, shifted and XOR groups apart.
	Offsets [3]float64 `yaml:"offsets"`
	YMin    float64    `yaml:"y_min"`
	YMax    float64    `yaml:"y_max"`
	Width   float64    `yaml:"width"`
	Height  float64    `yaml:"height"`
}

// DefaultParams returns the published figure's parameters.
func DefaultParams() Params {
	return Params{
		FreqHz:     100e3,
		Oversample: 100,
		Periods:    3,
		Amplitude:  2.5,
		PhaseDeg:   45,
		LogicHigh:  3.3,
		Offsets:    [3]float64{14, 7, 0},
		YMin:       -1.5,
		YMax:       18.5,
		Width:      8,
		Height:     8,
	}
}

// Validate checks p for values the figure cannot draw.
func (p Params) Validate() error {
	if p.FreqHz <= 0 || p.Oversample <= 0 || p.Periods <= 0 {
		return fmt.Errorf("phasexor freq_hz, oversample and periods must be > 0: %g, %g, %g", p.FreqHz, p.Oversample, p.Periods)
	}
	if p.Amplitude < 0 || p.LogicHigh <= 0 {
		return fmt.Errorf("phasexor amplitude must be >= 0 and logic_high > 0: %g, %g", p.Amplitude, p.LogicHigh)
	}
	if p.YMax <= p.YMin {
		return fmt.Errorf("phasexor y_max must be > y_min: %g <= %g", p.YMax, p.YMin)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("phasexor size must be > 0: %gx%g", p.Width, p.Height)
	}
	return nil
}

// SampleRate returns the sampling rate in Hz.
func (p Params) SampleRate() float64 {
	return p.FreqHz * p.Oversample
}

// Data is the synthesized content of the figure.
type Data struct {
	T           []float64 // seconds
	SineRef     []float64
	SquareRef   []float64
	SineShift   []float64
	SquareShift []float64
	XOR         []float64
	// Mean is the average XOR level, proportional to the phase shift.
	Mean float64
}

// Synthesize samples both sines, thresholds them and combines the squares.
func Synthesize(p Params) (Data, error) {
	if err := p.Validate(); err != nil {
		return Data{}, err
	}
	gen := signal.NewGenerator(core.WithSampleRate(p.SampleRate()))
	t, err := gen.TimeAxis(p.Periods / p.FreqHz)
	if err != nil {
		return Data{}, err
	}

	ref, err := signal.Tone{Amplitude: p.Amplitude, FreqHz: p.FreqHz}.Sample(t)
	if err != nil {
		return Data{}, err
	}
	shifted, err := signal.Tone{
		Amplitude: p.Amplitude,
		FreqHz:    p.FreqHz,
		PhaseRad:  core.DegToRad(p.PhaseDeg),
	}.Sample(t)
	if err != nil {
		return Data{}, err
	}

	sqRef := signal.Square(ref, 0, p.LogicHigh)
	sqShift := signal.Square(shifted, 0, p.LogicHigh)
	xor, err := signal.XOR(sqRef, sqShift, p.LogicHigh/2, p.LogicHigh)
	if err != nil {
		return Data{}, err
	}
	return Data{
		T:           t,
		SineRef:     ref,
		SquareRef:   sqRef,
		SineShift:   shifted,
		SquareShift: sqShift,
		XOR:         xor,
		Mean:        timestats.DC(xor),
	}, nil
}

// Figure renders the phase detector figure.
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

type trace struct {
	label  string
	y      []float64
	offset float64
	color  color.Color
	dashed bool
}

// Render synthesizes the data and writes the SVG to w.
func (f *Figure) Render(w io.Writer, th chart.Theme) error {
	d, err := Synthesize(f.params)
	if err != nil {
		return err
	}
	off := f.params.Offsets
	traces := []trace{
		{"U napětí", d.SineRef, off[0], colornames.Darkred, false},
		{"U napětí - pulz", d.SquareRef, off[0], colornames.Teal, false},
		{"U proud", d.SineShift, off[1], colornames.Darkorange, false},
		{"U proud - pulz", d.SquareShift, off[1], colornames.Darkgreen, false},
		{"U XOR", d.XOR, off[2], color.Black, false},
		{"U XOR - stř", signal.Fill(d.Mean, len(d.T)), off[2], color.Black, true},
	}

	p := th.NewPlot(chart.DefaultSizes())
	p.X.Label.Text = "Čas [μs]"
	p.Y.Label.Text = "Napětí [U]"
	p.Add(chart.Grid(chart.Stroke(chart.WithAlpha(chart.MustColor("#b0b0b0"), 0.55), 1, chart.Dashed(1))))

	us := signal.Scale(d.T, 1e6)
	var lg chart.Legend
	for _, tr := range traces {
		sty := chart.Stroke(tr.color, 1, nil)
		if tr.dashed {
			sty.Dashes = chart.Dashed(1)
		}
		l, err := chart.Line(us, signal.Offset(tr.y, tr.offset), sty)
		if err != nil {
			return fmt.Errorf("phasexor %s: %w", tr.label, err)
		}
		p.Add(l)
		lg.Add(tr.label, l)
	}
	lg.Dedup()
	lg.Apply(p)

	p.X.Min, p.X.Max = us[0], us[len(us)-1]
	p.Y.Min, p.Y.Max = f.params.YMin, f.params.YMax
	return chart.Write(w, chart.Inches(f.params.Width, f.params.Height), p)
}
