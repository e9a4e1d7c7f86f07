// Package dds draws the direct digital synthesis figure: a sine lookup
// table shown as a row of memory cells, and the zero-order-hold DAC output
// it produces when played back.
package dds

import (
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-figures/chart"
	"github.com/cwbudde/algo-figures/dsp/signal"
)

const (
	name     = "dds"
	filename = "dds_final.svg"
)

// Cell geometry of the lookup-table panel, in data units.
const (
	boxWidth  = 0.8
	boxHeight = 0.5
	boxBase   = 0.2
	captionX  = -0.6
)

// Params configures the DDS figure.
type Params struct {
	// TableSize is the number of lookup-table entries. The last entry
	// closes the period and equals the first.
	TableSize int `yaml:"table_size"`
	// Periods is how many table periods the DAC output shows.
	Periods int `yaml:"periods"`
	// SmoothPoints is the resolution of the ideal reconstructed sine.
	SmoothPoints int `yaml:"smooth_points"`
	// ArrowThreshold is the magnitude below which a sample is drawn as a
	// dot instead of an arrow.
	ArrowThreshold float64 `yaml:"arrow_threshold"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
}

// DefaultParams returns the published figure's parameters.
func DefaultParams() Params {
	return Params{
		TableSize:      17,
		Periods:        2,
		SmoothPoints:   1000,
		ArrowThreshold: 0.01,
		Width:          14,
		Height:         10,
	}
}

// Validate checks p for values the figure cannot draw.
func (p Params) Validate() error {
	if p.TableSize < 3 {
		return fmt.Errorf("dds table_size must be >= 3: %d", p.TableSize)
	}
	if p.Periods <= 0 {
		return fmt.Errorf("dds periods must be > 0: %d", p.Periods)
	}
	if p.SmoothPoints < 2 {
		return fmt.Errorf("dds smooth_points must be >= 2: %d", p.SmoothPoints)
	}
	if p.ArrowThreshold < 0 {
		return fmt.Errorf("dds arrow_threshold must be >= 0: %g", p.ArrowThreshold)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("dds size must be > 0: %gx%g", p.Width, p.Height)
	}
	return nil
}

// Data is the synthesized content of the figure.
type Data struct {
	// Table holds sin(2*pi*i/(TableSize-1)) for every address i.
	Table []float64
	// Index and Samples are the DAC output: Periods copies of the table
	// without its closing entry, followed by that entry.
	Index   []float64
	Samples []float64
	// SmoothT and Smooth are the ideal sine over the same index range.
	SmoothT []float64
	Smooth  []float64
}

// Synthesize computes the table, its playback and the ideal sine.
func Synthesize(p Params) (Data, error) {
	if err := p.Validate(); err != nil {
		return Data{}, err
	}
	period := float64(p.TableSize - 1)
	lut := signal.Tone{Amplitude: 1, FreqHz: 1 / period}

	addr, err := signal.Arange(0, float64(p.TableSize), 1)
	if err != nil {
		return Data{}, err
	}
	table, err := lut.Sample(addr)
	if err != nil {
		return Data{}, err
	}
	samples, err := signal.Tile(table[:p.TableSize-1], p.Periods, table[p.TableSize-1])
	if err != nil {
		return Data{}, err
	}
	index, err := signal.Arange(0, float64(len(samples)), 1)
	if err != nil {
		return Data{}, err
	}
	smoothT, err := signal.Linspace(0, index[len(index)-1], p.SmoothPoints)
	if err != nil {
		return Data{}, err
	}
	smooth, err := lut.Sample(smoothT)
	if err != nil {
		return Data{}, err
	}
	return Data{Table: table, Index: index, Samples: samples, SmoothT: smoothT, Smooth: smooth}, nil
}

// Figure renders the DDS figure.
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

// Render synthesizes the data and writes the two-panel SVG to w.
func (f *Figure) Render(w io.Writer, th chart.Theme) error {
	d, err := Synthesize(f.params)
	if err != nil {
		return err
	}
	table, err := tablePanel(d, th)
	if err != nil {
		return fmt.Errorf("dds table panel: %w", err)
	}
	output, err := outputPanel(d, th, f.params.ArrowThreshold)
	if err != nil {
		return fmt.Errorf("dds output panel: %w", err)
	}
	return chart.Write(w, chart.Inches(f.params.Width, f.params.Height), table, output)
}

func titleSizes() chart.Sizes {
	s := chart.DefaultSizes()
	s.Title = vg.Points(18)
	s.Label = vg.Points(14)
	s.Tick = vg.Points(12)
	s.Legend = vg.Points(12)
	return s
}

func tablePanel(d Data, th chart.Theme) (*plot.Plot, error) {
	p := th.NewPlot(titleSizes())
	p.Title.Text = "Vyhledávací tabulka"
	p.HideAxes()

	n := len(d.Table)
	rowAddr := boxBase + boxHeight*0.75
	rowVal := boxBase + boxHeight*0.25
	edge := chart.Stroke(color.Black, 1, nil)
	fill := chart.MustColor("#e6e6e6")

	caption := chart.RightAligned(th.Text(vg.Points(14), true))
	addrStyle := chart.Centered(th.Text(vg.Points(12), true))
	valStyle := chart.Centered(th.Text(vg.Points(11), false))
	valStyle.Color = colornames.Blue

	notes := []chart.Annotation{
		{X: captionX, Y: rowAddr, Label: "Adresa:", Style: caption},
		{X: captionX, Y: rowVal, Label: "Hodnota:", Style: caption},
	}
	for i, v := range d.Table {
		x := float64(i)
		box, err := chart.Box(x-boxWidth/2, boxBase, boxWidth, boxHeight, fill, edge)
		if err != nil {
			return nil, err
		}
		p.Add(box)
		notes = append(notes,
			chart.Annotation{X: x, Y: rowAddr, Label: fmt.Sprintf("%d", i), Style: addrStyle},
			chart.Annotation{X: x, Y: rowVal, Label: fmt.Sprintf("%.2f", v), Style: valStyle},
		)
	}
	labels, err := chart.Annotations(notes...)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	for i := 0; i < n-1; i++ {
		p.Add(chart.NewArc(plotter.XY{X: float64(i), Y: boxBase}, plotter.XY{X: float64(i + 1), Y: boxBase}, 0.5))
	}
	ret := chart.NewArc(plotter.XY{X: float64(n - 1), Y: boxBase}, plotter.XY{X: 0, Y: boxBase}, 0.3)
	ret.LineStyle.Dashes = chart.Dashed(0.7)
	p.Add(ret)

	p.X.Min, p.X.Max = -2.5, float64(n)
	p.Y.Min, p.Y.Max = -1, 1.5
	return p, nil
}

func outputPanel(d Data, th chart.Theme, threshold float64) (*plot.Plot, error) {
	p := th.NewPlot(titleSizes())
	p.Title.Text = "Výstup DAC:"
	p.X.Label.Text = "Čas [vzorky]"
	p.Y.Label.Text = "Napětí [V]"

	grid := chart.Grid(chart.Stroke(chart.WithAlpha(chart.MustColor("#b0b0b0"), 0.6), 0.8, chart.Dotted(0.8)))
	axis := chart.HLine(0, chart.Stroke(color.Black, 1, nil))

	zoh, err := chart.Step(d.Index, d.Samples, chart.Stroke(colornames.Blue, 1, chart.Dotted(1)))
	if err != nil {
		return nil, err
	}
	ideal, err := chart.Line(d.SmoothT, d.Smooth, chart.Stroke(colornames.Red, 1, chart.Dashed(1)))
	if err != nil {
		return nil, err
	}
	stems, err := chart.NewArrows(d.Index, d.Samples, threshold)
	if err != nil {
		return nil, err
	}
	p.Add(grid, axis, zoh, ideal, stems)

	var lg chart.Legend
	lg.Add("Nefiltrovaný výstup DAC", zoh)
	lg.Add("Filtrovaný výstup", ideal)
	lg.Add("Hodnota vzorku", stems)
	lg.Apply(p)

	p.X.Min, p.X.Max = 0, d.Index[len(d.Index)-1]
	p.Y.Min, p.Y.Max = -1.3, 1.3
	return p, nil
}
