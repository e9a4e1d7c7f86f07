package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Line returns a polyline through (x[i], y[i]).
func Line(x, y []float64, sty draw.LineStyle) (*plotter.Line, error) {
	pts, err := XYs(x, y)
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle = sty
	return l, nil
}

// Step returns a post-step line: each value holds until the next x.
func Step(x, y []float64, sty draw.LineStyle) (*plotter.Line, error) {
	l, err := Line(x, y, sty)
	if err != nil {
		return nil, err
	}
	l.StepStyle = plotter.PostStep
	return l, nil
}

// HLine spans the full x range of the plot at height y.
func HLine(y float64, sty draw.LineStyle) *plotter.Function {
	f := plotter.NewFunction(func(float64) float64 { return y })
	f.Samples = 2
	f.LineStyle = sty
	return f
}

// VLine is a vertical segment at x from y0 to y1.
func VLine(x, y0, y1 float64, sty draw.LineStyle) (*plotter.Line, error) {
	return Line([]float64{x, x}, []float64{y0, y1}, sty)
}

// Grid returns grid lines at the major ticks in both directions.
func Grid(sty draw.LineStyle) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical = sty
	g.Horizontal = sty
	return g
}

// Dots draws a filled circle of radius points at every (x[i], y[i]).
func Dots(x, y []float64, c color.Color, radius float64) (*plotter.Scatter, error) {
	pts, err := XYs(x, y)
	if err != nil {
		return nil, err
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(radius), Shape: draw.CircleGlyph{}}
	return s, nil
}

// Arrows draws a stem arrow from Baseline to every point whose distance
// from Baseline exceeds Threshold. Points within Threshold are drawn as
// dots instead. Arrows implements plot.Plotter, plot.DataRanger and
// plot.Thumbnailer.
type Arrows struct {
	plotter.XYs

	Baseline  float64
	Threshold float64

	Color      color.Color
	ShaftWidth vg.Length
	HeadWidth  vg.Length
	HeadLength vg.Length
	DotRadius  vg.Length
}

// NewArrows returns black stem arrows for (x[i], y[i]) from baseline 0.
func NewArrows(x, y []float64, threshold float64) (*Arrows, error) {
	pts, err := XYs(x, y)
	if err != nil {
		return nil, err
	}
	return &Arrows{
		XYs:        pts,
		Threshold:  threshold,
		Color:      color.Black,
		ShaftWidth: vg.Points(1),
		HeadWidth:  vg.Points(5),
		HeadLength: vg.Points(6),
		DotRadius:  vg.Points(3),
	}, nil
}

// Plot implements plot.Plotter.
func (a *Arrows) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	shaft := draw.LineStyle{Color: a.Color, Width: a.ShaftWidth}
	dot := draw.GlyphStyle{Color: a.Color, Radius: a.DotRadius, Shape: draw.CircleGlyph{}}

	for _, pt := range a.XYs {
		x := trX(pt.X)
		base := vg.Point{X: x, Y: trY(a.Baseline)}
		if math.Abs(pt.Y-a.Baseline) <= a.Threshold {
			c.DrawGlyph(dot, base)
			continue
		}
		tip := vg.Point{X: x, Y: trY(pt.Y)}
		h := arrowHead(tip, base, a.HeadLength, a.HeadWidth)
		c.StrokeLine2(shaft, base.X, base.Y, h.neck.X, h.neck.Y)
		c.FillPolygon(a.Color, h.points())
	}
}

// DataRange implements plot.DataRanger.
func (a *Arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, ymin, ymax = plotter.XYRange(a.XYs)
	return xmin, xmax, math.Min(ymin, a.Baseline), math.Max(ymax, a.Baseline)
}

// Thumbnail implements plot.Thumbnailer: a line with an upward triangle.
func (a *Arrows) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(draw.LineStyle{Color: a.Color, Width: vg.Points(1.5)}, c.Min.X, y, c.Max.X, y)
	c.DrawGlyph(draw.GlyphStyle{Color: a.Color, Radius: vg.Points(3), Shape: draw.TriangleGlyph{}}, c.Center())
}

type head struct {
	tip, neck, left, right vg.Point
}

func (h head) points() []vg.Point {
	return []vg.Point{h.tip, h.left, h.right}
}

// arrowHead builds a triangular head ending at tip and pointing away from
// from. Heads longer than the arrow shrink to fit.
func arrowHead(tip, from vg.Point, length, width vg.Length) head {
	dx := float64(tip.X - from.X)
	dy := float64(tip.Y - from.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return head{tip: tip, neck: tip, left: tip, right: tip}
	}
	l := float64(length)
	w := float64(width)
	if l > dist {
		w *= dist / l
		l = dist
	}
	ux, uy := dx/dist, dy/dist
	neck := vg.Point{X: tip.X - vg.Length(ux*l), Y: tip.Y - vg.Length(uy*l)}
	nx, ny := -uy*w/2, ux*w/2
	return head{
		tip:   tip,
		neck:  neck,
		left:  vg.Point{X: neck.X + vg.Length(nx), Y: neck.Y + vg.Length(ny)},
		right: vg.Point{X: neck.X - vg.Length(nx), Y: neck.Y - vg.Length(ny)},
	}
}
