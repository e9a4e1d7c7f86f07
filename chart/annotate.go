package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Arc is a curved arrow between two data points. The curve is a quadratic
// Bézier whose control point sits Rad times the chord length off the
// chord midpoint, to the right of the direction of travel, measured in
// canvas space. A positive Rad from left to right therefore bows
// downwards.
type Arc struct {
	From, To plotter.XY
	Rad      float64

	LineStyle  draw.LineStyle
	HeadLength vg.Length
	HeadWidth  vg.Length
}

// NewArc returns a thin black arc arrow from one point to another.
func NewArc(from, to plotter.XY, rad float64) *Arc {
	return &Arc{
		From:       from,
		To:         to,
		Rad:        rad,
		LineStyle:  Stroke(color.Black, 0.7, nil),
		HeadLength: vg.Points(6),
		HeadWidth:  vg.Points(3.5),
	}
}

// Control returns the Bézier control point of the arc in canvas space.
func (a *Arc) Control(p0, p1 vg.Point) vg.Point {
	mid := vg.Point{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	return vg.Point{
		X: mid.X + vg.Length(a.Rad)*dy,
		Y: mid.Y - vg.Length(a.Rad)*dx,
	}
}

// Plot implements plot.Plotter.
func (a *Arc) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	p0 := vg.Point{X: trX(a.From.X), Y: trY(a.From.Y)}
	p1 := vg.Point{X: trX(a.To.X), Y: trY(a.To.Y)}
	ctrl := a.Control(p0, p1)

	// The head points along the curve's end tangent, which is ctrl->p1.
	h := arrowHead(p1, ctrl, a.HeadLength, a.HeadWidth)

	var path vg.Path
	path.Move(p0)
	path.QuadTo(ctrl, h.neck)
	c.SetLineStyle(a.LineStyle)
	c.Stroke(path)

	fill := a.LineStyle.Color
	if fill == nil {
		fill = color.Black
	}
	c.FillPolygon(fill, h.points())
}

// DataRange implements plot.DataRanger over the two end points.
func (a *Arc) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(plotter.XYs{a.From, a.To})
}

// Box returns an axis-aligned rectangle with its lower-left corner at
// (x, y), filled with fill and outlined by edge.
func Box(x, y, w, h float64, fill color.Color, edge draw.LineStyle) (*plotter.Polygon, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("box size must be > 0: %g x %g", w, h)
	}
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle = edge
	return poly, nil
}

// Annotation is one piece of text anchored at a data point.
type Annotation struct {
	X, Y  float64
	Label string
	Style text.Style
}

// Annotations returns a labels plotter drawing every annotation with its
// own style.
func Annotations(as ...Annotation) (*plotter.Labels, error) {
	if len(as) == 0 {
		return nil, fmt.Errorf("annotations must not be empty")
	}
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(as)),
		Labels: make([]string, len(as)),
	}
	for i, a := range as {
		xyl.XYs[i] = plotter.XY{X: a.X, Y: a.Y}
		xyl.Labels[i] = a.Label
	}
	l, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i, a := range as {
		l.TextStyle[i] = a.Style
	}
	return l, nil
}

// Centered returns sty aligned on its centre in both directions.
func Centered(sty text.Style) text.Style {
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter
	return sty
}

// RightAligned returns sty anchored on its right edge, centred vertically.
func RightAligned(sty text.Style) text.Style {
	sty.XAlign = draw.XRight
	sty.YAlign = draw.YCenter
	return sty
}
