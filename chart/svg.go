package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Size is a figure size.
type Size struct {
	Width, Height vg.Length
}

// Inches returns a Size of w by h inches.
func Inches(w, h float64) Size {
	return Size{Width: vg.Length(w) * vg.Inch, Height: vg.Length(h) * vg.Inch}
}

// Margin is the blank border kept around every figure.
var Margin = vg.Points(6)

// Write draws plots stacked top to bottom in equal-height rows on a single
// SVG canvas of size s and writes the document to w.
func Write(w io.Writer, s Size, plots ...*plot.Plot) error {
	if len(plots) == 0 {
		return errors.New("chart: no plots to write")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("chart: size must be > 0: %v x %v", s.Width, s.Height)
	}

	c := vgsvg.New(s.Width, s.Height)
	dc := draw.Crop(draw.New(c), Margin, -Margin, Margin, -Margin)

	rows := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		rows[i] = []*plot.Plot{p}
	}
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: 1,
		PadY: vg.Points(18),
	}
	canvases := plot.Align(rows, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write svg: %w", err)
	}
	return nil
}
