package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Tab20 holds the first colours of the tab20 qualitative palette.
var Tab20 = []color.NRGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 174, G: 199, B: 232, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 255, G: 187, B: 120, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 152, G: 223, B: 138, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 255, G: 152, B: 150, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 197, G: 176, B: 213, A: 255},
}

// Cycle returns Tab20[i] wrapping around the palette.
func Cycle(i int) color.NRGBA {
	if i < 0 {
		i = -i
	}
	return Tab20[i%len(Tab20)]
}

// Color parses "#RRGGBB", "#RGB" or an SVG colour name.
func Color(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown colour name: %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("colour must be #RGB or #RRGGBB: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustColor is Color for compile-time constants. It panics on bad input.
func MustColor(s string) color.NRGBA {
	c, err := Color(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with opacity alpha in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case alpha <= 0:
		n.A = 0
	case alpha >= 1:
	default:
		n.A = uint8(float64(n.A)*alpha + 0.5)
	}
	return n
}

// Dashed returns a dashed pattern for a line of width points.
func Dashed(width float64) []vg.Length {
	return []vg.Length{vg.Points(3.7 * width), vg.Points(1.6 * width)}
}

// Dotted returns a dotted dash pattern for a line of width points.
func Dotted(width float64) []vg.Length {
	return []vg.Length{vg.Points(width), vg.Points(1.65 * width)}
}

// Stroke returns a line style of width points.
func Stroke(c color.Color, width float64, dashes []vg.Length) draw.LineStyle {
	return draw.LineStyle{Color: c, Width: vg.Points(width), Dashes: dashes}
}

// XYs pairs x and y into plotter points.
func XYs(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("xy length mismatch: %d != %d", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("xy data must not be empty")
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts, nil
}
