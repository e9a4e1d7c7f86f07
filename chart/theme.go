package chart

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-figures/internal/fontfind"
)

// Generic family names accepted as fallbacks, mapped onto the bundled
// Liberation variants.
var genericVariants = map[string]font.Variant{
	"monospace":  "Mono",
	"mono":       "Mono",
	"sans-serif": "Sans",
	"sans":       "Sans",
	"serif":      "Serif",
}

const liberationTypeface font.Typeface = "Liberation"

// Theme is the font configuration of one render.
type Theme struct {
	// Family is the resolved family name, or the fallback generic family.
	Family string
	// Resolved reports whether Family came from a font file on disk.
	Resolved bool

	base    font.Font
	handler text.Handler
}

// Sizes holds the font sizes of the plot furniture.
type Sizes struct {
	Title  vg.Length
	Label  vg.Length
	Tick   vg.Length
	Legend vg.Length
}

// DefaultSizes returns the sizes used when a figure does not override them.
func DefaultSizes() Sizes {
	return Sizes{
		Title:  vg.Points(12),
		Label:  vg.Points(10),
		Tick:   vg.Points(10),
		Legend: vg.Points(10),
	}
}

// NewTheme builds a Theme from a font resolution. A found face is
// registered under its own family name in a cache private to the theme;
// otherwise the fallback family selects a Liberation variant.
func NewTheme(res fontfind.Result) Theme {
	cache := font.NewCache(liberation.Collection())
	th := Theme{Family: res.Family}

	if res.Found && res.Face != nil {
		tf := font.Typeface(res.Family)
		cache.Add(font.Collection{
			{Font: font.Font{Typeface: tf}, Face: res.Face},
			{Font: font.Font{Typeface: tf, Weight: xfont.WeightBold}, Face: res.Face},
		})
		th.base = font.Font{Typeface: tf}
		th.Resolved = true
	} else {
		variant, ok := genericVariants[res.Family]
		if !ok {
			variant = "Mono"
		}
		th.base = font.Font{Typeface: liberationTypeface, Variant: variant}
	}
	th.handler = text.Plain{Fonts: cache}
	return th
}

// Font returns the theme font at size, optionally bold.
func (th Theme) Font(size vg.Length, bold bool) font.Font {
	fnt := th.base
	if bold {
		fnt.Weight = xfont.WeightBold
	}
	return font.From(fnt, size)
}

// Text returns a black, left/bottom aligned text style in the theme font.
func (th Theme) Text(size vg.Length, bold bool) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    th.Font(size, bold),
		Handler: th.handler,
	}
}

// Handler returns the text handler bound to the theme's font cache.
func (th Theme) Handler() text.Handler {
	return th.handler
}

// NewPlot returns a plot whose text furniture uses the theme.
func (th Theme) NewPlot(s Sizes) *plot.Plot {
	p := plot.New()
	th.Apply(p, s)
	return p
}

// Apply points the title, axis labels, tick labels and legend of p at the
// theme's handler and font.
func (th Theme) Apply(p *plot.Plot, s Sizes) {
	p.TextHandler = th.handler

	restyle := func(sty *text.Style, size vg.Length) {
		sty.Font = th.Font(size, false)
		sty.Handler = th.handler
	}
	restyle(&p.Title.TextStyle, s.Title)
	restyle(&p.X.Label.TextStyle, s.Label)
	restyle(&p.Y.Label.TextStyle, s.Label)
	restyle(&p.X.Tick.Label, s.Tick)
	restyle(&p.Y.Tick.Label, s.Tick)
	restyle(&p.Legend.TextStyle, s.Legend)
}
