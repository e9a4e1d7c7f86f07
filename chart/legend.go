package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

type legendEntry struct {
	label  string
	thumbs []plot.Thumbnailer
}

// Legend collects legend entries before they are placed on a plot.
type Legend struct {
	entries []legendEntry
}

// Add appends an entry. Repeated labels are kept until Dedup.
func (l *Legend) Add(label string, thumbs ...plot.Thumbnailer) {
	l.entries = append(l.entries, legendEntry{label: label, thumbs: thumbs})
}

// Len returns the number of entries.
func (l *Legend) Len() int {
	return len(l.entries)
}

// Labels returns the entry labels in order.
func (l *Legend) Labels() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.label
	}
	return out
}

// Dedup collapses entries sharing a label. Labels keep the position of
// their first appearance and take the thumbnails of their last one.
func (l *Legend) Dedup() {
	index := make(map[string]int, len(l.entries))
	out := l.entries[:0:0]
	for _, e := range l.entries {
		if i, ok := index[e.label]; ok {
			out[i].thumbs = e.thumbs
			continue
		}
		index[e.label] = len(out)
		out = append(out, e)
	}
	l.entries = out
}

// Apply adds the entries to p's legend in the top right corner.
func (l *Legend) Apply(p *plot.Plot) {
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.ThumbnailWidth = vg.Points(24)
	for _, e := range l.entries {
		p.Legend.Add(e.label, e.thumbs...)
	}
}
