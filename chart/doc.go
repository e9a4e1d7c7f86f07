// Package chart assembles static SVG charts on top of gonum/plot.
//
// A Theme carries the text handler and base font for one render. It is
// passed explicitly to every figure, so two figures rendered in the same
// process with different fonts never share state. The package adds the few
// primitives gonum/plot lacks: stem arrows with a legend thumbnail, curved
// connection arrows, and label de-duplication for legends.
package chart
