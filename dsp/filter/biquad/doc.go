// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters, and [FiltFilt] runs a
// cascade forward and backward for zero-phase filtering of a finite trace.
//
// Coefficient design (Butterworth) lives in dsp/filter/design/pass.
package biquad
