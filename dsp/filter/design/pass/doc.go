// Package pass designs lowpass Butterworth cascades as biquad sections.
package pass
