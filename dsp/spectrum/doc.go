// Package spectrum provides the spectrum-domain helpers used when building
// figures: piecewise-linear resampling, power spectra computed with
// algo-fft, and an occupied-bandwidth estimate for checking how strongly
// synthetic noise has been band limited.
package spectrum
