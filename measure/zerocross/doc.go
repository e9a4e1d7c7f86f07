// Package zerocross locates rising zero crossings of sampled traces with
// sub-sample resolution.
//
// A crossing is a transition from a negative sample to a non-negative one.
// Its time is refined by linear interpolation between the two samples. When
// a trace is noisy, [Nearest] picks the candidate closest to an expected
// crossing time so that spurious noise crossings far from the main edge are
// ignored.
package zerocross
