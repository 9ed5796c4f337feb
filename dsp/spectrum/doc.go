// Package spectrum provides the frequency-domain helpers of the pulse
// pipeline: an FFT low-pass prefilter that suppresses electronic noise above
// the pulse bandwidth, and magnitude spectra for inspecting it.
//
// Transforms run on algo-fft plans; per-bin gains and magnitudes use the
// SIMD block kernels of algo-vecmath.
package spectrum
