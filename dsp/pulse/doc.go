// Package pulse implements the analytic single-event detector response used
// both to synthesize waveforms and as the template of the chi-square fit:
//
//	shape(t) = A * ((t - t0) / tau) * exp(-(t - t0) / tau)   for t > t0
//	shape(t) = 0                                             otherwise
//
// The rise is governed by charge drift and the decay by the preamplifier
// time constant; both are folded into the single constant tau. The maximum
// A/e is reached at t0 + tau.
package pulse
