// Package psa implements pulse-shape analysis: it reduces one detector
// waveform to the feature vector
//
//	[peak, rise_time, area, fwhm, chi_sq]
//
// used to discriminate fast signal pulses from slow background pulses and to
// flag pile-up.
//
// Extraction runs in fixed stages on a baseline-corrected copy of the
// waveform:
//
//   - Baseline: mean of the first 15 samples, subtracted everywhere
//   - Peak: maximum of the corrected waveform; a non-positive peak yields a
//     degenerate result and stops extraction
//   - Rise time: time between the first samples reaching 10% and 90% of peak
//   - Area: trapezoidal integral over the time axis (total charge)
//   - FWHM: time between the first and last samples at or above half peak
//   - Chi-square: mean squared residual against the analytic template
//     rebuilt from the measured peak and rise time
//
// Malformed pulses never abort extraction. An unmeasurable rise time is
// reported as 0 and an unfittable template as [ChiSquareSentinel]. Only
// structural problems (empty waveform, axis length mismatch) are errors.
//
// # Usage
//
//	ext := psa.NewExtractor()
//	feats, err := ext.ExtractBatch(axis, waveforms)
//	for _, f := range feats {
//		switch f.Kind {
//		case psa.KindDegenerate:
//			// no usable pulse
//		case psa.KindMeasured:
//			fmt.Println(f.RiseTime, f.ChiSq)
//		}
//	}
package psa
