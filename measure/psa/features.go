package psa

import "fmt"

// ChiSquareSentinel marks a template fit that could not be evaluated
// because the measured rise time was not positive.
const ChiSquareSentinel = 999.0

// FeatureNames lists the feature columns in output order.
var FeatureNames = [...]string{"peak", "rise_time", "area", "fwhm", "chi_sq"}

// Kind tags the variant of a Features value.
type Kind uint8

const (
	// KindDegenerate means no usable pulse: the baseline-corrected waveform
	// never rises above zero.
	KindDegenerate Kind = iota
	// KindMeasured means all five features were computed.
	KindMeasured
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDegenerate:
		return "degenerate"
	case KindMeasured:
		return "measured"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Features is the extraction result of one waveform. The numeric fields are
// meaningful only when Kind is KindMeasured; consumers must switch on Kind
// rather than inspect the vector length.
type Features struct {
	Kind     Kind
	Peak     float64
	RiseTime float64
	Area     float64
	FWHM     float64
	ChiSq    float64
}

// Degenerate returns the no-pulse result.
func Degenerate() Features {
	return Features{Kind: KindDegenerate}
}

// Measured returns a fully measured result.
func Measured(peak, riseTime, area, fwhm, chiSq float64) Features {
	return Features{
		Kind:     KindMeasured,
		Peak:     peak,
		RiseTime: riseTime,
		Area:     area,
		FWHM:     fwhm,
		ChiSq:    chiSq,
	}
}

// IsDegenerate reports whether f carries no pulse.
func (f Features) IsDegenerate() bool {
	return f.Kind == KindDegenerate
}

// Unfittable reports whether the template fit was skipped.
func (f Features) Unfittable() bool {
	return f.Kind == KindMeasured && f.ChiSq == ChiSquareSentinel
}

// Vector returns the features in FeatureNames order. The degenerate variant
// returns four zeros and no chi-square entry: such waveforms have no
// template fit, and no default residual is invented for them.
func (f Features) Vector() []float64 {
	if f.Kind != KindMeasured {
		return []float64{0, 0, 0, 0}
	}
	return []float64{f.Peak, f.RiseTime, f.Area, f.FWHM, f.ChiSq}
}

// String implements fmt.Stringer.
func (f Features) String() string {
	if f.Kind != KindMeasured {
		return "degenerate"
	}
	return fmt.Sprintf("peak=%.4g rise_time=%.4g area=%.4g fwhm=%.4g chi_sq=%.4g",
		f.Peak, f.RiseTime, f.Area, f.FWHM, f.ChiSq)
}
