package pulse

import "math"

// RiseFraction returns the analytic fractional rise time of the template,
// in units of tau: the time from lo*peak to hi*peak on the rising edge.
// Both fractions must lie in (0, 1).
func RiseFraction(lo, hi float64) float64 {
	return risingRoot(hi) - risingRoot(lo)
}

// risingRoot solves u*exp(1-u) = level for u in (0, 1] by bisection; the
// normalized template is monotonic there.
func risingRoot(level float64) float64 {
	lo, hi := 0.0, 1.0
	for range 200 {
		mid := 0.5 * (lo + hi)
		if mid*math.Exp(1-mid) < level {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
