package motion

// EaseInOutCubic maps progress t in [0,1] onto a cubic ease-in-out curve.
// Callers clamp t first; values outside [0,1] are not meaningful.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
