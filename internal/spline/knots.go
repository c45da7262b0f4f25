package spline

// ClampedKnots returns a uniform clamped knot vector on [0, 1] for n control
// points: the first and last knots are repeated degree+1 times and the
// interior knots are evenly spaced. It returns nil if n < degree+1.
func ClampedKnots(n, degree int) []float64 {
	if degree < 0 || n < degree+1 {
		return nil
	}
	knots := make([]float64, n+degree+1)
	segments := n - degree
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= n:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(segments)
		}
	}
	return knots
}

// IsNonDecreasing reports whether every knot is >= its predecessor.
func IsNonDecreasing(knots []float64) bool {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return false
		}
	}
	return true
}

// IsClamped reports whether the first and last knot values are each repeated
// degree+1 times.
func IsClamped(knots []float64, degree int) bool {
	if degree < 0 || len(knots) < 2*(degree+1) {
		return false
	}
	first, last := knots[0], knots[len(knots)-1]
	for i := 0; i <= degree; i++ {
		if knots[i] != first || knots[len(knots)-1-i] != last {
			return false
		}
	}
	return true
}

// Domain returns the parameter range [knots[degree], knots[n]] on which the
// basis functions of n control points sum to one.
func Domain(knots []float64, degree, n int) (lo, hi float64) {
	return knots[degree], knots[n]
}
