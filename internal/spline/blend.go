// Package spline evaluates B-spline curves from control points, a knot
// vector and a degree.
package spline

// Blend returns the basis function B_{k,d}(u) by the Cox–de Boor recursion.
//
// Degree-0 spans are half-open, [knots[k], knots[k+1]), except the last
// non-empty span which also contains its right end so that u equal to the
// final knot still lands on the curve. A term whose knot difference is zero
// contributes 0.
//
// Blend does not validate its arguments; k+d+1 must index knots.
func Blend(u float64, k, d int, knots []float64) float64 {
	if d == 0 {
		return span(u, k, knots)
	}
	var a, b float64
	if den := knots[k+d] - knots[k]; den != 0 {
		a = (u - knots[k]) / den * Blend(u, k, d-1, knots)
	}
	if den := knots[k+d+1] - knots[k+1]; den != 0 {
		b = (knots[k+d+1] - u) / den * Blend(u, k+1, d-1, knots)
	}
	return a + b
}

func span(u float64, k int, knots []float64) float64 {
	lo, hi := knots[k], knots[k+1]
	switch {
	case lo == hi:
		return 0
	case lo <= u && u < hi:
		return 1
	case u == hi && hi == knots[len(knots)-1]:
		return 1
	}
	return 0
}

// Basis computes B_{k,degree}(u) for every k in [0, len(knots)-degree-1)
// in one bottom-up pass. table is scratch space and is grown as needed; the
// returned slice aliases it. The values equal those of [Blend].
func Basis(u float64, degree int, knots []float64, table []float64) []float64 {
	m := len(knots) - 1
	if cap(table) < m {
		table = make([]float64, m)
	}
	table = table[:m]
	for k := range table {
		table[k] = span(u, k, knots)
	}
	for d := 1; d <= degree; d++ {
		// table[k+1] still holds degree d-1 when table[k] is overwritten.
		for k := 0; k < m-d; k++ {
			var a, b float64
			if den := knots[k+d] - knots[k]; den != 0 {
				a = (u - knots[k]) / den * table[k]
			}
			if den := knots[k+d+1] - knots[k+1]; den != 0 {
				b = (knots[k+d+1] - u) / den * table[k+1]
			}
			table[k] = a + b
		}
	}
	return table[:m-degree]
}
