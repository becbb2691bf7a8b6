package integral

import "math"

// TrapezoidIntegral approximates the definite integral of poly over
// [xStart, xEnd] with the composite trapezoidal rule on n ≥ 1 equal
// subintervals:
//
//	h · ( f(x₀)/2 + f(x₁) + … + f(x_{n−1}) + f(x_n)/2 )
//
// The error decreases as O(h²) for smooth integrands; TrapezoidErrorBound
// gives the analytic worst case. This oracle is an independent cross-check
// of the ring engine, not a ground truth in itself.
func TrapezoidIntegral(poly Polynomial, xStart, xEnd float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	h := (xEnd - xStart) / float64(n)
	sum := (PolyValue(poly, xStart) + PolyValue(poly, xEnd)) / 2
	sum += trapezoidInteriorSum(poly, xStart, h, 1, n)
	return sum * h
}

// trapezoidInteriorSum sums f(xStart + i·h) for i in [lo, hi). The bounds
// make the sum chunkable: the full interior sum is the chunk sums combined
// in index order, which keeps the parallel reduction deterministic.
func trapezoidInteriorSum(poly Polynomial, xStart, h float64, lo, hi int) float64 {
	var sum float64
	for i := lo; i < hi; i++ {
		sum += PolyValue(poly, xStart+float64(i)*h)
	}
	return sum
}

// TrapezoidErrorBound returns the worst-case absolute error of the composite
// trapezoidal rule on n subintervals:
//
//	(xEnd − xStart) · h² · max|f″| / 12
//
// With non-negative coefficients f″(x) = 12Ax² + 6Bx + 2C is non-decreasing
// on [0, ∞), so its maximum over the interval is attained at the right
// endpoint.
func TrapezoidErrorBound(poly Polynomial, xStart, xEnd float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	width := math.Abs(xEnd - xStart)
	h := width / float64(n)
	right := math.Max(math.Abs(xStart), math.Abs(xEnd))
	maxSecond := 12*float64(poly.A)*right*right + 6*float64(poly.B)*right + 2*float64(poly.C)
	return width * h * h * maxSecond / 12
}
