package integral

// ClosedFormIntegral evaluates the definite integral of poly over
// [xStart, xEnd] in float64 via the exact antiderivative
//
//	F(x) = (A/5)x⁵ + (B/4)x⁴ + (C/3)x³ + (D/2)x² + E·x
//
// This is the ground-truth oracle the ring engine is validated against.
func ClosedFormIntegral(poly Polynomial, xStart, xEnd float64) float64 {
	return closedFormAntiderivative(poly, xEnd) - closedFormAntiderivative(poly, xStart)
}

// closedFormAntiderivative evaluates F(x) with Horner's scheme over the
// scaled coefficients.
func closedFormAntiderivative(p Polynomial, x float64) float64 {
	a := float64(p.A)
	b := float64(p.B)
	c := float64(p.C)
	d := float64(p.D)
	e := float64(p.E)
	return ((((a/5*x+b/4)*x+c/3)*x+d/2)*x + e) * x
}

// PolyValue evaluates f(x) in float64 with Horner's scheme. Used by the
// quadrature oracle as its integrand.
func PolyValue(p Polynomial, x float64) float64 {
	a := float64(p.A)
	b := float64(p.B)
	c := float64(p.C)
	d := float64(p.D)
	e := float64(p.E)
	return (((a*x+b)*x+c)*x+d)*x + e
}
