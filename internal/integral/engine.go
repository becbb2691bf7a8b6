package integral

// Integrate evaluates the definite integral of poly over [xStart, xEnd] in
// the ring domain: F(xEnd) combined with F(xStart) using the combinator's
// notion of subtraction.
//
// For CombinatorAdd this is true subtraction, which requires
// F(xEnd) ≥ F(xStart) in the unsigned domain; when xStart > xEnd over an
// increasing antiderivative the condition fails and an UnderflowError is
// returned rather than a wrapped value. For CombinatorXor the two
// evaluations are folded with XOR, matching the (documented-incorrect) XOR
// term fold.
func Integrate(poly Polynomial, xStart, xEnd Word, comb Combinator) (Word, error) {
	fStart, err := Evaluate(poly, xStart, ModeAntiderivative, comb)
	if err != nil {
		return 0, err
	}
	fEnd, err := Evaluate(poly, xEnd, ModeAntiderivative, comb)
	if err != nil {
		return 0, err
	}

	switch comb {
	case CombinatorAdd:
		if fEnd < fStart {
			return 0, UnderflowError{Minuend: fEnd, Subtrahend: fStart}
		}
		return fEnd - fStart, nil
	case CombinatorXor:
		return fEnd ^ fStart, nil
	}
	// Evaluate already rejected unknown combinators.
	return 0, InvalidModeError{Mode: comb}
}
