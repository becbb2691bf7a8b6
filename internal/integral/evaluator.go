package integral

import "fmt"

// Polynomial holds the five coefficients of the fixed quartic
//
//	f(x) = A·x⁴ + B·x³ + C·x² + D·x + E
//
// The degree is fixed; there is no dynamic-degree support. A Polynomial is
// immutable for the duration of an evaluation run and is passed by value.
type Polynomial struct {
	A, B, C, D, E Word
}

// Combinator selects how term values are folded into a running total, and
// how the two antiderivative evaluations are folded into the final integral.
type Combinator int

const (
	// CombinatorAdd folds terms with checked arithmetic addition and pairs
	// with true subtraction in Integrate. This is the only mode with an
	// arithmetic meaning and the default everywhere.
	CombinatorAdd Combinator = iota

	// CombinatorXor folds terms with bitwise exclusive-or and pairs with
	// XOR in Integrate. XOR is not an arithmetic sum: carries are dropped
	// and no mathematical guarantee is made. The mode is retained so the
	// historical defect stays reproducible in regression tests; selecting
	// it from configuration requires an explicit unsafe opt-in.
	CombinatorXor
)

// String returns the configuration name of the combinator.
func (c Combinator) String() string {
	switch c {
	case CombinatorAdd:
		return "add"
	case CombinatorXor:
		return "xor"
	}
	return fmt.Sprintf("combinator(%d)", int(c))
}

// ParseCombinator converts a configuration string into a Combinator.
func ParseCombinator(s string) (Combinator, error) {
	switch s {
	case "add":
		return CombinatorAdd, nil
	case "xor":
		return CombinatorXor, nil
	}
	return 0, fmt.Errorf("unknown combinator %q (valid: add, xor)", s)
}

// Mode selects whether the evaluator computes f(x) or its antiderivative F(x).
type Mode int

const (
	// ModeValue evaluates f(x) = A·x⁴ + B·x³ + C·x² + D·x + E.
	ModeValue Mode = iota
	// ModeAntiderivative evaluates F(x) = (A/5)x⁵ + (B/4)x⁴ + (C/3)x³ + (D/2)x² + E·x.
	ModeAntiderivative
)

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeValue:
		return "value"
	case ModeAntiderivative:
		return "antiderivative"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Evaluate computes f(x) or F(x) at a point, term by term, in the ring
// domain. Powers of x are built by repeated multiplication (x² = x·x up to
// x⁵ = x⁴·x), mirroring the register-style repeated-multiply design; there is
// no shortcut exponentiation. The five terms are folded with the single
// combinator passed in: mixing combinators mid-computation would make the
// result ill-defined, so the fold is driven by one value for the whole call.
//
// For CombinatorAdd the result equals the exact mathematical value whenever
// no intermediate term overflows the Word range. For CombinatorXor no such
// guarantee exists.
func Evaluate(poly Polynomial, x Word, mode Mode, comb Combinator) (Word, error) {
	if comb != CombinatorAdd && comb != CombinatorXor {
		return 0, InvalidModeError{Mode: comb}
	}

	var terms [5]Word
	var err error
	switch mode {
	case ModeValue:
		terms, err = valueTerms(poly, x)
	case ModeAntiderivative:
		terms, err = antiderivativeTerms(poly, x)
	default:
		return 0, fmt.Errorf("unknown evaluation mode %d", int(mode))
	}
	if err != nil {
		return 0, err
	}

	return foldTerms(terms, comb)
}

// powersTo returns [1, x, x², …, x^highest], each power obtained by one more
// checked multiplication by x.
func powersTo(x Word, highest int) ([]Word, error) {
	p := make([]Word, highest+1)
	p[0] = 1
	for k := 1; k <= highest; k++ {
		v, err := MulChecked(p[k-1], x)
		if err != nil {
			return nil, err
		}
		p[k] = v
	}
	return p, nil
}

// valueTerms computes the five monomials of f(x).
func valueTerms(poly Polynomial, x Word) ([5]Word, error) {
	var terms [5]Word
	p, err := powersTo(x, 4)
	if err != nil {
		return terms, err
	}
	for i, mono := range []struct {
		coeff Word
		pow   Word
	}{
		{poly.A, p[4]},
		{poly.B, p[3]},
		{poly.C, p[2]},
		{poly.D, p[1]},
		{poly.E, p[0]},
	} {
		t, err := MulChecked(mono.coeff, mono.pow)
		if err != nil {
			return terms, err
		}
		terms[i] = t
	}
	return terms, nil
}

// antiderivativeTerms computes the five terms of F(x), each scaled exactly
// by its rational divisor.
func antiderivativeTerms(poly Polynomial, x Word) ([5]Word, error) {
	var terms [5]Word
	p, err := powersTo(x, 5)
	if err != nil {
		return terms, err
	}
	for i, mono := range []struct {
		coeff   Word
		divisor Word
		pow     Word
	}{
		{poly.A, 5, p[5]},
		{poly.B, 4, p[4]},
		{poly.C, 3, p[3]},
		{poly.D, 2, p[2]},
		{poly.E, 1, p[1]},
	} {
		t, err := ScaleExact(mono.coeff, mono.divisor, mono.pow)
		if err != nil {
			return terms, err
		}
		terms[i] = t
	}
	return terms, nil
}

// foldTerms reduces the term values with the selected combinator.
func foldTerms(terms [5]Word, comb Combinator) (Word, error) {
	var total Word
	for _, t := range terms {
		switch comb {
		case CombinatorAdd:
			sum, err := addChecked(total, t)
			if err != nil {
				return 0, err
			}
			total = sum
		case CombinatorXor:
			total ^= t
		}
	}
	return total, nil
}
