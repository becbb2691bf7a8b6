package integral

import "fmt"

// ScaleExact computes (coefficient / divisor) · power as an exact integer.
//
// The multiplication happens first, through the shift-and-add multiplier over
// a 64-bit accumulator, and the single division happens last. Dividing the
// coefficient before multiplying would truncate whenever the coefficient is
// not a multiple of the divisor and silently drop the remainder; deferring
// the division to the last step makes the result exact for every input whose
// full numerator divides evenly, and detectable otherwise.
//
// A nonzero final remainder is reported as PrecisionLossError, a quotient
// outside the Word range as OverflowError. The caller decides whether to
// widen, reject the input, or fall back to a floating-point backend.
func ScaleExact(coefficient, divisor, power Word) (Word, error) {
	if divisor == 0 {
		return 0, fmt.Errorf("scale: divisor must be nonzero")
	}

	product := mulWide(coefficient, power)
	quotient := product / uint64(divisor)
	remainder := product % uint64(divisor)

	if remainder != 0 {
		return 0, PrecisionLossError{Product: product, Divisor: divisor, Remainder: remainder}
	}
	if quotient > uint64(MaxWord) {
		return 0, OverflowError{Op: "scale", X: coefficient, Y: power}
	}
	return Word(quotient), nil
}
