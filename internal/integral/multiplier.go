package integral

// Word is the fixed-width unsigned register type of the ring engine. All ring
// arithmetic is defined over this 32-bit domain; the overflow policy is
// explicit, and the checked variants surface it as an OverflowError instead
// of wrapping.
type Word uint32

// MaxWord is the largest value representable in a Word.
const MaxWord = ^Word(0)

// Mul computes the product of two Words by binary long multiplication: it
// walks the multiplier bits from least to most significant and, for each set
// bit, accumulates the left-shifted multiplicand with arithmetic addition.
// Accumulating with XOR would drop carries and produce a wrong product; the
// bitwise fold exists only as CombinatorXor in the evaluator, never here.
//
// The result wraps on overflow. Use MulChecked when the caller needs the
// exact product or an error.
func Mul(multiplicand, multiplier Word) Word {
	var product Word
	for multiplier != 0 {
		if multiplier&1 == 1 {
			product += multiplicand
		}
		multiplicand <<= 1
		multiplier >>= 1
	}
	return product
}

// mulWide runs the same shift-and-add loop over a 64-bit accumulator. A
// 32x32-bit product always fits in 64 bits, so the accumulator is exact.
func mulWide(multiplicand, multiplier Word) uint64 {
	var product uint64
	shifted := uint64(multiplicand)
	m := uint64(multiplier)
	for m != 0 {
		if m&1 == 1 {
			product += shifted
		}
		shifted <<= 1
		m >>= 1
	}
	return product
}

// MulChecked computes the product of two Words and reports overflow instead
// of wrapping.
func MulChecked(multiplicand, multiplier Word) (Word, error) {
	product := mulWide(multiplicand, multiplier)
	if product > uint64(MaxWord) {
		return 0, OverflowError{Op: "mul", X: multiplicand, Y: multiplier}
	}
	return Word(product), nil
}

// addChecked adds two Words and reports overflow instead of wrapping.
func addChecked(x, y Word) (Word, error) {
	sum := uint64(x) + uint64(y)
	if sum > uint64(MaxWord) {
		return 0, OverflowError{Op: "add", X: x, Y: y}
	}
	return Word(sum), nil
}
