package integral

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is against the typed arithmetic errors
// below. All four conditions are local and recoverable: the caller decides
// whether to reject the input, widen the computation, or fall back to a
// floating-point backend. The engine never masks them.
var (
	ErrOverflow      = errors.New("result exceeds the fixed-width register")
	ErrPrecisionLoss = errors.New("division would discard a nonzero remainder")
	ErrUnderflow     = errors.New("unsigned subtraction would go negative")
	ErrInvalidMode   = errors.New("combinator is not valid in this context")
)

// OverflowError reports that an intermediate product or sum exceeded the
// Word range. Silent wraparound is never acceptable for the engine's
// guarantees, so every checked operation returns this instead.
type OverflowError struct {
	// Op is the operation that overflowed ("mul", "add" or "scale").
	Op string
	// X and Y are the operands.
	X, Y Word
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("overflow: %s(%d, %d) exceeds the %d-bit register", e.Op, e.X, e.Y, 32)
}

// Is reports whether target is ErrOverflow.
func (e OverflowError) Is(target error) bool { return target == ErrOverflow }

// PrecisionLossError reports that a division inside ScaleExact would discard
// a nonzero remainder.
type PrecisionLossError struct {
	// Product is the 64-bit numerator coefficient·power.
	Product uint64
	// Divisor is the rational divisor (5, 4, 3, 2 or 1).
	Divisor Word
	// Remainder is the nonzero remainder that would be lost.
	Remainder uint64
}

func (e PrecisionLossError) Error() string {
	return fmt.Sprintf("precision loss: %d / %d leaves remainder %d", e.Product, e.Divisor, e.Remainder)
}

// Is reports whether target is ErrPrecisionLoss.
func (e PrecisionLossError) Is(target error) bool { return target == ErrPrecisionLoss }

// UnderflowError reports that a subtraction in the unsigned domain would go
// negative. This legitimately occurs when x_start > x_end for an increasing
// antiderivative and must be surfaced, not wrapped.
type UnderflowError struct {
	Minuend    Word
	Subtrahend Word
}

func (e UnderflowError) Error() string {
	return fmt.Sprintf("underflow: %d - %d is not representable unsigned", e.Minuend, e.Subtrahend)
}

// Is reports whether target is ErrUnderflow.
func (e UnderflowError) Is(target error) bool { return target == ErrUnderflow }

// InvalidModeError reports that a combinator was requested in a context that
// asserts mathematical correctness (CombinatorXor without the unsafe opt-in)
// or that the combinator value itself is unknown.
type InvalidModeError struct {
	Mode Combinator
}

func (e InvalidModeError) Error() string {
	if e.Mode == CombinatorXor {
		return fmt.Sprintf("invalid mode: combinator %s requires an explicit unsafe opt-in", e.Mode)
	}
	return fmt.Sprintf("invalid mode: unknown combinator %d", int(e.Mode))
}

// Is reports whether target is ErrInvalidMode.
func (e InvalidModeError) Is(target error) bool { return target == ErrInvalidMode }
