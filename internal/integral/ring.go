package integral

import (
	"context"

	"github.com/agbru/polyint/internal/progress"
)

func init() {
	RegisterCalculator("ring", func() Calculator { return &RingCalculator{} })
}

// RingCalculator runs the fixed-width shift-and-add engine. It is the only
// backend that computes in integer arithmetic, and the one the floating-point
// oracles exist to validate.
type RingCalculator struct{}

// Name returns the name of the backend.
func (c *RingCalculator) Name() string {
	return "Ring (32-bit Shift-and-Add)"
}

// Integrate evaluates F(xEnd) ⊖ F(xStart) in the ring domain. The XOR
// combinator is refused unless the request carries the unsafe opt-in, since
// a comparison run asserts mathematical correctness.
func (c *RingCalculator) Integrate(ctx context.Context, progressChan chan<- progress.Update, idx int, req Request, _ Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if req.Combinator == CombinatorXor && !req.UnsafeXor {
		return Result{}, InvalidModeError{Mode: CombinatorXor}
	}

	units, err := Integrate(req.Poly, req.XStart, req.XEnd, req.Combinator)
	if err != nil {
		return Result{}, err
	}
	reportProgress(progressChan, idx, 1.0)

	return Result{
		Backend: "ring",
		Value:   float64(units),
		Units:   uint64(units),
		Exact:   true,
	}, nil
}
