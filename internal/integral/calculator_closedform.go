package integral

import (
	"context"

	"github.com/agbru/polyint/internal/progress"
)

func init() {
	RegisterCalculator("closed-form", func() Calculator { return &ClosedFormCalculator{} })
}

// ClosedFormCalculator evaluates the exact antiderivative difference in
// float64. It is the ground-truth oracle: it ignores the request combinator,
// because its whole purpose is to report what the arithmetically correct
// answer is.
type ClosedFormCalculator struct{}

// Name returns the name of the backend.
func (c *ClosedFormCalculator) Name() string {
	return "Closed Form (Float64 Antiderivative)"
}

// Integrate computes F(xEnd) − F(xStart) in real arithmetic.
func (c *ClosedFormCalculator) Integrate(ctx context.Context, progressChan chan<- progress.Update, idx int, req Request, _ Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	value := ClosedFormIntegral(req.Poly, float64(req.XStart), float64(req.XEnd))
	reportProgress(progressChan, idx, 1.0)

	return Result{
		Backend:   "closed-form",
		Value:     value,
		Tolerance: ClosedFormTolerance,
	}, nil
}
