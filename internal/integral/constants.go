package integral

// ─────────────────────────────────────────────────────────────────────────────
// Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultIntervals is the default subinterval count for the trapezoid
	// backend. Over the default [0, 10] interval this gives h = 1e-4, for
	// which the O(h²) error bound of the composite rule sits around 1e-5
	// on the test fixture — comfortably inside the cross-backend
	// comparison tolerance while still completing in well under a
	// millisecond.
	DefaultIntervals = 100_000

	// ClosedFormTolerance is the absolute error admitted by the float64
	// closed-form oracle. The antiderivative is five multiply-adds, so
	// rounding stays far below this; 1e-6 matches the agreement margin
	// the fixture tests assert.
	ClosedFormTolerance = 1e-6

	// DefaultParallelQuadratureThreshold is the interval count at or above
	// which the trapezoid sum is chunked across goroutines when no
	// adaptive or user-supplied threshold applies. Below it, goroutine
	// startup costs more than the sum itself.
	DefaultParallelQuadratureThreshold = 1 << 18

	// quadratureCheckStride is how many interior points are summed between
	// context-cancellation checks and progress reports.
	quadratureCheckStride = 8192
)
