package integral

import (
	"math"
	"testing"
)

// TestTrapezoidIntegral_Convergence verifies the O(h²) behavior: refining the
// partition must shrink the error toward the closed form, and every refinement
// must stay within the analytic bound.
func TestTrapezoidIntegral_Convergence(t *testing.T) {
	exact := ClosedFormIntegral(fixturePoly, 0, 10)

	var prevErr float64 = math.Inf(1)
	for _, n := range []int{10, 100, 1_000, 10_000, 100_000} {
		approx := TrapezoidIntegral(fixturePoly, 0, 10, n)
		absErr := math.Abs(approx - exact)

		if bound := TrapezoidErrorBound(fixturePoly, 0, 10, n); absErr > bound {
			t.Errorf("n=%d: error %g exceeds the analytic bound %g", n, absErr, bound)
		}
		if absErr > prevErr {
			t.Errorf("n=%d: error %g did not decrease from %g", n, absErr, prevErr)
		}
		prevErr = absErr
	}

	if prevErr > 1e-4 {
		t.Errorf("error at n=100000 is %g, want below 1e-4", prevErr)
	}
}

// TestTrapezoidIntegral_ExactForLinear is exact for integrands with zero
// second derivative, independent of n.
func TestTrapezoidIntegral_ExactForLinear(t *testing.T) {
	linear := Polynomial{D: 4, E: 5}
	exact := ClosedFormIntegral(linear, 0, 10)
	for _, n := range []int{1, 2, 7} {
		got := TrapezoidIntegral(linear, 0, 10, n)
		if math.Abs(got-exact) > 1e-9 {
			t.Errorf("n=%d: trapezoid = %g, want %g exactly", n, got, exact)
		}
	}
}

// TestTrapezoidIntegral_DegenerateCount treats n < 1 as a single interval.
func TestTrapezoidIntegral_DegenerateCount(t *testing.T) {
	one := TrapezoidIntegral(fixturePoly, 0, 10, 1)
	if got := TrapezoidIntegral(fixturePoly, 0, 10, 0); got != one {
		t.Errorf("n=0 result %g differs from n=1 result %g", got, one)
	}
}

// TestTrapezoidErrorBound_Shrinks confirms the quadratic decay of the bound.
func TestTrapezoidErrorBound_Shrinks(t *testing.T) {
	coarse := TrapezoidErrorBound(fixturePoly, 0, 10, 100)
	fine := TrapezoidErrorBound(fixturePoly, 0, 10, 1000)
	ratio := coarse / fine
	if math.Abs(ratio-100) > 1e-6 {
		t.Errorf("bound ratio for 10x refinement = %g, want 100", ratio)
	}
}

// TestTrapezoidInteriorSum_Chunkable verifies the invariant the parallel
// reduction relies on: the interior sum over [1, n) equals the chunk sums
// combined in index order.
func TestTrapezoidInteriorSum_Chunkable(t *testing.T) {
	const n = 1000
	h := 10.0 / n

	full := trapezoidInteriorSum(fixturePoly, 0, h, 1, n)

	var chunked float64
	for lo := 1; lo < n; lo += 137 {
		hi := lo + 137
		if hi > n {
			hi = n
		}
		chunked += trapezoidInteriorSum(fixturePoly, 0, h, lo, hi)
	}

	if math.Abs(full-chunked) > 1e-7 {
		t.Errorf("chunked sum %g differs from full sum %g", chunked, full)
	}
}
