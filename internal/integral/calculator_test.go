package integral

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/agbru/polyint/internal/progress"
)

// fixtureRequest is the standard comparison problem.
func fixtureRequest() Request {
	return Request{Poly: fixturePoly, XStart: 0, XEnd: 10, Combinator: CombinatorAdd}
}

// TestDefaultFactory verifies registration, lookup and ordering.
func TestDefaultFactory(t *testing.T) {
	factory := NewDefaultFactory()

	keys := factory.List()
	for _, want := range []string{"ring", "closed-form", "trapezoid"} {
		found := false
		for _, k := range keys {
			if k == want {
				found = true
			}
		}
		if !found {
			t.Errorf("List() = %v, missing %q", keys, want)
		}
	}

	t.Run("Get returns a working backend", func(t *testing.T) {
		calc, err := factory.Get("ring")
		if err != nil {
			t.Fatalf("Get(ring) returned error: %v", err)
		}
		if calc.Name() == "" {
			t.Error("backend name should not be empty")
		}
	})

	t.Run("Get rejects unknown keys", func(t *testing.T) {
		if _, err := factory.Get("simpson"); err == nil {
			t.Error("Get(simpson) should fail")
		}
	})

	t.Run("GetAll matches List", func(t *testing.T) {
		if got, want := len(factory.GetAll()), len(factory.List()); got != want {
			t.Errorf("GetAll() returned %d backends, List() has %d keys", got, want)
		}
	})
}

// TestRingCalculator covers the integer backend end to end.
func TestRingCalculator(t *testing.T) {
	calc := &RingCalculator{}
	ctx := context.Background()

	t.Run("fixture result is exact", func(t *testing.T) {
		res, err := calc.Integrate(ctx, nil, 0, fixtureRequest(), Options{})
		if err != nil {
			t.Fatalf("Integrate returned error: %v", err)
		}
		if !res.Exact {
			t.Error("ring result should be exact")
		}
		if res.Units != 26250 {
			t.Errorf("Units = %d, want 26250", res.Units)
		}
		if res.Tolerance != 0 {
			t.Errorf("Tolerance = %g, want 0 for an exact backend", res.Tolerance)
		}
		if res.String() != "26250" {
			t.Errorf("String() = %q, want \"26250\"", res.String())
		}
	})

	t.Run("xor requires the unsafe opt-in", func(t *testing.T) {
		req := fixtureRequest()
		req.Combinator = CombinatorXor
		if _, err := calc.Integrate(ctx, nil, 0, req, Options{}); !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("error = %v, want ErrInvalidMode", err)
		}

		req.UnsafeXor = true
		res, err := calc.Integrate(ctx, nil, 0, req, Options{})
		if err != nil {
			t.Fatalf("opted-in xor returned error: %v", err)
		}
		if res.Units != 24250 {
			t.Errorf("xor Units = %d, want 24250", res.Units)
		}
	})

	t.Run("reversed bounds underflow", func(t *testing.T) {
		req := fixtureRequest()
		req.XStart, req.XEnd = 10, 0
		if _, err := calc.Integrate(ctx, nil, 0, req, Options{}); !errors.Is(err, ErrUnderflow) {
			t.Fatalf("error = %v, want ErrUnderflow", err)
		}
	})

	t.Run("honors canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := calc.Integrate(canceled, nil, 0, fixtureRequest(), Options{}); !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	})
}

// TestClosedFormCalculator covers the float64 oracle backend.
func TestClosedFormCalculator(t *testing.T) {
	calc := &ClosedFormCalculator{}
	res, err := calc.Integrate(context.Background(), nil, 0, fixtureRequest(), Options{})
	if err != nil {
		t.Fatalf("Integrate returned error: %v", err)
	}
	if res.Exact {
		t.Error("closed-form result should not claim exactness")
	}
	if math.Abs(res.Value-26250) > 1e-6 {
		t.Errorf("Value = %g, want 26250", res.Value)
	}
	if res.Tolerance != ClosedFormTolerance {
		t.Errorf("Tolerance = %g, want %g", res.Tolerance, ClosedFormTolerance)
	}
}

// TestTrapezoidCalculator covers the quadrature backend, including the
// parallel path and its agreement with the sequential one.
func TestTrapezoidCalculator(t *testing.T) {
	calc := &TrapezoidCalculator{}
	ctx := context.Background()

	t.Run("agrees with the closed form within its bound", func(t *testing.T) {
		res, err := calc.Integrate(ctx, nil, 0, fixtureRequest(), Options{Intervals: 50_000})
		if err != nil {
			t.Fatalf("Integrate returned error: %v", err)
		}
		if diff := math.Abs(res.Value - 26250); diff > res.Tolerance {
			t.Errorf("|%g - 26250| = %g exceeds reported tolerance %g", res.Value, diff, res.Tolerance)
		}
	})

	t.Run("parallel and sequential sums agree", func(t *testing.T) {
		const n = 200_000
		seq, err := calc.Integrate(ctx, nil, 0, fixtureRequest(), Options{Intervals: n})
		if err != nil {
			t.Fatalf("sequential run returned error: %v", err)
		}
		par, err := calc.Integrate(ctx, nil, 0, fixtureRequest(), Options{Intervals: n, ParallelThreshold: 1})
		if err != nil {
			t.Fatalf("parallel run returned error: %v", err)
		}
		// Chunk boundaries change the rounding order slightly; the results
		// must agree far inside the quadrature tolerance.
		if diff := math.Abs(seq.Value - par.Value); diff > 1e-6 {
			t.Errorf("parallel result %g differs from sequential %g by %g", par.Value, seq.Value, diff)
		}
	})

	t.Run("reports progress", func(t *testing.T) {
		progressChan := make(chan progress.Update, 64)
		if _, err := calc.Integrate(ctx, progressChan, 3, fixtureRequest(), Options{Intervals: 50_000}); err != nil {
			t.Fatalf("Integrate returned error: %v", err)
		}
		close(progressChan)

		var updates int
		for update := range progressChan {
			updates++
			if update.CalculatorIndex != 3 {
				t.Errorf("CalculatorIndex = %d, want 3", update.CalculatorIndex)
			}
			if update.Value < 0 || update.Value > 1 {
				t.Errorf("progress value %g out of [0, 1]", update.Value)
			}
		}
		if updates == 0 {
			t.Error("expected at least one progress update")
		}
	})

	t.Run("honors canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := calc.Integrate(canceled, nil, 0, fixtureRequest(), Options{Intervals: 1_000_000}); !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	})
}

// TestResultString covers both rendering branches.
func TestResultString(t *testing.T) {
	exact := Result{Units: 26250, Exact: true}
	if exact.String() != "26250" {
		t.Errorf("exact String() = %q", exact.String())
	}
	approx := Result{Value: 26250.0000123}
	if approx.String() != "26250.000012" {
		t.Errorf("approx String() = %q", approx.String())
	}
}

// TestReportProgress_NeverBlocks drops updates when the consumer lags.
func TestReportProgress_NeverBlocks(t *testing.T) {
	full := make(chan progress.Update, 1)
	full <- progress.Update{}

	done := make(chan struct{})
	go func() {
		reportProgress(full, 0, 0.5)
		close(done)
	}()

	select {
	case <-done:
	default:
		// The goroutine may not have been scheduled yet; wait for it.
		<-done
	}

	reportProgress(nil, 0, 0.5) // nil channel is a no-op
}
