package integral

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/polyint/internal/progress"
)

func init() {
	RegisterCalculator("trapezoid", func() Calculator { return &TrapezoidCalculator{} })
}

// TrapezoidCalculator approximates the integral with composite trapezoidal
// quadrature. Like the closed-form oracle it computes in float64 and ignores
// the request combinator; unlike it, it carries a nonzero tolerance — the
// analytic O(h²) error bound — which the consistency analysis uses as its
// comparison margin.
type TrapezoidCalculator struct{}

// Name returns the name of the backend.
func (c *TrapezoidCalculator) Name() string {
	return "Trapezoid (Composite Quadrature)"
}

// Integrate sums the composite rule over opts.Intervals subintervals. Above
// opts.ParallelThreshold intervals the interior sum is split into fixed
// chunks evaluated concurrently and combined in chunk-index order, so the
// reduction order (and therefore the rounding) is deterministic for a given
// GOMAXPROCS.
func (c *TrapezoidCalculator) Integrate(ctx context.Context, progressChan chan<- progress.Update, idx int, req Request, opts Options) (Result, error) {
	n := opts.Intervals
	if n <= 0 {
		n = DefaultIntervals
	}

	a := float64(req.XStart)
	b := float64(req.XEnd)
	h := (b - a) / float64(n)

	endpoints := (PolyValue(req.Poly, a) + PolyValue(req.Poly, b)) / 2

	var interior float64
	var err error
	if opts.ParallelThreshold > 0 && n >= opts.ParallelThreshold {
		interior, err = parallelInteriorSum(ctx, req.Poly, a, h, n)
	} else {
		interior, err = sequentialInteriorSum(ctx, req.Poly, a, h, n, progressChan, idx)
	}
	if err != nil {
		return Result{}, err
	}
	reportProgress(progressChan, idx, 1.0)

	return Result{
		Backend:   "trapezoid",
		Value:     (endpoints + interior) * h,
		Tolerance: TrapezoidErrorBound(req.Poly, a, b, n),
	}, nil
}

// sequentialInteriorSum walks the interior points in strides, checking for
// cancellation and reporting progress between strides.
func sequentialInteriorSum(ctx context.Context, poly Polynomial, a, h float64, n int, progressChan chan<- progress.Update, idx int) (float64, error) {
	var sum float64
	for lo := 1; lo < n; lo += quadratureCheckStride {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		hi := lo + quadratureCheckStride
		if hi > n {
			hi = n
		}
		sum += trapezoidInteriorSum(poly, a, h, lo, hi)
		reportProgress(progressChan, idx, float64(hi)/float64(n))
	}
	return sum, nil
}

// parallelInteriorSum splits [1, n) into one chunk per processor, evaluates
// the chunks concurrently, and adds the partial sums in chunk-index order.
func parallelInteriorSum(ctx context.Context, poly Polynomial, a, h float64, n int) (float64, error) {
	chunks := runtime.GOMAXPROCS(0)
	if chunks < 1 {
		chunks = 1
	}
	partials := make([]float64, chunks)
	per := (n - 1 + chunks - 1) / chunks

	g, ctx := errgroup.WithContext(ctx)
	for k := 0; k < chunks; k++ {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lo := 1 + k*per
			hi := lo + per
			if hi > n {
				hi = n
			}
			if lo < hi {
				partials[k] = trapezoidInteriorSum(poly, a, h, lo, hi)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum float64
	for _, p := range partials {
		sum += p
	}
	return sum, nil
}
