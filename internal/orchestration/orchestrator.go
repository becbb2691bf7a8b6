package orchestration

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polyint/internal/errors"
	"github.com/agbru/polyint/internal/integral"
	"github.com/agbru/polyint/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking calculation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// comparisonEpsilon absorbs float64 rounding when two backends agree to the
// last representable bit but not bit-identically.
const comparisonEpsilon = 1e-9

var tracer = otel.Tracer("polyint/orchestration")

// ExecuteCalculations orchestrates the concurrent execution of one or more
// integration backends.
//
// It manages the lifecycle of calculation goroutines, collects their results,
// and coordinates the display of progress updates. This function is the core
// of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: A slice of backends to execute.
//   - req: The integration problem, shared read-only by every backend.
//   - opts: Backend tuning options.
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []CalculationResult: A slice containing the results of each backend,
//     in the order the backends were given.
func ExecuteCalculations(ctx context.Context, calculators []integral.Calculator, req integral.Request, opts integral.Options, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan progress.Update, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "integrate",
				trace.WithAttributes(attribute.String("backend", calculator.Name())),
			)
			startTime := time.Now()
			res, err := calculator.Integrate(spanCtx, progressChan, idx, req, opts)
			if err != nil {
				err = apperrors.CalculationError{Cause: err}
			}
			results[idx] = CalculationResult{
				Name: calculator.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			span.End()
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple backends and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful calculations, and displays a comparative table. Consistency is
// tolerance-aware: the reference is the successful result with the smallest
// admitted error (the exact ring or closed-form value), and every other
// successful result must agree with it within the sum of the two tolerances.
//
// Parameters:
//   - results: The slice of calculation results to analyze.
//   - pres: Presentation options (problem, verbosity).
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps a global failure to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, pres PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var reference *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
		if reference == nil || results[i].Result.Tolerance < reference.Result.Tolerance {
			reference = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No backend could complete the calculation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		margin := res.Result.Tolerance + reference.Result.Tolerance + comparisonEpsilon
		if math.Abs(res.Result.Value-reference.Result.Value) > margin {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the backends.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*reference, pres, out)
	return apperrors.ExitSuccess
}
