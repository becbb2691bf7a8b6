package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/polyint/internal/integral"
	"github.com/agbru/polyint/internal/progress"
)

// CalculationResult encapsulates the outcome of a single backend run.
// It serves as the shared domain type between orchestration and presentation
// layers.
type CalculationResult struct {
	// Name is the identifier of the backend used (e.g., "Ring (32-bit Shift-and-Add)").
	Name string
	// Result is the computed integral. It is meaningful only when Err is nil.
	Result integral.Result
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Req     integral.Request
	Verbose bool
	Details bool
}

// ProgressReporter defines the interface for displaying calculation progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinners, progress
// bars) while orchestration focuses on coordinating the backends.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from backends.
	//   - numCalculators: The number of concurrent backends being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting calculation results,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the final reference result.
	PresentResult(result CalculationResult, pres PresentationOptions, out io.Writer)
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
