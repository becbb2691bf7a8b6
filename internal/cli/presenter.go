package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/polyint/internal/errors"
	"github.com/agbru/polyint/internal/format"
	"github.com/agbru/polyint/internal/orchestration"
	"github.com/agbru/polyint/internal/progress"
	"github.com/agbru/polyint/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It wraps DisplayProgress to provide a spinner and progress bar
// during calculations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing calculations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIColorProvider supplies the active theme's escape codes to components
// that render errors without importing the ui package.
type CLIColorProvider struct{}

// Verify interface compliance.
var _ apperrors.ColorProvider = CLIColorProvider{}

// ErrorColor returns the error escape code of the active theme.
func (CLIColorProvider) ErrorColor() string { return ui.ColorRed() }

// WarningColor returns the warning escape code of the active theme.
func (CLIColorProvider) WarningColor() string { return ui.ColorYellow() }

// Reset returns the reset escape code of the active theme.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for calculation results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with backend
// names, values, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum column widths for proper alignment
	maxNameLen := len("Backend")
	maxValueLen := len("Result")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if res.Err == nil {
			if l := len(res.Result.String()); l > maxValueLen {
				maxValueLen = l
			}
		}
		if l := len(durationCell(res.Duration)); l > maxDurationLen {
			maxDurationLen = l
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sBackend%s%s   %sResult%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), pad(maxNameLen-len("Backend")),
		ui.ColorUnderline(), ui.ColorReset(), pad(maxValueLen-len("Result")),
		ui.ColorUnderline(), ui.ColorReset(), pad(maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status, value string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			value = "-"
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			value = res.Result.String()
		}
		duration := durationCell(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), pad(maxNameLen-len(res.Name)),
			ui.ColorCyan(), value, ui.ColorReset(), pad(maxValueLen-len(value)),
			ui.ColorYellow(), duration, ui.ColorReset(), pad(maxDurationLen-len(duration)),
			status)
	}
}

// durationCell formats a duration for the summary table.
func durationCell(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// pad returns a string of n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}

// PresentResult displays the final reference result using DisplayResult.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, pres orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, pres, out)
}

// FormatDuration formats a duration for display using the standard duration
// formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError handles calculation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}
