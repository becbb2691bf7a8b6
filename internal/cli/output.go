// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatPolynomial].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/polyint/internal/format"
	"github.com/agbru/polyint/internal/integral"
	"github.com/agbru/polyint/internal/metrics"
	"github.com/agbru/polyint/internal/orchestration"
	"github.com/agbru/polyint/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows per-backend detail.
	Verbose bool
}

// DisplayResult renders the final reference result: the integral notation,
// the value, the producing backend, and the duration. Verbose mode adds the
// tolerance line; details mode adds memory statistics.
func DisplayResult(result orchestration.CalculationResult, pres orchestration.PresentationOptions, out io.Writer) {
	req := pres.Req
	fmt.Fprintf(out, "\n%s∫ f(x) dx over [%d, %d]%s = %s%s%s\n",
		ui.ColorMagenta(), req.XStart, req.XEnd, ui.ColorReset(),
		ui.ColorGreen(), result.Result.String(), ui.ColorReset())
	fmt.Fprintf(out, "Produced by %s%s%s in %s%s%s.\n",
		ui.ColorBlue(), result.Name, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())

	if pres.Verbose {
		if result.Result.Exact {
			fmt.Fprintf(out, "Result is exact (integer units: %d).\n", result.Result.Units)
		} else {
			fmt.Fprintf(out, "Result tolerance: ±%g.\n", result.Result.Tolerance)
		}
	}
	if pres.Details {
		DisplayMemoryStats(metrics.Snapshot(), out)
	}
}

// DisplayQuietResult prints a single-line result suitable for scripting.
func DisplayQuietResult(out io.Writer, result integral.Result) {
	fmt.Fprintln(out, result.String())
}

// FormatQuietResult formats a result for quiet mode output.
func FormatQuietResult(result integral.Result) string {
	return result.String()
}

// DisplayMemoryStats shows memory statistics after a calculation.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapInUse))
	fmt.Fprintf(out, "  Heap from OS:    %s\n", format.FormatBytes(snap.HeapFromOS))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.GCCycles)
	if snap.GCPauseTotal > 0 {
		fmt.Fprintf(out, "  GC pause total:  %s\n", snap.GCPauseTotal.Round(10*time.Microsecond))
	}
}

// WriteResultToFile writes a calculation result to a file.
//
// Parameters:
//   - result: The computed integral.
//   - req: The problem that was solved.
//   - duration: The calculation duration.
//   - algo: The backend name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result integral.Result, req integral.Request, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Definite Integral Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Backend: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Polynomial: %d·x⁴ + %d·x³ + %d·x² + %d·x + %d\n",
		req.Poly.A, req.Poly.B, req.Poly.C, req.Poly.D, req.Poly.E)
	fmt.Fprintf(file, "# Interval: [%d, %d]\n", req.XStart, req.XEnd)
	fmt.Fprintf(file, "# Combinator: %s\n", req.Combinator)
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "∫ = %s\n", result.String())

	return nil
}
