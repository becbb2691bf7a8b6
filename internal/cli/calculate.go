package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/polyint/internal/config"
	"github.com/agbru/polyint/internal/integral"
	"github.com/agbru/polyint/internal/ui"
)

// FormatPolynomial renders the configured quartic in conventional notation.
func FormatPolynomial(cfg config.AppConfig) string {
	return fmt.Sprintf("%d·x⁴ + %d·x³ + %d·x² + %d·x + %d", cfg.A, cfg.B, cfg.C, cfg.D, cfg.E)
}

// PrintExecutionConfig displays the current execution configuration to the
// user: the integrand, the bounds, the timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Integrating %sf(x) = %s%s over %s[%d, %d]%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), FormatPolynomial(cfg), ui.ColorReset(),
		ui.ColorYellow(), cfg.XStart, cfg.XEnd, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if cfg.Combine != "add" {
		fmt.Fprintf(out, "%sWarning: combinator %q carries no arithmetic guarantee.%s\n",
			ui.ColorRed(), cfg.Combine, ui.ColorReset())
	}
}

// PrintExecutionMode displays the execution mode (single backend vs comparison).
//
// Parameters:
//   - calculators: The slice of backends that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(calculators []integral.Calculator, out io.Writer) {
	var modeDesc string
	if len(calculators) > 1 {
		modeDesc = "Parallel comparison of all backends"
	} else {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s backend",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
