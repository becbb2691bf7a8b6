// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over POLYINT_-prefixed environment
// variables, which take priority over defaults. Adaptive hardware estimation
// fills in the parallel quadrature threshold when nothing else set it.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/polyint/internal/errors"
	"github.com/agbru/polyint/internal/integral"
)

// Default configuration values. The coefficient and bound defaults are the
// canonical fixture (∫₀¹⁰ x⁴+2x³+3x²+4x+5 dx = 26250), so running the binary
// with no arguments demonstrates a full cross-checked run.
const (
	DefaultTimeout = 1 * time.Minute

	defaultA     = 1
	defaultB     = 2
	defaultC     = 3
	defaultD     = 4
	defaultE     = 5
	defaultXFrom = 0
	defaultXTo   = 10
)

// AppConfig holds the complete application configuration for a run. The core
// treats it as a read-only snapshot: it is resolved once in ParseConfig and
// passed by value from there on.
type AppConfig struct {
	// A..E are the quartic coefficients, highest degree first.
	A, B, C, D, E uint64

	// XStart and XEnd are the integration bounds.
	XStart uint64
	XEnd   uint64

	// Intervals is the trapezoid subinterval count (0 selects the backend
	// default).
	Intervals int

	// ParallelThreshold is the interval count at which the quadrature sum
	// parallelizes (0 means "let adaptive estimation decide").
	ParallelThreshold int

	// Algo selects a backend key or "all" for a comparison run.
	Algo string

	// Combine names the term combinator ("add" or "xor").
	Combine string

	// UnsafeXor acknowledges that the XOR combinator is mathematically
	// wrong; without it, "xor" is rejected at parse time.
	UnsafeXor bool

	// Timeout bounds the whole run.
	Timeout time.Duration

	Verbose bool
	Details bool
	Quiet   bool
	NoColor bool

	// OutputFile, when set, receives the winning result.
	OutputFile string

	// MetricsAddr, when set, exposes a Prometheus /metrics endpoint on
	// that address for the duration of the run.
	MetricsAddr string

	// TUI launches the interactive dashboard instead of the CLI flow.
	TUI bool

	// Completion requests a shell completion script ("bash", "zsh", "fish").
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides and validating the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The raw arguments (without the program name).
//   - errWriter: The writer for usage and parse errors.
//   - availableAlgos: The registered backend keys, for validation and usage.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError /
//     ValidationError describing the first problem found.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Uint64Var(&cfg.A, "a", defaultA, "coefficient of x⁴")
	fs.Uint64Var(&cfg.B, "b", defaultB, "coefficient of x³")
	fs.Uint64Var(&cfg.C, "c", defaultC, "coefficient of x²")
	fs.Uint64Var(&cfg.D, "d", defaultD, "coefficient of x")
	fs.Uint64Var(&cfg.E, "e", defaultE, "constant coefficient")
	fs.Uint64Var(&cfg.XStart, "from", defaultXFrom, "lower integration bound")
	fs.Uint64Var(&cfg.XEnd, "to", defaultXTo, "upper integration bound")
	fs.IntVar(&cfg.Intervals, "intervals", 0, "trapezoid subinterval count (0 = default)")
	fs.IntVar(&cfg.ParallelThreshold, "parallel-threshold", 0, "interval count at which quadrature parallelizes (0 = adaptive)")
	fs.StringVar(&cfg.Algo, "algo", "all", fmt.Sprintf("backend to run: %s or all", strings.Join(availableAlgos, ", ")))
	fs.StringVar(&cfg.Combine, "combine", "add", "term combinator: add or xor (xor requires --unsafe-xor)")
	fs.BoolVar(&cfg.UnsafeXor, "unsafe-xor", false, "allow the mathematically incorrect xor combinator")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum execution time")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose per-backend output (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose per-backend output")
	// No -d shorthand here: d is the coefficient of x.
	fs.BoolVar(&cfg.Details, "details", false, "show performance details")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet mode for scripts (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet mode for scripts")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the result to a file (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result to a file")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a shell completion script (bash, zsh, fish)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations the engine cannot honor. Bound and
// coefficient checks enforce the 32-bit unsigned domain of the ring engine
// up front, rather than letting every run fail in the same way later.
func validate(cfg AppConfig, availableAlgos []string) error {
	max := uint64(integral.MaxWord)
	for _, f := range []struct {
		name  string
		value uint64
	}{
		{"a", cfg.A}, {"b", cfg.B}, {"c", cfg.C}, {"d", cfg.D}, {"e", cfg.E},
		{"from", cfg.XStart}, {"to", cfg.XEnd},
	} {
		if f.value > max {
			return apperrors.ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("%d exceeds the 32-bit unsigned domain (max %d)", f.value, max),
			}
		}
	}

	if cfg.Algo != "all" {
		found := false
		for _, a := range availableAlgos {
			if a == cfg.Algo {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown backend %q (available: %s, all)", cfg.Algo, strings.Join(availableAlgos, ", "))
		}
	}

	comb, err := integral.ParseCombinator(cfg.Combine)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if comb == integral.CombinatorXor && !cfg.UnsafeXor {
		return apperrors.NewConfigError("--combine xor is mathematically incorrect and requires --unsafe-xor")
	}

	if cfg.Intervals < 0 {
		return apperrors.ValidationError{Field: "intervals", Message: "must be >= 0"}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if cfg.Completion != "" {
		switch cfg.Completion {
		case "bash", "zsh", "fish":
		default:
			return apperrors.NewConfigError("unsupported completion shell %q (supported: bash, zsh, fish)", cfg.Completion)
		}
	}
	return nil
}

// ToRequest converts the configuration into the engine's problem
// description. Validation has already confirmed the Word range and the
// combinator spelling.
func (c AppConfig) ToRequest() integral.Request {
	comb, _ := integral.ParseCombinator(c.Combine)
	return integral.Request{
		Poly: integral.Polynomial{
			A: integral.Word(c.A),
			B: integral.Word(c.B),
			C: integral.Word(c.C),
			D: integral.Word(c.D),
			E: integral.Word(c.E),
		},
		XStart:     integral.Word(c.XStart),
		XEnd:       integral.Word(c.XEnd),
		Combinator: comb,
		UnsafeXor:  c.UnsafeXor,
	}
}

// ToOptions converts the configuration into backend tuning options.
func (c AppConfig) ToOptions() integral.Options {
	return integral.Options{
		Intervals:         c.Intervals,
		ParallelThreshold: c.ParallelThreshold,
	}
}
