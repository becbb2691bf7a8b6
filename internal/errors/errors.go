package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/polyint/internal/integral"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between backends.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a backend failure while preserving the
// original cause. This allows structured inspection of what went wrong
// during an integration run (overflow, precision loss, cancellation, ...).
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap() and checked with
// errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the escape codes used when rendering errors.
// The CLI passes its theme-backed provider; tests pass a plain one.
type ColorProvider interface {
	// ErrorColor returns the escape code for error text.
	ErrorColor() string
	// WarningColor returns the escape code for warnings and hints.
	WarningColor() string
	// Reset returns the escape code that clears formatting.
	Reset() string
}

// noColors is the fallback provider when no theme is available.
type noColors struct{}

func (noColors) ErrorColor() string   { return "" }
func (noColors) WarningColor() string { return "" }
func (noColors) Reset() string        { return "" }

// HandleCalculationError renders a backend failure and maps it to an exit
// code. Arithmetic conditions from the ring engine come with a hint on how
// to recover, since all of them are recoverable by the caller (widen the
// computation, fix the bounds, or use a floating-point backend).
//
// Parameters:
//   - err: The error to handle.
//   - duration: How long the failed run took (zero if unknown).
//   - out: The writer for the error report.
//   - colors: The escape-code provider.
//
// Returns:
//   - int: The process exit code for this error.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sError: calculation timed out after %s.%s\n", colors.ErrorColor(), duration, colors.Reset())
		return ExitErrorTimeout

	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCalculation canceled.%s\n", colors.ErrorColor(), colors.Reset())
		return ExitErrorCanceled

	case errors.Is(err, integral.ErrOverflow):
		fmt.Fprintf(out, "%sError: %v%s\n", colors.ErrorColor(), err, colors.Reset())
		fmt.Fprintf(out, "%sHint: reduce the coefficients or bounds, or use a floating-point backend (--algo closed-form).%s\n",
			colors.WarningColor(), colors.Reset())
		return ExitErrorGeneric

	case errors.Is(err, integral.ErrUnderflow):
		fmt.Fprintf(out, "%sError: %v%s\n", colors.ErrorColor(), err, colors.Reset())
		fmt.Fprintf(out, "%sHint: the unsigned engine requires F(to) ≥ F(from); swap the bounds or use --algo closed-form.%s\n",
			colors.WarningColor(), colors.Reset())
		return ExitErrorGeneric

	case errors.Is(err, integral.ErrPrecisionLoss):
		fmt.Fprintf(out, "%sError: %v%s\n", colors.ErrorColor(), err, colors.Reset())
		fmt.Fprintf(out, "%sHint: the rational scaling did not divide evenly for these inputs; use --algo closed-form for a rounded result.%s\n",
			colors.WarningColor(), colors.Reset())
		return ExitErrorGeneric

	case errors.Is(err, integral.ErrInvalidMode):
		fmt.Fprintf(out, "%sError: %v%s\n", colors.ErrorColor(), err, colors.Reset())
		return ExitErrorConfig

	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.ErrorColor(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
