// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// calculation, validation) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
//
// The arithmetic error taxonomy of the ring engine (overflow, precision loss,
// underflow, invalid mode) lives with the engine in the integral package;
// this package maps those conditions to exit codes at the application
// boundary.
package apperrors
