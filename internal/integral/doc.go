// Package integral computes the definite integral of the fixed quartic
// f(x) = A·x⁴ + B·x³ + C·x² + D·x + E over a bounded interval.
//
// The package has two layers. The core is a fixed-width (32-bit) unsigned
// "ring" engine built from three pieces: a shift-and-add multiplier (Mul,
// MulChecked), an exact rational scaler (ScaleExact) that multiplies first
// and divides last, and a term evaluator (Evaluate) whose fold is selected
// by a Combinator — arithmetic addition, or the historical bitwise-XOR mode
// retained strictly for regression testing. Integrate composes two
// antiderivative evaluations into the definite integral.
//
// On top of the core sits the backend layer: Calculator implementations for
// the ring engine and for two independent floating-point oracles (the exact
// closed-form antiderivative and composite trapezoidal quadrature), resolved
// through a registry-backed CalculatorFactory. A fourth, GMP-based exact
// backend is available behind the "gmp" build tag. Running several backends
// and cross-checking their results is the orchestration layer's job.
package integral
