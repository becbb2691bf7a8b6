// Package progress defines the progress update type shared between the
// calculation backends and the presentation layers (CLI spinner, TUI).
package progress

// Update carries one progress report from a running backend.
type Update struct {
	// CalculatorIndex identifies which backend sent the update.
	CalculatorIndex int
	// Value is the normalized progress, from 0.0 to 1.0.
	Value float64
}
