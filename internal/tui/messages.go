package tui

import (
	"time"

	"github.com/agbru/polyint/internal/orchestration"
)

// ProgressMsg carries one progress update from a backend.
type ProgressMsg struct {
	CalculatorIndex int
	Value           float64
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the per-backend comparison results.
type ComparisonResultsMsg struct {
	Results []orchestration.CalculationResult
}

// FinalResultMsg carries the reference result after consistency analysis.
type FinalResultMsg struct {
	Result orchestration.CalculationResult
	Pres   orchestration.PresentationOptions
}

// ErrorMsg carries a fatal calculation error.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// CalculationCompleteMsg signals that the orchestration pipeline finished.
// Generation guards against stale messages after a restart.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the session context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives the periodic refresh of the elapsed-time display.
type TickMsg time.Time
