// Package orchestration coordinates the concurrent execution of integration
// backends and the consistency analysis of their results. It depends on the
// integral package for the backends and exposes small interfaces
// (ProgressReporter, ResultPresenter, ErrorHandler) so the presentation
// layers — CLI and TUI — can plug in without the orchestration logic knowing
// about either.
package orchestration
