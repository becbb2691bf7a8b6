// Package tui implements the interactive dashboard launched with --tui.
// It is a bubbletea program that runs the same orchestration pipeline as
// the CLI mode and renders live per-backend progress, the comparison
// summary, and the final result.
package tui
