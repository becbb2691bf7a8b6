package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/polyint/internal/ui"
)

// styles holds the lipgloss styles for the dashboard, built from the
// active ui theme.
type dashboardStyles struct {
	header   lipgloss.Style
	panel    lipgloss.Style
	title    lipgloss.Style
	backend  lipgloss.Style
	value    lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	muted    lipgloss.Style
	footer   lipgloss.Style
	barFill  lipgloss.Style
	barEmpty lipgloss.Style
}

var styles dashboardStyles

// initTUIStyles rebuilds the styles from the current ui theme. Called by
// Run after app.Run has initialized the theme.
func initTUIStyles() {
	theme := ui.GetCurrentTUITheme()
	styles = dashboardStyles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		backend:  lipgloss.NewStyle().Foreground(theme.Accent),
		value:    lipgloss.NewStyle().Foreground(theme.Text),
		success:  lipgloss.NewStyle().Foreground(theme.Success),
		failure:  lipgloss.NewStyle().Foreground(theme.Error),
		muted:    lipgloss.NewStyle().Foreground(theme.Dim),
		footer:   lipgloss.NewStyle().Foreground(theme.Dim).Padding(0, 1),
		barFill:  lipgloss.NewStyle().Foreground(theme.Success),
		barEmpty: lipgloss.NewStyle().Foreground(theme.Dim),
	}
}
