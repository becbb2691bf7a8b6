package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// restoreTheme resets the active theme after a test.
func restoreTheme(t *testing.T) {
	t.Helper()
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })
}

// TestSetTheme switches between the named palettes.
func TestSetTheme(t *testing.T) {
	restoreTheme(t)

	SetTheme("light")
	if GetCurrentTheme().Name != "light" {
		t.Errorf("theme = %q, want \"light\"", GetCurrentTheme().Name)
	}

	SetTheme("none")
	if GetCurrentTheme().Name != "none" {
		t.Errorf("theme = %q, want \"none\"", GetCurrentTheme().Name)
	}

	SetTheme("unknown")
	if GetCurrentTheme().Name != "dark" {
		t.Errorf("unknown names should default to dark, got %q", GetCurrentTheme().Name)
	}
}

// TestInitTheme honors the NO_COLOR convention.
func TestInitTheme(t *testing.T) {
	restoreTheme(t)

	t.Run("explicit no-color flag", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want \"none\"", GetCurrentTheme().Name)
		}
	})

	t.Run("NO_COLOR environment variable", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want \"none\"", GetCurrentTheme().Name)
		}
	})

	t.Run("colors enabled by default", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("theme = %q, want \"dark\"", GetCurrentTheme().Name)
		}
	})
}

// TestColorAccessors track the active theme.
func TestColorAccessors(t *testing.T) {
	restoreTheme(t)

	SetTheme("none")
	if ColorGreen() != "" || ColorRed() != "" || ColorReset() != "" {
		t.Error("the none theme should emit no escape codes")
	}

	SetTheme("dark")
	if ColorGreen() == "" || ColorUnderline() == "" {
		t.Error("the dark theme should emit escape codes")
	}
	if ColorGreen() != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want the dark success color", ColorGreen())
	}
}

// TestGetCurrentTUITheme mirrors the CLI palette selection.
func TestGetCurrentTUITheme(t *testing.T) {
	restoreTheme(t)

	SetTheme("none")
	if GetCurrentTUITheme().Success != (lipgloss.NoColor{}) {
		t.Error("none theme should map to the no-color TUI palette")
	}

	SetTheme("dark")
	if GetCurrentTUITheme().Success == (lipgloss.TerminalColor)(lipgloss.NoColor{}) {
		t.Error("dark theme should map to the colored TUI palette")
	}
}
