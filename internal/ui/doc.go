// Package ui provides terminal color themes shared by the CLI and TUI
// presentation layers. A theme is selected once at startup (respecting the
// NO_COLOR convention) and read through the Color* accessors.
package ui
