package tui

import "testing"

// TestDefaultKeyMap wires the expected keys.
func TestDefaultKeyMap(t *testing.T) {
	k := DefaultKeyMap()

	if got := k.Quit.Keys(); len(got) == 0 || got[0] != "q" {
		t.Errorf("Quit keys = %v, want q first", got)
	}
	if got := k.Reset.Keys(); len(got) != 1 || got[0] != "r" {
		t.Errorf("Reset keys = %v, want [r]", got)
	}
}

// TestKeyMapHelp exposes bindings to the bubbles help component.
func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()

	if short := k.ShortHelp(); len(short) != 3 {
		t.Errorf("ShortHelp returned %d bindings, want 3", len(short))
	}
	full := k.FullHelp()
	if len(full) != 1 || len(full[0]) != 3 {
		t.Errorf("FullHelp layout = %v, want one group of 3", full)
	}
}
