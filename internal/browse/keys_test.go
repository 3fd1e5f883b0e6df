package browse

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

// collectKeys flattens the key names of enabled bindings.
func collectKeys(bindings []key.Binding) []string {
	var keys []string
	for _, b := range bindings {
		if b.Enabled() {
			keys = append(keys, b.Keys()...)
		}
	}
	return keys
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func TestHelpBindings_BrowseMode(t *testing.T) {
	keys := collectKeys(HelpBindings(ModeBrowse).ShortHelp())

	for _, want := range []string{"f", "l", "/", "a", "d", "q"} {
		if !containsKey(keys, want) {
			t.Errorf("browse help should contain %q, got %v", want, keys)
		}
	}
}

func TestHelpBindings_SearchMode(t *testing.T) {
	keys := collectKeys(HelpBindings(ModeSearch).ShortHelp())

	if containsKey(keys, "q") {
		t.Error("search help should not offer q, it is typed into the query")
	}
	if containsKey(keys, "tab") {
		t.Error("search help should not offer tab")
	}
	if !containsKey(keys, "esc") || !containsKey(keys, "enter") {
		t.Errorf("search help should offer enter and esc, got %v", keys)
	}
}

func TestHelpBindings_AddMode(t *testing.T) {
	keys := collectKeys(HelpBindings(ModeAdd).ShortHelp())

	for _, want := range []string{"tab", "enter", "esc"} {
		if !containsKey(keys, want) {
			t.Errorf("add help should contain %q, got %v", want, keys)
		}
	}
}

func TestHelpBindings_ConfirmMode(t *testing.T) {
	keys := collectKeys(HelpBindings(ModeConfirm).ShortHelp())

	if !containsKey(keys, "y") || !containsKey(keys, "n") {
		t.Errorf("confirm help should offer y and n, got %v", keys)
	}
}

func TestKeyMaps_FullHelpCoversShortHelp(t *testing.T) {
	for _, mode := range []Mode{ModeBrowse, ModeSearch, ModeAdd, ModeConfirm} {
		km := HelpBindings(mode)
		var full []key.Binding
		for _, group := range km.FullHelp() {
			full = append(full, group...)
		}
		fullKeys := collectKeys(full)
		for _, k := range collectKeys(km.ShortHelp()) {
			if !containsKey(fullKeys, k) {
				t.Errorf("mode %d: short help key %q missing from full help", mode, k)
			}
		}
	}
}
