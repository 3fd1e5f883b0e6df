package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/addressbook/internal/addressbook"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

func samplePeople() []addressbook.Entry {
	return []addressbook.Entry{
		{FirstName: "Sally", LastName: "Graham", PhoneNumber: "+44 7700 900297"},
		{FirstName: "Phoenix", LastName: "Bond", PhoneNumber: "0161 496 0311"},
		{FirstName: "Aaran", LastName: "Parks"},
		{FirstName: "Jayden", LastName: "Riddle", PhoneNumber: "+44 131 496 0609"},
		{FirstName: "Adriana", LastName: "Paul", PhoneNumber: "(739) 391-4868"},
		{FirstName: "Hamza", LastName: "Bo", PhoneNumber: "+44 131 496 0571"},
	}
}

func sampleBook() *addressbook.Book {
	b := addressbook.New()
	for _, e := range samplePeople() {
		b.Add(e)
	}
	return b
}

// keyMsg builds a KeyMsg from a key name or literal text.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to m in order and returns the final model and last command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

// deliver runs cmd and feeds its message back into m.
func deliver(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Msg) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg := cmd()
	updated, _ := m.Update(msg)
	return updated.(Model), msg
}

func newSizedModel(book *addressbook.Book, w, h int, opts ...ModelOption) Model {
	m := NewModel(book, opts...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func firstNames(entries []addressbook.Entry) string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.FirstName
	}
	return strings.Join(names, ",")
}
