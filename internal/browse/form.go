package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/addressbook/internal/addressbook"
)

// Form field indices.
const (
	fieldFirst = iota
	fieldLast
	fieldPhone
	fieldCount
)

var fieldLabels = [fieldCount]string{"First name", "Last name", "Phone"}

// formState holds the add form's inputs and the focused field.
type formState struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// newFormState returns an empty form with the first field focused.
func newFormState() (formState, tea.Cmd) {
	var fs formState
	for i := range fs.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 64
		ti.Placeholder = fieldLabels[i]
		fs.inputs[i] = ti
	}
	cmd := fs.inputs[fieldFirst].Focus()
	return fs, cmd
}

// cycle moves focus forward (delta 1) or backward (delta -1), wrapping.
func (fs formState) cycle(delta int) (formState, tea.Cmd) {
	fs.inputs[fs.focus].Blur()
	fs.focus = (fs.focus + delta + fieldCount) % fieldCount
	cmd := fs.inputs[fs.focus].Focus()
	return fs, cmd
}

// update forwards msg to the focused input.
func (fs formState) update(msg tea.Msg) (formState, tea.Cmd) {
	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	return fs, cmd
}

// entry returns the form contents with surrounding whitespace trimmed.
func (fs formState) entry() addressbook.Entry {
	return addressbook.Entry{
		FirstName:   strings.TrimSpace(fs.inputs[fieldFirst].Value()),
		LastName:    strings.TrimSpace(fs.inputs[fieldLast].Value()),
		PhoneNumber: strings.TrimSpace(fs.inputs[fieldPhone].Value()),
	}
}

// View renders the form fields.
func (fs formState) View() string {
	var b strings.Builder
	b.WriteString("Add contact\n")
	for i, in := range fs.inputs {
		b.WriteString("\n")
		b.WriteString(labelText.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if fs.err != "" {
		b.WriteString("\n")
		b.WriteString(warnText.Render(fs.err))
	}
	return b.String()
}
