package browse

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/listing"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the status line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the address book browser.
type Model struct {
	book    *addressbook.Book
	mode    Mode
	focus   Focus
	width   int
	height  int
	sort    SortOrder
	query   string
	search  textinput.Model
	list    listState
	form    formState
	confirm confirmState
	status  string
	keys    browseKeys
	help    help.Model
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithSort applies an initial sort to the book when the model is created.
func WithSort(s SortOrder) ModelOption {
	return func(m *Model) {
		m.sort = s
	}
}

// NewModel creates a Model in browse mode over book. A nil book starts empty.
func NewModel(book *addressbook.Book, opts ...ModelOption) Model {
	if book == nil {
		book = addressbook.New()
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "first or last name"
	search.CharLimit = 64

	m := Model{
		book:   book,
		mode:   ModeBrowse,
		focus:  PaneLeft,
		search: search,
		keys:   BrowseKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.applySort()
	m.refresh()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case EntryAddedMsg:
		m.status = "Added " + listing.FullName(msg.Entry)
		return m, nil

	case EntriesRemovedMsg:
		m.status = fmt.Sprintf("Removed %d %s named %q", msg.Count, pluralContacts(msg.Count), msg.FirstName)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeSearch:
			return m.handleSearchKey(msg)
		case ModeAdd:
			return m.handleAddKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}

	// Non-key messages such as cursor blinks go to the active input.
	var cmd tea.Cmd
	switch m.mode {
	case ModeSearch:
		m.search, cmd = m.search.Update(msg)
	case ModeAdd:
		m.form, cmd = m.form.update(msg)
	}
	return m, cmd
}

// handleBrowseKey processes keys while moving through the list.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}

	case key.Matches(msg, m.keys.Up):
		m.list = m.list.up()

	case key.Matches(msg, m.keys.Down):
		m.list = m.list.down()

	case key.Matches(msg, m.keys.SortFirst):
		m.sort = SortFirst
		m.applySort()
		m.refresh()
		m.status = "Sorted by " + m.sort.String()

	case key.Matches(msg, m.keys.SortLast):
		m.sort = SortLast
		m.applySort()
		m.refresh()
		m.status = "Sorted by " + m.sort.String()

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		var cmd tea.Cmd
		m.form, cmd = newFormState()
		return m, cmd

	case key.Matches(msg, m.keys.Remove):
		if e, ok := m.list.selected(); ok {
			m.mode = ModeConfirm
			m.confirm = newConfirmState(e, m.book.Entries())
		}
	}
	return m, nil
}

// handleSearchKey edits the query and refilters on every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.search.Blur()
		m.search.Reset()
		m.query = ""
		m.refresh()
		return m, nil

	case tea.KeyEnter:
		m.mode = ModeBrowse
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query {
		m.query = m.search.Value()
		m.list.cursor = 0
		m.refresh()
	}
	return m, cmd
}

// handleAddKey drives the add form.
func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeBrowse
		return m, nil

	case tea.KeyTab:
		m.form, cmd = m.form.cycle(1)
		return m, cmd

	case tea.KeyShiftTab:
		m.form, cmd = m.form.cycle(-1)
		return m, cmd

	case tea.KeyEnter:
		e := m.form.entry()
		if e.FirstName == "" && e.LastName == "" {
			m.form.err = "Enter a first or last name"
			return m, nil
		}
		m.book.Add(e)
		m.mode = ModeBrowse
		// Keep the list in the chosen order; the new entry lands in place.
		m.applySort()
		m.refresh()
		if i := slices.Index(m.list.entries, e); i >= 0 {
			m.list.cursor = i
		}
		return m, func() tea.Msg { return EntryAddedMsg{Entry: e} }
	}

	m.form.err = ""
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// handleConfirmKey removes on yes and returns to browse mode either way.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := ConfirmKeyMap()
	switch {
	case key.Matches(msg, km.Yes):
		target := m.confirm.target
		n := m.book.Remove(target)
		m.mode = ModeBrowse
		m.refresh()
		return m, func() tea.Msg { return EntriesRemovedMsg{FirstName: target.FirstName, Count: n} }

	case key.Matches(msg, km.No):
		m.mode = ModeBrowse
	}
	return m, nil
}

// applySort reorders the book in place for the current sort order.
func (m *Model) applySort() {
	switch m.sort {
	case SortFirst:
		m.book.SortedByFirstName()
	case SortLast:
		m.book.SortedByLastName()
	}
}

// refresh reloads the visible entries from the book through the query.
func (m *Model) refresh() {
	m.list = m.list.set(m.book.Find(m.query))
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line, and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - statusBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with status and help bars.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.viewLeft(contentHeight))
	rightPane := rightStyle.Render(m.viewRight())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	statusView := mutedText.Render(m.statusLine())
	helpView := m.help.View(HelpBindings(m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, panes, statusView, helpView)
}

// viewLeft renders the contact list, with the search input while searching.
func (m Model) viewLeft(height int) string {
	if m.mode == ModeSearch {
		return m.search.View() + "\n" + m.list.View(height-1, m.query, m.book.Len())
	}
	return m.list.View(height, m.query, m.book.Len())
}

// viewRight renders the right pane content based on mode.
func (m Model) viewRight() string {
	switch m.mode {
	case ModeAdd:
		return m.form.View()
	case ModeConfirm:
		return m.confirm.View()
	}
	e, ok := m.list.selected()
	if !ok {
		return mutedText.Render("No contact selected")
	}
	return viewDetail(e)
}

// statusLine combines the last action with the book size and sort order.
func (m Model) statusLine() string {
	order := "insertion order"
	if m.sort != SortInsertion {
		order = "sorted by " + m.sort.String()
	}
	line := fmt.Sprintf("%d %s · %s", m.book.Len(), pluralContacts(m.book.Len()), order)
	if m.status != "" {
		line = m.status + " · " + line
	}
	return line
}

func pluralContacts(n int) string {
	if n == 1 {
		return "contact"
	}
	return "contacts"
}
