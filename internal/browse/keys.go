package browse

import "github.com/charmbracelet/bubbles/key"

// browseKeys holds key bindings for browse mode.
type browseKeys struct {
	Up        key.Binding
	Down      key.Binding
	SortFirst key.Binding
	SortLast  key.Binding
	Search    key.Binding
	Add       key.Binding
	Remove    key.Binding
	Tab       key.Binding
	Quit      key.Binding
}

// ShortHelp returns the browse mode bindings for the help bar.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SortFirst, k.SortLast, k.Search, k.Add, k.Remove, k.Quit}
}

// FullHelp returns the browse mode bindings grouped for expanded help.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.SortFirst, k.SortLast, k.Search},
		{k.Add, k.Remove, k.Quit},
	}
}

// inputKeys holds key bindings shared by search and add modes.
type inputKeys struct {
	Next   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns the input mode bindings for the help bar.
func (k inputKeys) ShortHelp() []key.Binding {
	if !k.Next.Enabled() {
		return []key.Binding{k.Submit, k.Cancel}
	}
	return []key.Binding{k.Next, k.Submit, k.Cancel}
}

// FullHelp returns the input mode bindings grouped for expanded help.
func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// confirmKeys holds key bindings for the removal confirmation.
type confirmKeys struct {
	Yes key.Binding
	No  key.Binding
}

// ShortHelp returns the confirm mode bindings for the help bar.
func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// FullHelp returns the confirm mode bindings grouped for expanded help.
func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No}}
}

// BrowseKeyMap returns the key bindings for browse mode.
func BrowseKeyMap() browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		SortFirst: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "sort first"),
		),
		SortLast: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "sort last"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SearchKeyMap returns the key bindings for search mode.
func SearchKeyMap() inputKeys {
	return inputKeys{
		Next: key.NewBinding(key.WithDisabled()),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}

// AddKeyMap returns the key bindings for the add form.
func AddKeyMap() inputKeys {
	return inputKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ConfirmKeyMap returns the key bindings for the removal confirmation.
func ConfirmKeyMap() confirmKeys {
	return confirmKeys{
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "remove"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}
