// Package browse implements a two-pane TUI for browsing, searching, sorting,
// adding, and removing address book entries. The Model owns the book, so
// every operation runs on the Bubble Tea update goroutine.
package browse

import "github.com/smileynet/addressbook/internal/addressbook"

// Mode represents the current view mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Moving through the contact list.
	ModeSearch              // Typing a prefix query.
	ModeAdd                 // Filling in the add form.
	ModeConfirm             // Confirming a removal.
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Contact list has focus.
	PaneRight              // Detail pane has focus.
)

// SortOrder records the last sort applied to the book.
type SortOrder int

const (
	SortInsertion SortOrder = iota
	SortFirst
	SortLast
)

func (s SortOrder) String() string {
	switch s {
	case SortFirst:
		return "first name"
	case SortLast:
		return "last name"
	default:
		return "insertion"
	}
}

// EntryAddedMsg reports a contact added from the form.
type EntryAddedMsg struct {
	Entry addressbook.Entry
}

// EntriesRemovedMsg reports a confirmed removal.
type EntriesRemovedMsg struct {
	FirstName string
	Count     int
}
