package browse

import (
	"fmt"
	"strings"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/listing"
)

// CursorMarker is the prefix shown on the selected row.
const CursorMarker = "▸ "

// listState holds the visible entries and the cursor for the left pane.
type listState struct {
	entries []addressbook.Entry
	cursor  int
}

// set replaces the visible entries, keeping the cursor in range.
func (ls listState) set(entries []addressbook.Entry) listState {
	ls.entries = entries
	if ls.cursor >= len(entries) {
		ls.cursor = len(entries) - 1
	}
	if ls.cursor < 0 {
		ls.cursor = 0
	}
	return ls
}

// up moves the cursor up, wrapping to the bottom.
func (ls listState) up() listState {
	if len(ls.entries) > 0 {
		ls.cursor--
		if ls.cursor < 0 {
			ls.cursor = len(ls.entries) - 1
		}
	}
	return ls
}

// down moves the cursor down, wrapping to the top.
func (ls listState) down() listState {
	if len(ls.entries) > 0 {
		ls.cursor++
		if ls.cursor >= len(ls.entries) {
			ls.cursor = 0
		}
	}
	return ls
}

// selected returns the entry under the cursor, or false if the list is empty.
func (ls listState) selected() (addressbook.Entry, bool) {
	if ls.cursor < 0 || ls.cursor >= len(ls.entries) {
		return addressbook.Entry{}, false
	}
	return ls.entries[ls.cursor], true
}

// View renders the list, scrolled so the cursor stays within height rows.
func (ls listState) View(height int, query string, total int) string {
	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "Filter %q: %d of %d\n", query, len(ls.entries), total)
		height--
	}

	if len(ls.entries) == 0 {
		if query != "" {
			b.WriteString(mutedText.Render("No matches — esc clears the filter"))
		} else {
			b.WriteString(mutedText.Render("No contacts — press a to add one"))
		}
		return b.String()
	}

	start := 0
	if height > 0 && ls.cursor >= height {
		start = ls.cursor - height + 1
	}
	for i := start; i < len(ls.entries); i++ {
		if height > 0 && i-start >= height {
			break
		}
		if i > start {
			b.WriteByte('\n')
		}
		if i == ls.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(listing.FullName(ls.entries[i]))
	}
	return b.String()
}

// viewDetail renders the detail pane for e.
func viewDetail(e addressbook.Entry) string {
	phone := e.PhoneNumber
	if phone == "" {
		phone = mutedText.Render("(none)")
	}
	return labelText.Render("First name") + "\n  " + e.FirstName + "\n\n" +
		labelText.Render("Last name") + "\n  " + e.LastName + "\n\n" +
		labelText.Render("Phone") + "\n  " + phone
}
