package browse

import (
	"fmt"
	"strings"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/listing"
)

// confirmState holds the removal being confirmed. Removal matches on first
// name only, so matches lists every entry that will go, target included.
type confirmState struct {
	target  addressbook.Entry
	matches []addressbook.Entry
}

// newConfirmState collects every entry in all sharing target's first name.
func newConfirmState(target addressbook.Entry, all []addressbook.Entry) confirmState {
	cs := confirmState{target: target}
	for _, e := range all {
		if e.FirstName == target.FirstName {
			cs.matches = append(cs.matches, e)
		}
	}
	return cs
}

// View renders the confirmation prompt.
func (cs confirmState) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Remove %s?\n", listing.FullName(cs.target))
	if len(cs.matches) > 1 {
		b.WriteString("\n")
		b.WriteString(warnText.Render(fmt.Sprintf("This removes all %d contacts named %q:", len(cs.matches), cs.target.FirstName)))
		for _, e := range cs.matches {
			fmt.Fprintf(&b, "\n  • %s", listing.FullName(e))
		}
	}
	b.WriteString("\n\n  [y] Remove   [n] Cancel")
	return b.String()
}
