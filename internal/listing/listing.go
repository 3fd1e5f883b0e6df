// Package listing renders address book entries as aligned plain text.
package listing

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/smileynet/addressbook/internal/addressbook"
)

// Write prints one aligned line per entry: first name, last name, phone.
// Empty phone numbers print as "-".
func Write(w io.Writer, entries []addressbook.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		phone := e.PhoneNumber
		if phone == "" {
			phone = "-"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", e.FirstName, e.LastName, phone); err != nil {
			return fmt.Errorf("listing: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("listing: %w", err)
	}
	return nil
}

// FullName joins first and last name, skipping an empty part.
func FullName(e addressbook.Entry) string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
