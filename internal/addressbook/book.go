// Package addressbook implements an in-memory contact list with
// first-name removal, in-place sorting, and case-insensitive prefix search.
package addressbook

import (
	"slices"
	"strings"
)

// Entry is a single contact record. PhoneNumber is free-form.
type Entry struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Book holds entries in insertion order. The zero value is an empty book.
// A Book is not safe for concurrent use; callers sharing one across
// goroutines must guard every method with a single lock.
type Book struct {
	entries []Entry
}

// New returns an empty Book.
func New() *Book {
	return &Book{}
}

// Add appends e to the end of the book.
func (b *Book) Add(e Entry) {
	b.entries = append(b.entries, e)
}

// Remove deletes every entry whose FirstName equals e.FirstName exactly.
// LastName and PhoneNumber of e are ignored. The order of the remaining
// entries is preserved. It returns the number of entries removed.
func (b *Book) Remove(e Entry) int {
	before := len(b.entries)
	b.entries = slices.DeleteFunc(b.entries, func(p Entry) bool {
		return p.FirstName == e.FirstName
	})
	return before - len(b.entries)
}

// SortedByFirstName stably sorts the book by FirstName and returns a copy
// of the entries in the new order. The stored order stays sorted afterwards.
func (b *Book) SortedByFirstName() []Entry {
	slices.SortStableFunc(b.entries, func(x, y Entry) int {
		return strings.Compare(x.FirstName, y.FirstName)
	})
	return b.Entries()
}

// SortedByLastName stably sorts the book by LastName and returns a copy
// of the entries in the new order. The stored order stays sorted afterwards.
func (b *Book) SortedByLastName() []Entry {
	slices.SortStableFunc(b.entries, func(x, y Entry) int {
		return strings.Compare(x.LastName, y.LastName)
	})
	return b.Entries()
}

// Find returns the entries whose first or last name starts with query,
// ignoring ASCII case, in the book's current order. An empty query matches
// every entry. The result is never nil.
func (b *Book) Find(query string) []Entry {
	q := lowerASCII(query)
	matches := []Entry{}
	for _, e := range b.entries {
		if strings.HasPrefix(lowerASCII(e.FirstName), q) || strings.HasPrefix(lowerASCII(e.LastName), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Entries returns a copy of the entries in their current order.
func (b *Book) Entries() []Entry {
	return append([]Entry{}, b.entries...)
}

// Len returns the number of stored entries.
func (b *Book) Len() int {
	return len(b.entries)
}

// lowerASCII maps A-Z to a-z and leaves every other byte untouched.
func lowerASCII(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return 'A' <= r && r <= 'Z' })
	if i < 0 {
		return s
	}
	buf := []byte(s)
	for ; i < len(buf); i++ {
		if c := buf[i]; 'A' <= c && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
	return string(buf)
}
