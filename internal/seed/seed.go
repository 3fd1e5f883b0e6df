// Package seed imports contacts from YAML documents into an address book.
// Import is read-only: nothing is ever written back.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	root "github.com/smileynet/addressbook"
	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/config"
)

// LocalDir is checked for seed files before the embedded set.
const LocalDir = ".addressbook/seeds"

// sampleFile is the file name of the sample seed inside the seeds filesystem.
const sampleFile = "sample.yaml"

// ErrEmptySource indicates Resolve was called without a seed source.
var ErrEmptySource = errors.New("seed: empty source")

// document is the on-disk shape of a seed file.
type document struct {
	Contacts []contact `yaml:"contacts"`
}

type contact struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	PhoneNumber string `yaml:"phone_number"`
}

// Decode parses a seed document. Unknown fields are rejected.
// An empty or comment-only document yields no entries.
func Decode(r io.Reader) ([]addressbook.Entry, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("seed: parsing: %w", err)
	}

	entries := make([]addressbook.Entry, len(doc.Contacts))
	for i, c := range doc.Contacts {
		entries[i] = addressbook.Entry{
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			PhoneNumber: c.PhoneNumber,
		}
	}
	return entries, nil
}

// Load reads and decodes the named seed file from fsys.
func Load(fsys fs.FS, name string) ([]addressbook.Entry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", name, err)
	}
	entries, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

// Resolve loads entries for a config source: "sample" reads the sample set
// (LocalDir first, then embedded), "none" yields nothing, and anything else
// is treated as a path to a seed file.
func Resolve(source string) ([]addressbook.Entry, error) {
	switch source {
	case "":
		return nil, ErrEmptySource
	case config.SeedNone:
		return nil, nil
	case config.SeedSample:
		return Load(root.OverlayFS(LocalDir, root.Seeds), sampleFile)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("seed: opening %s: %w", source, err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return entries, nil
}

// Fill adds entries to b in order and returns b.
func Fill(b *addressbook.Book, entries []addressbook.Entry) *addressbook.Book {
	for _, e := range entries {
		b.Add(e)
	}
	return b
}
