// Package batch runs YAML scripts of address book operations and prints
// each step's result as plain text.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/listing"
)

// Sort keys accepted by a sort step.
const (
	SortFirst = "first"
	SortLast  = "last"
)

// ErrInvalidStep indicates a step that sets no operation, more than one,
// or an unknown sort key.
var ErrInvalidStep = errors.New("batch: invalid step")

// Contact is the YAML shape of an entry inside a script.
type Contact struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	PhoneNumber string `yaml:"phone_number"`
}

// Entry converts c to an address book entry.
func (c Contact) Entry() addressbook.Entry {
	return addressbook.Entry{FirstName: c.FirstName, LastName: c.LastName, PhoneNumber: c.PhoneNumber}
}

// Step is a single operation. Exactly one field must be set.
type Step struct {
	Add    *Contact `yaml:"add"`
	Remove *Contact `yaml:"remove"`
	Sort   *string  `yaml:"sort"` // "first" | "last"
	Find   *string  `yaml:"find"`
	List   bool     `yaml:"list"`
}

// Op names the operation a step performs.
func (s Step) Op() string {
	switch {
	case s.Add != nil:
		return "add"
	case s.Remove != nil:
		return "remove"
	case s.Sort != nil:
		return "sort"
	case s.Find != nil:
		return "find"
	case s.List:
		return "list"
	}
	return ""
}

// validate reports whether exactly one operation is set and its argument is usable.
func (s Step) validate() error {
	n := 0
	for _, set := range []bool{s.Add != nil, s.Remove != nil, s.Sort != nil, s.Find != nil, s.List} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("%w: want exactly one operation, got %d", ErrInvalidStep, n)
	}
	if s.Sort != nil && *s.Sort != SortFirst && *s.Sort != SortLast {
		return fmt.Errorf("%w: sort must be %q or %q, got %q", ErrInvalidStep, SortFirst, SortLast, *s.Sort)
	}
	return nil
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(r io.Reader) (Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Script{}, fmt.Errorf("batch: reading script: %w", err)
	}

	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, nil
		}
		return Script{}, fmt.Errorf("batch: parsing script: %w", err)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Runner executes scripts against a book.
type Runner struct {
	w      io.Writer
	logger *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a Runner that prints results to w.
func NewRunner(w io.Writer, opts ...Option) *Runner {
	r := &Runner{w: w, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the steps of s in order against b. It stops at the first
// write failure or when ctx is cancelled between steps.
func (r *Runner) Run(ctx context.Context, b *addressbook.Book, s Script) error {
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("batch: step %d: %w", i+1, err)
		}
		r.logger.Debug("running step", zap.Int("step", i+1), zap.String("op", step.Op()), zap.Int("entries", b.Len()))
		if err := r.runStep(b, step); err != nil {
			return fmt.Errorf("batch: step %d (%s): %w", i+1, step.Op(), err)
		}
	}
	r.logger.Info("script complete", zap.Int("steps", len(s.Steps)), zap.Int("entries", b.Len()))
	return nil
}

func (r *Runner) runStep(b *addressbook.Book, step Step) error {
	switch {
	case step.Add != nil:
		e := step.Add.Entry()
		b.Add(e)
		return r.printf("added %s\n", listing.FullName(e))

	case step.Remove != nil:
		n := b.Remove(step.Remove.Entry())
		if n == 0 {
			r.logger.Warn("remove matched nothing", zap.String("first_name", step.Remove.FirstName))
		}
		return r.printf("removed %d %s named %q\n", n, plural(n, "entry", "entries"), step.Remove.FirstName)

	case step.Sort != nil:
		var sorted []addressbook.Entry
		if *step.Sort == SortLast {
			sorted = b.SortedByLastName()
		} else {
			sorted = b.SortedByFirstName()
		}
		if err := r.printf("sorted by %s name\n", *step.Sort); err != nil {
			return err
		}
		return listing.Write(r.w, sorted)

	case step.Find != nil:
		matches := b.Find(*step.Find)
		if err := r.printf("find %q: %d %s\n", *step.Find, len(matches), plural(len(matches), "match", "matches")); err != nil {
			return err
		}
		return listing.Write(r.w, matches)

	case step.List:
		return listing.Write(r.w, b.Entries())
	}
	return ErrInvalidStep
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.w, format, args...)
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
