package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/batch"
	"github.com/smileynet/addressbook/internal/browse"
	"github.com/smileynet/addressbook/internal/config"
	"github.com/smileynet/addressbook/internal/listing"
	"github.com/smileynet/addressbook/internal/logging"
	"github.com/smileynet/addressbook/internal/seed"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Seed    string `help:"Contacts to load: sample, none, or a YAML file path." placeholder:"SRC"`
	Config  string `help:"Extra config file, applied after the user and project layers." type:"path"`
	Verbose bool   `help:"Log diagnostics at debug level to stderr." short:"v"`
}

// CLI is the top-level command structure for addressbook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	List    ListCmd          `cmd:"" help:"List all contacts."`
	Find    FindCmd          `cmd:"" help:"Find contacts by first or last name prefix."`
	Run     RunCmd           `cmd:"" help:"Run a YAML script of address book operations."`
	Browse  BrowseCmd        `cmd:"" help:"Open the interactive contact browser."`
}

// errScript marks failures inside a script so they map to their own exit code.
var errScript = errors.New("script failed")

// session is the per-invocation state built from config and flags.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	book   *addressbook.Book
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/addressbook/config.yaml"),
		".addressbook/config.yaml",
	}
	if extra != "" {
		paths = append(paths, extra)
	}
	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// open builds config, logger, and the seeded book for a command.
func (g *Globals) open() (*session, error) {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Seed != "" {
		cfg.Contacts.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging.Level, g.Verbose)
	if err != nil {
		return nil, err
	}

	entries, err := seed.Resolve(cfg.Contacts.Seed)
	if err != nil {
		return nil, err
	}
	book := seed.Fill(addressbook.New(), entries)
	logger.Debug("loaded contacts", zap.String("seed", cfg.Contacts.Seed), zap.Int("entries", book.Len()))

	return &session{cfg: cfg, logger: logger, book: book}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// applySort reorders book in place for a config sort value.
func applySort(book *addressbook.Book, order string) []addressbook.Entry {
	switch order {
	case config.SortFirst:
		return book.SortedByFirstName()
	case config.SortLast:
		return book.SortedByLastName()
	default:
		return book.Entries()
	}
}

// --- list ---

// ListCmd prints every contact.
type ListCmd struct {
	Sort string `help:"Order: insertion, first, or last. Defaults to display.sort." placeholder:"ORDER"`
}

// Run executes the list command.
func (l *ListCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer s.close()
	return l.run(os.Stdout, s)
}

// run prints the book in the requested order, enabling testable wiring.
func (l *ListCmd) run(w io.Writer, s *session) error {
	order := l.Sort
	switch order {
	case "":
		order = s.cfg.Display.Sort
	case config.SortInsertion, config.SortFirst, config.SortLast:
	default:
		return fmt.Errorf("list: --sort must be insertion, first or last, got %q", order)
	}
	if err := listing.Write(w, applySort(s.book, order)); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

// --- find ---

// FindCmd prints contacts matching a prefix.
type FindCmd struct {
	Query string `arg:"" optional:"" help:"Case-insensitive prefix of a first or last name. Empty matches all."`
}

// Run executes the find command.
func (f *FindCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}
	defer s.close()
	return f.run(os.Stdout, s)
}

// run prints matches in display.sort order, enabling testable wiring.
func (f *FindCmd) run(w io.Writer, s *session) error {
	applySort(s.book, s.cfg.Display.Sort)
	matches := s.book.Find(f.Query)
	s.logger.Debug("find", zap.String("query", f.Query), zap.Int("matches", len(matches)))
	if len(matches) == 0 {
		_, _ = fmt.Fprintf(w, "No contacts match %q\n", f.Query)
		return nil
	}
	if err := listing.Write(w, matches); err != nil {
		return fmt.Errorf("find: %w", err)
	}
	return nil
}

// --- run ---

// RunCmd executes a script of operations against the seeded book.
type RunCmd struct {
	Script string `arg:"" help:"Path to the YAML script." type:"existingfile"`
}

// Run executes the run command.
func (r *RunCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return r.run(ctx, os.Stdout, s)
}

// run parses and executes the script, enabling testable wiring.
func (r *RunCmd) run(ctx context.Context, w io.Writer, s *session) error {
	f, err := os.Open(r.Script)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer f.Close()

	script, err := batch.Parse(f)
	if err != nil {
		return fmt.Errorf("run: %s: %w: %w", r.Script, errScript, err)
	}

	applySort(s.book, s.cfg.Display.Sort)
	runner := batch.NewRunner(w, batch.WithLogger(s.logger))
	if err := runner.Run(ctx, s.book, script); err != nil {
		return fmt.Errorf("run: %w: %w", errScript, err)
	}
	return nil
}

// --- browse ---

// BrowseCmd opens the interactive contact browser.
type BrowseCmd struct{}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the model and launches the browser TUI.
func (b *BrowseCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer s.close()

	if s.cfg.Display.NoTUI {
		return errors.New("browse: disabled by display.no_tui")
	}

	m := browse.NewModel(s.book, browse.WithSort(sortOrder(s.cfg.Display.Sort)))
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return b.run(isTerminal(os.Stdout), prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return errors.New("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// sortOrder maps a config sort value to the browser's sort order.
func sortOrder(order string) browse.SortOrder {
	switch order {
	case config.SortFirst:
		return browse.SortFirst
	case config.SortLast:
		return browse.SortLast
	default:
		return browse.SortInsertion
	}
}

const (
	exitSuccess = 0
	exitScript  = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errScript) {
		return exitScript
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("addressbook"),
		kong.Description("An in-memory contact list."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
