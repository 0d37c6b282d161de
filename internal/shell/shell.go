// Package shell runs the CineReviews command interpreter.
//
// Commands are read one at a time from a single input stream. A command
// word may be followed by arguments on the same line and by further input
// lines, depending on the command. Output goes to one writer, in text form
// or, for the friends and avoiders queries, as JSON lines.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/cinereviews/internal/catalog"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

const unknownCommand = "Unknown command. Type help to see available commands."

type handler func(*Interpreter, *input) error

type command struct {
	name        string
	description string
	run         handler
}

// commands in the order help lists them. Filled in init since help reads it.
var commands []command

func init() {
	commands = []command{
		{"register", "registers a user in the system", (*Interpreter).register},
		{"users", "lists all registered users", (*Interpreter).users},
		{"movie", "uploads a new movie", (*Interpreter).movie},
		{"series", "uploads a new series", (*Interpreter).series},
		{"shows", "lists all shows", (*Interpreter).shows},
		{"artist", "adds bio information about an artist", (*Interpreter).artist},
		{"credits", "lists the bio and credits of an artist", (*Interpreter).credits},
		{"review", "adds a review to a show", (*Interpreter).review},
		{"reviews", "lists the reviews of a show", (*Interpreter).reviews},
		{"genre", "lists shows of given genres", (*Interpreter).genre},
		{"released", "lists shows released in a given year", (*Interpreter).released},
		{"avoiders", "lists artists that have no common projects", (*Interpreter).avoiders},
		{"friends", "lists artists that have more projects together", (*Interpreter).friends},
		{"help", "shows the available commands", (*Interpreter).help},
		{"exit", "terminates the execution of the program", (*Interpreter).exit},
	}
}

// errExit stops the command loop.
var errExit = errors.New("exit")

// Interpreter executes commands against a catalog. It is not safe for
// concurrent use.
type Interpreter struct {
	catalog *catalog.Catalog
	out     io.Writer
	format  string
	logger  zerolog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithFormat selects the output format for query results.
func WithFormat(format string) Option {
	return func(i *Interpreter) {
		i.format = format
	}
}

// WithLogger sets the interpreter logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger.With().Str("component", "shell").Logger()
	}
}

// New creates an interpreter writing to out.
func New(cat *catalog.Catalog, out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		catalog: cat,
		out:     out,
		format:  FormatText,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run executes commands from r until exit or end of input. A command whose
// input cannot be parsed aborts the run with an error.
func (i *Interpreter) Run(r io.Reader) error {
	in := newInput(r)
	for {
		word, err := in.next()
		if errors.Is(err, io.EOF) {
			i.logger.Debug().Msg("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		cmd, ok := lookup(word)
		if !ok {
			i.println(unknownCommand)
			continue
		}

		i.logger.Debug().Str("command", cmd.name).Msg("executing command")
		err = cmd.run(i, in)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.name, err)
		}
	}
}

func lookup(word string) (command, bool) {
	word = strings.ToLower(word)
	for _, c := range commands {
		if c.name == word {
			return c, true
		}
	}
	return command{}, false
}

func (i *Interpreter) println(s string) {
	fmt.Fprintln(i.out, s)
}

func (i *Interpreter) printf(format string, args ...any) {
	fmt.Fprintf(i.out, format, args...)
}

func (i *Interpreter) help(*input) error {
	for _, c := range commands {
		i.printf("%s - %s\n", c.name, c.description)
	}
	return nil
}

func (i *Interpreter) exit(*input) error {
	i.println("Bye!")
	return errExit
}
