package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes command output to out and formatted errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	yellow *color.Color
	red    *color.Color
}

// New creates a printer. Colors are disabled when useColor is false or the
// NO_COLOR environment variable is set.
func New(out, errOut io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
	}

	if !useColor || os.Getenv("NO_COLOR") != "" {
		for _, c := range []*color.Color{p.yellow, p.red} {
			c.DisableColor()
		}
	} else {
		// Force color output even when not connected to TTY
		for _, c := range []*color.Color{p.yellow, p.red} {
			c.EnableColor()
		}
	}
	return p
}

// Out returns the writer used for regular output.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Warning prints a warning message in yellow
func (p *Printer) Warning(format string, a ...any) {
	p.yellow.Fprintf(p.out, format, a...)
}

// Error prints a formatted error with title, explanation, and suggestions
// to the error stream and returns a simple error for Cobra
func (p *Printer) Error(title string, explanation string, suggestions []string) error {
	return p.ErrorWithContext(title, explanation, nil, suggestions)
}

// ErrorWithContext prints a formatted error with context details to the
// error stream and returns a simple error for Cobra
func (p *Printer) ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	p.red.Fprintf(p.errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(p.errOut, "%s\n", explanation)
	}

	if len(context) > 0 {
		fmt.Fprintf(p.errOut, "\n")
		for key, value := range context {
			fmt.Fprintf(p.errOut, "  %s: %s\n", key, value)
		}
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(p.errOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.errOut, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Won't be printed again due to SilenceErrors
	return fmt.Errorf("%s", title)
}

