package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// logger writes diagnostics to stderr, prefixed with the program name
type logger struct {
	out     io.Writer
	verbose bool

	prefix *color.Color
	warn   *color.Color
	err    *color.Color
}

func newLogger(out io.Writer, useColors, verbose bool) *logger {
	l := &logger{
		out:     out,
		verbose: verbose,
		prefix:  color.New(color.Faint),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{l.prefix, l.warn, l.err} {
		if useColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return l
}

// Debugf prints a progress message when verbose output is enabled
func (l *logger) Debugf(format string, args ...any) {
	if !l.verbose {
		return
	}
	_, _ = l.prefix.Fprintf(l.out, "%s: %s\n", programName, fmt.Sprintf(format, args...))
}

// Warnf prints a non-fatal problem
func (l *logger) Warnf(format string, args ...any) {
	_, _ = l.warn.Fprintf(l.out, "%s: warning: %s\n", programName, fmt.Sprintf(format, args...))
}

// Errorf prints a fatal problem
func (l *logger) Errorf(format string, args ...any) {
	_, _ = l.err.Fprintf(l.out, "%s:", programName)
	_, _ = fmt.Fprintf(l.out, " %s\n", fmt.Sprintf(format, args...))
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColors decides whether output written to w should be colored
func useColors(noColor bool, w io.Writer) bool {
	return !noColor && isTerminal(w)
}
