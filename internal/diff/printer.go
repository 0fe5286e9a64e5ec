package diff

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Printer prints environment differences with colors
type Printer struct {
	out       io.Writer
	useColors bool
	namesOnly bool

	green  *color.Color
	red    *color.Color
	yellow *color.Color
}

// NewPrinter creates a new diff printer
func NewPrinter(out io.Writer, useColors bool) *Printer {
	p := &Printer{
		out:       out,
		useColors: useColors,
		green:     color.New(color.FgGreen),
		red:       color.New(color.FgRed),
		yellow:    color.New(color.FgYellow),
	}
	if useColors {
		p.green.EnableColor()
		p.red.EnableColor()
		p.yellow.EnableColor()
	}
	return p
}

// SetNamesOnly hides variable values, printing only names
func (p *Printer) SetNamesOnly(namesOnly bool) {
	p.namesOnly = namesOnly
}

// PrintChanges prints each change followed by a summary line
func (p *Printer) PrintChanges(changes []Change) {
	if len(changes) == 0 {
		p.printf(p.green, "No differences. The inherited environment is already clean.\n")
		return
	}

	for _, c := range changes {
		switch c.Kind {
		case Added:
			p.printEntry("+", p.green, c.Name, c.New)
		case Removed:
			p.printEntry("-", p.red, c.Name, c.Old)
		case Changed:
			p.printChanged(c)
		}
	}

	s := Summarize(changes)
	_, _ = fmt.Fprintf(p.out, "\nClean environment: %d added, %d changed, %d removed.\n",
		s.Added, s.Changed, s.Removed)
}

func (p *Printer) printEntry(symbol string, c *color.Color, name, value string) {
	if p.namesOnly {
		p.printf(c, "%s %s\n", symbol, name)
		return
	}
	p.printf(c, "%s %s=%s\n", symbol, name, value)
}

func (p *Printer) printChanged(c Change) {
	if p.namesOnly {
		p.printf(p.yellow, "~ %s\n", c.Name)
		return
	}

	sep := string(os.PathListSeparator)
	if !strings.Contains(c.Old, sep) && !strings.Contains(c.New, sep) {
		p.printf(p.yellow, "~ %s: %q => %q\n", c.Name, c.Old, c.New)
		return
	}

	// List values such as PATH are compared element by element
	p.printf(p.yellow, "~ %s: (changed)\n", c.Name)
	p.printListDiff(c.Old, c.New, sep)
}

// printListDiff prints a line-oriented diff of two separator-joined lists
func (p *Printer) printListDiff(old, new, sep string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(toLines(old, sep), toLines(new, sep))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		for _, elem := range strings.SplitAfter(d.Text, "\n") {
			elem = strings.TrimSuffix(elem, "\n")
			if elem == "" {
				continue
			}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				_, _ = fmt.Fprintf(p.out, "      %s\n", elem)
			case diffmatchpatch.DiffDelete:
				p.printf(p.red, "    - %s\n", elem)
			case diffmatchpatch.DiffInsert:
				p.printf(p.green, "    + %s\n", elem)
			}
		}
	}
}

func (p *Printer) printf(c *color.Color, format string, args ...any) {
	if p.useColors {
		_, _ = c.Fprintf(p.out, format, args...)
	} else {
		_, _ = fmt.Fprintf(p.out, format, args...)
	}
}

func toLines(list, sep string) string {
	if list == "" {
		return ""
	}
	return strings.Join(strings.Split(list, sep), "\n") + "\n"
}
