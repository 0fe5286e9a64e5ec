package diff

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestPrinter_PrintChanges(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintChanges([]Change{
		{Kind: Added, Name: "TEMP", New: "/tmp"},
		{Kind: Removed, Name: "SECRET", Old: "abc"},
		{Kind: Changed, Name: "LANG", Old: "C", New: "en_US.UTF-8"},
	})

	want := `+ TEMP=/tmp
- SECRET=abc
~ LANG: "C" => "en_US.UTF-8"

Clean environment: 1 added, 1 changed, 1 removed.
`
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrinter_ListDiff(t *testing.T) {
	sep := string(os.PathListSeparator)
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintChanges([]Change{{
		Kind: Changed,
		Name: "PATH",
		Old:  strings.Join([]string{"/opt/leak/bin", "/usr/bin", "/bin"}, sep),
		New:  strings.Join([]string{"/usr/bin", "/bin", "/usr/local/bin"}, sep),
	}})

	out := buf.String()
	for _, line := range []string{
		"~ PATH: (changed)\n",
		"    - /opt/leak/bin\n",
		"      /usr/bin\n",
		"      /bin\n",
		"    + /usr/local/bin\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestPrinter_NamesOnly(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.SetNamesOnly(true)

	p.PrintChanges([]Change{
		{Kind: Removed, Name: "SECRET", Old: "hunter2"},
		{Kind: Changed, Name: "PATH", Old: "a", New: "b"},
	})

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Errorf("value printed in names-only mode:\n%s", out)
	}
	if !strings.Contains(out, "- SECRET\n") || !strings.Contains(out, "~ PATH\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPrinter_NoChanges(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintChanges(nil)

	if !strings.HasPrefix(buf.String(), "No differences.") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestPrinter_Colors(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).PrintChanges([]Change{{Kind: Added, Name: "A", New: "1"}})

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes in colored output: %q", buf.String())
	}
}
