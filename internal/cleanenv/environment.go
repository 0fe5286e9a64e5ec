package cleanenv

import (
	"runtime"
	"strings"

	"github.com/z0mbix/withcleanenv/internal/envblock"
)

// foldNames is true where the OS treats variable names case-insensitively.
var foldNames = runtime.GOOS == "windows"

// Environment is an ordered, immutable set of environment variables in the
// order the operating system reported them.
type Environment struct {
	entries []envblock.Entry
}

// NewEnvironment returns an Environment holding a copy of entries.
func NewEnvironment(entries []envblock.Entry) Environment {
	return Environment{entries: append([]envblock.Entry(nil), entries...)}
}

// Entries returns a copy of the variables in order.
func (e Environment) Entries() []envblock.Entry {
	return append([]envblock.Entry(nil), e.entries...)
}

// Len returns the number of variables.
func (e Environment) Len() int {
	return len(e.entries)
}

// Lookup returns the value of the first variable called name.
func (e Environment) Lookup(name string) (string, bool) {
	for _, entry := range e.entries {
		if sameName(entry.Name, name) {
			return entry.Value, true
		}
	}
	return "", false
}

// Environ returns the variables as NAME=VALUE strings, ready for
// exec.Cmd.Env. The result is never nil, so a child started with it does
// not fall back to inheriting the parent's environment.
func (e Environment) Environ() []string {
	out := make([]string, 0, len(e.entries))
	for _, entry := range e.entries {
		out = append(out, entry.String())
	}
	return out
}

// Map returns the variables keyed by name. When a name repeats, the first
// occurrence wins, matching Lookup.
func (e Environment) Map() map[string]string {
	m := make(map[string]string, len(e.entries))
	for _, entry := range e.entries {
		if _, ok := m[entry.Name]; !ok {
			m[entry.Name] = entry.Value
		}
	}
	return m
}

// NameKey returns name in the form used to compare variable names on this
// system: upper-cased where names are case-insensitive.
func NameKey(name string) string {
	if foldNames {
		return strings.ToUpper(name)
	}
	return name
}

func sameName(a, b string) bool {
	if foldNames {
		return strings.EqualFold(a, b)
	}
	return a == b
}
