package diff

import (
	"github.com/z0mbix/withcleanenv/internal/cleanenv"
)

// Kind describes how a variable differs between two environments
type Kind int

const (
	// Added variables exist only in the clean environment
	Added Kind = iota
	// Removed variables exist only in the inherited environment
	Removed
	// Changed variables exist in both with different values
	Changed
)

// Change is a single variable that differs
type Change struct {
	Kind Kind
	Name string
	Old  string // inherited value
	New  string // clean value
}

// Compare lists the differences between the inherited and clean
// environments. Added and changed variables come first in clean order,
// followed by removed variables in inherited order.
func Compare(inherited, clean cleanenv.Environment) []Change {
	var changes []Change
	seen := make(map[string]bool)

	for _, e := range clean.Entries() {
		key := cleanenv.NameKey(e.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		old, ok := inherited.Lookup(e.Name)
		switch {
		case !ok:
			changes = append(changes, Change{Kind: Added, Name: e.Name, New: e.Value})
		case old != e.Value:
			changes = append(changes, Change{Kind: Changed, Name: e.Name, Old: old, New: e.Value})
		}
	}

	for _, e := range inherited.Entries() {
		key := cleanenv.NameKey(e.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		if _, ok := clean.Lookup(e.Name); !ok {
			changes = append(changes, Change{Kind: Removed, Name: e.Name, Old: e.Value})
		}
	}

	return changes
}

// Summary counts changes by kind
type Summary struct {
	Added, Removed, Changed int
}

// Summarize counts the changes of each kind
func Summarize(changes []Change) Summary {
	var s Summary
	for _, c := range changes {
		switch c.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Changed:
			s.Changed++
		}
	}
	return s
}
