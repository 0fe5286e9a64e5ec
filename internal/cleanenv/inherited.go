package cleanenv

import (
	"os"
	"strings"

	"github.com/z0mbix/withcleanenv/internal/envblock"
)

// Inherited returns the environment this process is running with, decoded
// with the same rules as a default environment block.
func Inherited() Environment {
	return FromEnviron(os.Environ())
}

// FromEnviron builds an Environment from NAME=VALUE strings. Strings
// without '=' are skipped.
func FromEnviron(environ []string) Environment {
	var entries []envblock.Entry
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		entries = append(entries, envblock.Entry{Name: name, Value: value})
	}
	return Environment{entries: entries}
}
