// Package envblock decodes packed environment blocks.
//
// An environment block is a run of NAME=VALUE strings encoded as UTF-16
// code units. Each string is terminated by a NUL unit and one more NUL
// follows the last terminator to mark the end of the block. This is the
// layout Windows uses for CreateEnvironmentBlock and CreateProcess.
package envblock

import (
	"unicode/utf16"
)

// Entry is a decoded NAME=VALUE pair.
type Entry struct {
	Name  string
	Value string
}

// String returns the entry in NAME=VALUE form.
func (e Entry) String() string {
	return e.Name + "=" + e.Value
}

// Block is a length-known view over the code units of an environment block.
// Parsing never indexes past len(Block), so a block that lacks its final
// terminator is cut short instead of overrunning the buffer.
type Block []uint16

// Encode packs the given NAME=VALUE strings into a block. With no strings
// the result is a single NUL unit.
func Encode(entries ...string) Block {
	var b Block
	for _, e := range entries {
		b = append(b, utf16.Encode([]rune(e))...)
		b = append(b, 0)
	}
	return append(b, 0)
}

// Entries parses the block. It is shorthand for Parse(b).
func (b Block) Entries() []Entry {
	return Parse(b)
}
