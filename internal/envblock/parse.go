package envblock

import (
	"unicode/utf16"
)

const equalsUnit = uint16('=')

// cursor walks a block one entry at a time. Offsets are indexes into the
// block, never pointers.
type cursor struct {
	block Block
	pos   int
}

// next returns the bounds [start, end) of the entry at the cursor and moves
// past its NUL terminator. ok is false when the entry runs to the end of the
// view without a terminator.
func (c *cursor) next() (start, end int, ok bool) {
	start = c.pos
	for end = start; end < len(c.block); end++ {
		if c.block[end] == 0 {
			c.pos = end + 1
			return start, end, true
		}
	}
	c.pos = len(c.block)
	return start, end, false
}

// atEnd reports whether the cursor sits on the block's final NUL or has run
// off the end of the view.
func (c *cursor) atEnd() bool {
	return c.pos >= len(c.block) || c.block[c.pos] == 0
}

// Parse decodes every NAME=VALUE entry in the block, in block order.
//
// The name is everything before the first '=' and the value everything
// after it, so an entry such as "=C:=C:\dir" has an empty name. Entries
// without any '=' are skipped. Scanning stops at the first empty entry
// following a terminator, or at the end of the view, whichever comes first;
// an entry cut off by the end of the view is skipped.
//
// The returned strings are copies and stay valid after the memory behind the
// block is released.
func Parse(b Block) []Entry {
	var entries []Entry
	if len(b) == 0 {
		return entries
	}

	c := &cursor{block: b}
	for {
		start, end, ok := c.next()
		if !ok {
			break
		}

		if eq := indexEquals(b, start, end); eq >= 0 {
			entries = append(entries, Entry{
				Name:  decode(b[start:eq]),
				Value: decode(b[eq+1 : end]),
			})
		}

		if c.atEnd() {
			break
		}
	}

	return entries
}

func indexEquals(b Block, start, end int) int {
	for i := start; i < end; i++ {
		if b[i] == equalsUnit {
			return i
		}
	}
	return -1
}

func decode(units []uint16) string {
	return string(utf16.Decode(units))
}
