package envblock

import (
	"unsafe"
)

// MaxBlockUnits caps how far FromPointer scans for the end of a block.
// Windows no longer imposes a size limit on environment blocks, so this is
// a sanity bound well above anything a real session produces.
const MaxBlockUnits = 1 << 20

// FromPointer builds a view over a NUL-delimited block owned by someone
// else, typically the operating system. It scans for the terminating empty
// entry and reads at most limit code units. If the terminator is not found
// within limit units, the view is truncated at limit.
//
// The view aliases the foreign memory: it must not be used after that memory
// is released. Parse copies everything it returns.
func FromPointer(p *uint16, limit int) Block {
	if p == nil || limit <= 0 {
		return nil
	}

	n := 0
	for n < limit {
		if unitAt(p, n) == 0 {
			if n+1 >= limit {
				n++
				break
			}
			if unitAt(p, n+1) == 0 {
				n += 2
				break
			}
		}
		n++
	}

	return Block(unsafe.Slice(p, n))
}

func unitAt(p *uint16, i int) uint16 {
	return *(*uint16)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(*p)))
}
