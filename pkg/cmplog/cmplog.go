package cmplog

import (
	"github.com/holiman/uint256"
)

// Document is a loaded CmpLog trace.
type Document struct {
	Cmps []Component
}

// Component is the record of one comparison site.
type Component struct {
	Header Header
	Log    []Entry
}

// Entry is one recorded comparison. V0/V1 are the narrow operands and
// V0128/V1128 the wide (128-bit) ones.
type Entry struct {
	V0    uint256.Int
	V1    uint256.Int
	V0128 uint256.Int
	V1128 uint256.Int
}

// Stats returns the number of components and the total number of entries.
func (d *Document) Stats() (components, entries int) {
	for _, c := range d.Cmps {
		entries += len(c.Log)
	}
	return len(d.Cmps), entries
}
