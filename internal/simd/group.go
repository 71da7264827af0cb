// Package simd implements the 16-lane metadata group primitive: load a
// 16-byte window of control bytes and produce a bitmask of lanes that
// equal a given byte, are empty, or are full. Everything above this
// package (the probe loop, tombstone reclamation, resize) only ever
// sees Mask and MaskIter; it never looks at the underlying bytes
// directly.
package simd

import "math/bits"

// GroupSize is the number of metadata lanes scanned per load. It is
// fixed at 16 to match a single SSE register; widening it would also
// require widening the metadata mirror tail (see the Map's bucket
// array).
const GroupSize = 16

// emptyByte is the sentinel control byte for an empty bucket. It is
// duplicated here (rather than imported from the metadata type) because
// a Group is a dumb byte-lane primitive: it knows how to compare lanes,
// not what the bytes mean.
const emptyByte = 0x80

// Mask is a 16-bit lane mask: bit i set means lane i matched.
type Mask uint16

// Group is a read-only 16-lane window over a metadata slice. The slice
// must have at least 16 bytes remaining from the window start; the
// Map's mirror tail (metadata length capacity+16) guarantees this for
// every start index in [0, capacity).
type Group struct {
	data []byte
}

// Load returns the group starting at metadata[at:at+16].
func Load(metadata []byte, at int) Group {
	return Group{data: metadata[at : at+16 : at+16]}
}

// ToEmpties returns the mask of lanes holding the EMPTY sentinel.
func (g Group) ToEmpties() Mask {
	return Mask(matchEq(emptyByte, g.data))
}

// ToCandidates returns the mask of lanes whose whole byte equals h2.
// Since h2 < 0x80, only FULL lanes carrying that tag can match (EMPTY
// and TOMBSTONE lanes never do). A candidate lane is only a genuine
// match once the stored key compares equal; h2 collisions are
// expected and cheap to reject.
func (g Group) ToCandidates(h2 uint8) Mask {
	return Mask(matchEq(h2, g.data))
}

// ToFulls returns the mask of lanes whose high bit is clear, i.e. the
// FULL(h2) state for any h2. Used during resize, where every live
// bucket (not just ones matching a particular h2) needs to be found.
func (g Group) ToFulls() Mask {
	return Mask(toFulls(g.data))
}

// direction records which way a MaskIter walks its set bits, so
// forward and reverse iteration share one implementation; Next
// switches on it each call.
type direction int

const (
	forward direction = iota
	reverse
)

// MaskIter iterates the set bits of a Mask, either ascending
// (lowest lane first) or descending (highest lane first).
type MaskIter struct {
	bits uint16
	dir  direction
}

// Forward returns a MaskIter yielding set lanes in ascending order.
func Forward(m Mask) MaskIter {
	return MaskIter{bits: uint16(m), dir: forward}
}

// Reverse returns a MaskIter yielding set lanes in descending order.
func Reverse(m Mask) MaskIter {
	return MaskIter{bits: uint16(m), dir: reverse}
}

// Next returns the next lane index and true, or (0, false) once
// exhausted.
func (it *MaskIter) Next() (int, bool) {
	if it.bits == 0 {
		return 0, false
	}
	switch it.dir {
	case forward:
		i := bits.TrailingZeros16(it.bits)
		it.bits &^= 1 << uint(i)
		return i, true
	default: // reverse
		i := GroupSize - 1 - bits.LeadingZeros16(it.bits)
		it.bits &^= 1 << uint(i)
		return i, true
	}
}

// FindFirst returns the lowest set lane in mask, if any.
func FindFirst(m Mask) (int, bool) {
	it := Forward(m)
	return it.Next()
}

// FindLast returns the highest set lane in mask, if any.
func FindLast(m Mask) (int, bool) {
	it := Reverse(m)
	return it.Next()
}
