package swisstable

// metadata is a one-byte per-bucket control value. High bit set means
// the bucket is not live (EMPTY or TOMBSTONE); high bit clear means the
// low 7 bits are h2 for a live entry.
type metadata uint8

const (
	metaEmpty     metadata = 0x80
	metaTombstone metadata = 0xFE
	metaMask      metadata = 0x7F
)

// metaFromH2 builds a FULL metadata byte carrying h2 in its low 7 bits.
// The mask is defensive: h2 is always < 0x80 by construction (see
// bucketIndexAndH2), but a byte straight off a user hash function is
// not something this clears twice for free.
func metaFromH2(h2 uint8) metadata {
	return metadata(h2) & metaMask
}

func (m metadata) isEmpty() bool {
	return m == metaEmpty
}

func (m metadata) isFull() bool {
	return m&0x80 == 0
}

func (m metadata) h2() uint8 {
	return uint8(m & metaMask)
}
