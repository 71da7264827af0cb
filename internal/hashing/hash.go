// Package hashing supplies the default BuildHasher for swisstable.Map.
//
// Earlier Go versions had no portable way to hash an arbitrary
// comparable value, which pushed implementations toward unsafe tricks
// like linking against runtime.memhash directly. Go 1.24's
// hash/maphash.Comparable does that job properly, so this package is
// just a thin wrapper around it.
package hashing

import "hash/maphash"

// BuildHasher is the default swisstable.Hasher[K] implementation: a
// process-seeded hash over any comparable key, using the same
// randomized-seed discipline Go's builtin map uses to resist
// hash-flooding.
type BuildHasher[K comparable] struct {
	seed maphash.Seed
}

// New returns a BuildHasher with a fresh random seed.
func New[K comparable]() BuildHasher[K] {
	return BuildHasher[K]{seed: maphash.MakeSeed()}
}

// Hash implements swisstable.Hasher[K].
func (b BuildHasher[K]) Hash(k K) uint64 {
	return maphash.Comparable(b.seed, k)
}
