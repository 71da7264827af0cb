package simd

// matchEq returns the mask of lanes in the 16-byte group equal to c.
// It starts out pointing at the portable scalar scan; an
// architecture-specific init (see match_amd64.go) swaps in a SIMD
// kernel when the host CPU supports it.
var matchEq = matchEqScalar
