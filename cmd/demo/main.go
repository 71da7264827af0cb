// Command demo is a tiny driver for internal/simd's group matcher,
// adapted from an earlier scratch program that exercised the raw
// MatchByte-shaped primitive by hand.
package main

import (
	"fmt"
	"math/bits"

	"github.com/thepudds/swisstable/internal/simd"
)

func main() {
	metadata := []byte{42, 0, 42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42, 0, 0}
	metadata = metadata[2:]

	group := simd.Load(metadata, 0)
	mask := group.ToCandidates(42)
	fmt.Println(mask)

	if mask == 0 {
		fmt.Println("no match")
		return
	}
	for m := uint16(mask); m != 0; {
		i := bits.TrailingZeros16(m)
		fmt.Println("match:", i)
		m &^= 1 << uint(i)
	}
}
