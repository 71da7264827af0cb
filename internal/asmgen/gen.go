//go:build ignore

// Command asmgen emits internal/simd/match_amd64.s, the SSSE3 kernel
// that backs Group's lane-equality compare. It is not part of the
// normal build (note the ignore tag above) and is only run by hand
// when the kernel needs to change:
//
//	go run internal/asmgen/gen.go -out internal/simd/match_amd64.s
//
// No stub file is generated: the Go declaration of matchEqAsm lives
// in internal/simd/match_amd64.go.
//
// This started life as a scratch file trying out avo's API
// (PSHUFB-broadcast, PCMPEQB, PMOVMSKB) against a single matcher
// function; this version is the one actually wired to internal/simd.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

func main() {
	TEXT("matchEqAsm", NOSPLIT, "func(c uint8, group *[16]byte) (mask uint32)")
	Doc("matchEqAsm returns the bitmask of the 16 bytes at group that equal c.")

	c := Load(Param("c"), GP32())
	ptr := Load(Param("group"), GP64())

	broadcast, zero, loaded := XMM(), XMM(), XMM()
	PXOR(zero, zero)
	MOVD(c, broadcast)
	// Broadcast the low byte of c across all 16 lanes of broadcast.
	PSHUFB(zero, broadcast)

	MOVOU(operand.Mem{Base: ptr}, loaded)
	PCMPEQB(loaded, broadcast)

	result := GP32()
	PMOVMSKB(broadcast, result)
	Store(result, ReturnIndex(0))

	RET()
	Generate()
}
