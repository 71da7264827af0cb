package simd

import "golang.org/x/sys/cpu"

func init() {
	// The kernel's broadcast step uses PSHUFB, which is SSSE3, not
	// plain SSE2 -- gating on HasSSE2 alone would fault on an
	// SSE2-only host.
	if cpu.X86.HasSSSE3 {
		matchEq = matchEqSSSE3
	}
}

// matchEqAsm is implemented in match_amd64.s, which follows the
// kernel in internal/asmgen's gen.go. It broadcasts c across
// an XMM register, compares it against the 16 bytes at group, and
// returns PMOVMSKB's lane-equality bitmask zero-extended to 32 bits.
//
//go:noescape
func matchEqAsm(c uint8, group *[16]byte) uint32

func matchEqSSSE3(c uint8, group []byte) uint16 {
	return uint16(matchEqAsm(c, (*[16]byte)(group)))
}
