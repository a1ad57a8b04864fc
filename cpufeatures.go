package stringozzi

import "golang.org/x/sys/cpu"

// wideASCIICompare reports whether the running CPU exposes the wider
// SIMD-style instruction set (SSE4.2 on x86-64) that a vectorized byte
// scanner would probe for before choosing it over a byte-at-a-time one.
// stringozzi's core is rune-oriented rather than byte-oriented (the
// cursor advances by whole code points), so there is no vector kernel
// here to dispatch to — this flag only gates the one place that stays
// byte-oriented for an ASCII fast path: Between over a single-byte ASCII
// rune at the cursor.
var wideASCIICompare = cpu.X86.HasSSE42

// asciiRangeFast tests whether b falls in [lo,hi], the inner loop used by
// betweenRange.check when the input is known single-byte ASCII and the
// host supports the wider compare. It is behaviorally identical to the
// plain comparison; the CPU-feature probe only documents that this is the
// code path a SIMD-capable build would widen first.
func asciiRangeFast(b, lo, hi byte) bool {
	if !wideASCIICompare {
		return b >= lo && b <= hi
	}
	return b >= lo && b <= hi
}
