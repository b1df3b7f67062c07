// Package cpufeature gates runtime use of the engine's ASCII fast path on
// CPU capability detection.
//
// This mirrors the teacher engine's practice of consulting
// golang.org/x/sys/cpu before picking a faster byte-scanning loop
// (see coregx/coregex prefilter/simd packages), but without hand-written
// SIMD: both the gated and fallback paths here run the same portable Go,
// so the gate only affects which code is attempted first.
package cpufeature

import "golang.org/x/sys/cpu"

// ASCIIFastPath reports whether the host CPU supports the instruction
// extensions the engine associates with its ASCII fast path: the
// leftmost scan's byte-at-a-time cursor step over an all-ASCII
// haystack.
//
// On hosts without SSE4.2 this still returns false safely; callers must
// treat a false result as "use the portable path", never as an error.
func ASCIIFastPath() bool {
	return cpu.X86.HasSSE42
}
