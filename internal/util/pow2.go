// Package util contains small internal helpers shared by the arena-backed
// containers (power-of-two sizing).
package util

import "math/bits"

// IsPowerOfTwo reports whether x is a power of two (> 0).
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && (x&(x-1)) == 0
}

// NextPow2 returns the smallest power of two >= x.
// Special cases:
//   - x <= 1 -> 1
//   - if the exact next power would overflow 64 bits, the result is clamped to 1<<63
func NextPow2(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	if IsPowerOfTwo(x) {
		return x
	}
	n := bits.Len64(x)
	if n >= 64 {
		return 1 << 63
	}
	return 1 << n
}
