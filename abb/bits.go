package abb

import "math/bits"

// The Go ecosystem doesn't really have a third-party bit-twiddling library
// worth reaching for here — math/bits is itself the idiomatic choice, not a
// stand-in for one.

// IsPow2 reports whether v is an exact power of two. 0 is not.
func IsPow2(v uintptr) bool {
	return v != 0 && v&(v-1) == 0
}

// LastBitSet returns the index of the highest set bit of v, or 0 for v == 0.
// Equivalent to floor(log2(v)) for v > 0.
func LastBitSet(v uintptr) uintptr {
	if v == 0 {
		return 0
	}
	return uintptr(bits.Len(uint(v)) - 1)
}

// NextPow2 rounds v up to the next power of two (v itself if already one).
func NextPow2(v uintptr) uintptr {
	if IsPow2(v) {
		return v
	}
	return 1 << (LastBitSet(v) + 1)
}

// CountTrailingZeros returns the number of trailing zero bits of v.
func CountTrailingZeros(v uintptr) uintptr {
	return uintptr(bits.TrailingZeros(uint(v)))
}
