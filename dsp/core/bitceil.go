package core

import "math/bits"

// BitCeil returns the smallest power of two >= n.
//
// BitCeil(0) and BitCeil(1) both return 1. n must not exceed 1<<62.
func BitCeil(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
