package core

import "fmt"

// MaxFactorial is the largest n for which n! fits in a uint64.
const MaxFactorial = 20

var factorials = func() [MaxFactorial + 1]uint64 {
	var table [MaxFactorial + 1]uint64

	table[0] = 1
	for i := 1; i <= MaxFactorial; i++ {
		table[i] = table[i-1] * uint64(i)
	}

	return table
}()

// Factorial returns n! exactly for 0 <= n <= MaxFactorial.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeFactorial, n)
	}

	if n > MaxFactorial {
		return 0, fmt.Errorf("%w: %d > %d", ErrFactorialOverflow, n, MaxFactorial)
	}

	return factorials[n], nil
}
