package core

import "errors"

// Errors returned by core helpers.
var (
	ErrNegativeFactorial = errors.New("core: factorial of negative number")
	ErrFactorialOverflow = errors.New("core: factorial overflows uint64")
)
