// Package calc is the unsigned multi-digit arithmetic engine behind bignum.
//
// Every routine works on little-endian []uint32 digit slices (index 0 is the
// least significant digit). Inputs are expected to be trimmed, i.e. their
// most significant digit is non-zero, unless a function says otherwise.
// Output slices are supplied by the caller, sized to the documented worst
// case and zeroed; the kernel never retains them.
//
// The algorithms are the schoolbook ones: Knuth's algorithm D for division
// and square-and-multiply for powers.
package calc

import (
	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/scratch"
)

// StackAllocThreshold is shared with the scratch buffer strategy; requests up
// to this many digits never touch the pool.
const StackAllocThreshold = scratch.Threshold

var (
	// ErrDivideByZero is raised (by panic) when a divisor or modulus is zero.
	ErrDivideByZero = errors.New("bignum: division by zero")

	// ErrOverflow is raised when a result would exceed the supported size.
	ErrOverflow = errors.New("bignum: value too large")
)

// Compare compares left and right as unsigned magnitudes.
func Compare(left, right []uint32) int {
	if len(left) < len(right) {
		return -1
	}
	if len(left) > len(right) {
		return 1
	}
	for i := len(left) - 1; i >= 0; i-- {
		if left[i] < right[i] {
			return -1
		}
		if left[i] > right[i] {
			return 1
		}
	}
	return 0
}

// ActualLength returns the length of value with any most significant zero
// digits removed.
func ActualLength(value []uint32) int {
	n := len(value)
	for n > 0 && value[n-1] == 0 {
		n--
	}
	return n
}

func trim(value []uint32) []uint32 {
	return value[:ActualLength(value)]
}
