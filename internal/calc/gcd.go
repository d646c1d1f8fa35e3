package calc

import (
	"github.com/shabbyrobe/go-bignum/internal/scratch"
)

// Gcd32 is Euclid's algorithm on two 32-bit values.
func Gcd32(left, right uint32) uint32 {
	for right != 0 {
		left, right = right, left%right
	}
	return left
}

// Gcd64 is Euclid's algorithm on two 64-bit values, dropping to 32 bits as
// soon as the smaller operand fits.
func Gcd64(left, right uint64) uint64 {
	for right > 0xFFFFFFFF {
		left, right = right, left%right
	}
	if right != 0 {
		return uint64(Gcd32(uint32(right), uint32(left%right)))
	}
	return left
}

// GcdScalar returns the gcd of a multi-digit value and a non-zero digit.
func GcdScalar(left []uint32, right uint32) uint32 {
	// A common divisor can't exceed right, so one remainder step brings
	// both operands down to 32 bits.
	return Gcd32(right, RemainderScalar(left, right))
}

// Gcd writes the gcd of left and right to result. left must be >= right
// and len(result) must equal len(left).
func Gcd(left, right, result []uint32) {
	if Compare(left, right) < 0 || len(result) != len(left) {
		panic("calc: gcd size mismatch")
	}

	var rb scratch.Buffer
	defer rb.Release()
	rcopy := rb.Get(len(right))

	copy(result, left)
	copy(rcopy, right)

	a, b := trim(result), trim(rcopy)
	for len(b) > 2 {
		divideInPlace(a, b, nil)
		a, b = b, trim(a)
	}

	var g uint64
	switch len(b) {
	case 0:
		copy(result, a)
		clear(result[len(a):])
		return

	case 1:
		g = uint64(GcdScalar(a, b[0]))

	case 2:
		divideInPlace(a, b, nil)
		a = trim(a)
		bv := uint64(b[1])<<32 | uint64(b[0])
		var av uint64
		if len(a) > 1 {
			av = uint64(a[1]) << 32
		}
		if len(a) > 0 {
			av |= uint64(a[0])
		}
		g = Gcd64(bv, av)
	}

	clear(result)
	result[0] = uint32(g)
	if len(result) > 1 {
		result[1] = uint32(g >> 32)
	}
}
