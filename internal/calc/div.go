package calc

import (
	"math/bits"

	"github.com/shabbyrobe/go-bignum/internal/scratch"
)

// DivideScalar writes left / right to quotient and returns left % right.
// len(quotient) must equal len(left).
func DivideScalar(left []uint32, right uint32, quotient []uint32) uint32 {
	if right == 0 {
		panic(ErrDivideByZero)
	}
	if len(quotient) != len(left) {
		panic("calc: divide size mismatch")
	}

	var carry uint64
	for i := len(left) - 1; i >= 0; i-- {
		value := (carry << 32) | uint64(left[i])
		digit := value / uint64(right)
		quotient[i] = uint32(digit)
		carry = value - digit*uint64(right)
	}
	return uint32(carry)
}

// RemainderScalar returns left % right.
func RemainderScalar(left []uint32, right uint32) uint32 {
	if right == 0 {
		panic(ErrDivideByZero)
	}

	var carry uint64
	for i := len(left) - 1; i >= 0; i-- {
		value := (carry << 32) | uint64(left[i])
		carry = value % uint64(right)
	}
	return uint32(carry)
}

// Divide writes left / right to quotient and left % right to remainder.
// len(left) must be >= len(right). quotient, if not nil, must be
// len(left)-len(right)+1 long. remainder, if not nil, must be len(left)
// long; it is used as the working buffer so its top digits end up zero.
func Divide(left, right, quotient, remainder []uint32) {
	if len(right) == 0 || right[len(right)-1] == 0 {
		panic(ErrDivideByZero)
	}
	if len(left) < len(right) ||
		(quotient != nil && len(quotient) != len(left)-len(right)+1) ||
		(remainder != nil && len(remainder) != len(left)) {
		panic("calc: divide size mismatch")
	}

	if remainder == nil {
		var rb scratch.Buffer
		defer rb.Release()
		remainder = rb.Get(len(left))
	}
	copy(remainder, left)
	divideInPlace(remainder, right, quotient)
}

// Remainder writes left % right to remainder, which must be len(left) long.
func Remainder(left, right, remainder []uint32) {
	Divide(left, right, nil, remainder)
}

// divideInPlace is Knuth's algorithm D. left is reduced to the remainder as
// the quotient digits are produced from the top down. Rather than normalize
// both operands up front, the top two digits of each are shifted on the fly
// so the divisor's high bit is set when guessing.
func divideInPlace(left, right, quotient []uint32) {
	divHi := right[len(right)-1]
	var divLo uint32
	if len(right) > 1 {
		divLo = right[len(right)-2]
	}

	shift := uint(bits.LeadingZeros32(divHi))
	backShift := 32 - shift

	if shift > 0 {
		var divNx uint32
		if len(right) > 2 {
			divNx = right[len(right)-3]
		}
		divHi = (divHi << shift) | (divLo >> backShift)
		divLo = (divLo << shift) | (divNx >> backShift)
	}

	for i := len(left); i >= len(right); i-- {
		n := i - len(right)
		var t uint32
		if i < len(left) {
			t = left[i]
		}

		valHi := (uint64(t) << 32) | uint64(left[i-1])
		var valLo uint32
		if i > 1 {
			valLo = left[i-2]
		}

		if shift > 0 {
			var valNx uint32
			if i > 2 {
				valNx = left[i-3]
			}
			valHi = (valHi << shift) | uint64(valLo>>backShift)
			valLo = (valLo << shift) | (valNx >> backShift)
		}

		digit := valHi / uint64(divHi)
		if digit > 0xFFFFFFFF {
			digit = 0xFFFFFFFF
		}
		for divideGuessTooBig(digit, valHi, valLo, divHi, divLo) {
			digit--
		}

		if digit > 0 {
			carry := subtractDivisor(left[n:], right, digit)
			if carry != t {
				// Still one too high; add the divisor back once.
				addDivisor(left[n:], right)
				digit--
			}
		}

		if quotient != nil {
			quotient[n] = uint32(digit)
		}
		if i < len(left) {
			left[i] = 0
		}
	}
}

func divideGuessTooBig(q, valHi uint64, valLo, divHi, divLo uint32) bool {
	chkHi := uint64(divHi) * q
	chkLo := uint64(divLo) * q

	chkHi += chkLo >> 32
	chkLo &= 0xFFFFFFFF

	if chkHi < valHi {
		return false
	}
	if chkHi > valHi {
		return true
	}
	if chkLo < uint64(valLo) {
		return false
	}
	if chkLo > uint64(valLo) {
		return true
	}
	return false
}

func subtractDivisor(left, right []uint32, q uint64) uint32 {
	var carry uint64
	for i := 0; i < len(right); i++ {
		carry += uint64(right[i]) * q
		digit := uint32(carry)
		carry >>= 32
		if left[i] < digit {
			carry++
		}
		left[i] -= digit
	}
	return uint32(carry)
}

func addDivisor(left, right []uint32) uint32 {
	var carry uint64
	for i := 0; i < len(right); i++ {
		digit := uint64(left[i]) + carry + uint64(right[i])
		left[i] = uint32(digit)
		carry = digit >> 32
	}
	return uint32(carry)
}
