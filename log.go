package bignum

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// Log returns the logarithm of x in the given base. It returns NaN for
// negative x, and for the bases math.Log can't use (1, 0 and +Inf) unless x
// is 1.
func Log(x Int, base float64) float64 {
	switch {
	case x.sign < 0 || base == 1:
		return math.NaN()
	case math.IsInf(base, 1):
		if x.IsOne() {
			return 0
		}
		return math.NaN()
	case base == 0 && !x.IsOne():
		return math.NaN()
	case x.bits == nil:
		return logBase(float64(x.sign), base)
	}

	n := len(x.bits)
	h := uint64(x.bits[n-1])
	var m, l uint64
	if n > 1 {
		m = uint64(x.bits[n-2])
	}
	if n > 2 {
		l = uint64(x.bits[n-3])
	}

	c := uint(bits.LeadingZeros32(uint32(h)))
	b := int64(n)*digitBits - int64(c)

	// With top = the 64 most significant bits of x,
	// log(x) = log(top) + log(2**(b-64)).
	top := h<<(32+c) | m<<c | l>>(32-c)
	return logBase(float64(top), base) + float64(b-64)/logBase(base, 2)
}

func logBase(a, base float64) float64 {
	switch {
	case math.IsNaN(a):
		return a
	case math.IsNaN(base):
		return base
	case base == 1:
		return math.NaN()
	case a != 1 && (base == 0 || math.IsInf(base, 1)):
		return math.NaN()
	}
	return math.Log(a) / math.Log(base)
}

// Ln returns the natural logarithm of x.
func Ln(x Int) float64 { return Log(x, math.E) }

// Log10 returns the base 10 logarithm of x.
func Log10(x Int) float64 { return Log(x, 10) }

// Log2 returns the integer part of the base 2 logarithm of x, or 0 if x is
// 0. It returns ErrOutOfRange if x is negative.
func Log2(x Int) (int64, error) {
	if x.sign < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "log2 of negative value %s", x)
	}
	if x.bits == nil {
		return int64(31 ^ bits.LeadingZeros32(uint32(x.sign|1))), nil
	}
	return int64((len(x.bits)*digitBits - 1) ^ bits.LeadingZeros32(x.bits[len(x.bits)-1])), nil
}
