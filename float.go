package bignum

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

const (
	floatMantBits = 52
	floatExpMask  = 0x7FF
	floatBias     = 1075 // 1023 plus the 52 mantissa bits
	floatImplicit = 1 << floatMantBits
	floatMantMask = floatImplicit - 1
)

// doubleParts splits f so that |f| == man * 2**exp. finite is false for NaN
// and the infinities.
func doubleParts(f float64) (sign int, exp int, man uint64, finite bool) {
	fb := math.Float64bits(f)
	sign = 1 - int(fb>>62&2)
	man = fb & floatMantMask
	exp = int(fb>>floatMantBits) & floatExpMask

	switch exp {
	case 0:
		// Subnormal.
		if man != 0 {
			exp = 1 - floatBias
		}
		return sign, exp, man, true
	case floatExpMask:
		return sign, math.MaxInt32, man, false
	}
	return sign, exp - floatBias, man | floatImplicit, true
}

// doubleFromParts is the inverse of doubleParts for any mantissa, dropping
// mantissa bits that don't fit rather than rounding them.
func doubleFromParts(sign int, exp int, man uint64) float64 {
	var fb uint64
	if man != 0 {
		// Normalize so the implicit bit is the highest bit set.
		shift := bits.LeadingZeros64(man) - 11
		if shift < 0 {
			man >>= uint(-shift)
		} else {
			man <<= uint(shift)
		}
		exp -= shift
		exp += floatBias

		switch {
		case exp >= floatExpMask:
			fb = math.Float64bits(math.Inf(1))
		case exp <= 0:
			exp--
			if exp >= -floatMantBits {
				fb = man >> uint(-exp)
			}
		default:
			fb = man&floatMantMask | uint64(exp)<<floatMantBits
		}
	}
	if sign < 0 {
		fb |= 1 << 63
	}
	return math.Float64frombits(fb)
}

// FromFloat64 creates an Int from a float64, truncating any fractional part
// towards zero. It returns ErrOverflow for NaN and the infinities.
func FromFloat64(f float64) (Int, error) {
	sign, exp, man, finite := doubleParts(f)
	if !finite {
		return Int{}, errors.Wrapf(ErrOverflow, "non-finite float %v", f)
	}
	if man == 0 {
		return Zero, nil
	}

	neg := sign < 0
	switch {
	case exp <= 0:
		if exp <= -64 {
			return Zero, nil
		}
		out := FromUint64(man >> uint(-exp))
		if neg {
			out = out.Neg()
		}
		return out, nil

	case exp <= 11:
		out := FromUint64(man << uint(exp))
		if neg {
			out = out.Neg()
		}
		return out, nil
	}

	// At least three digits. Move the leading 1 to the top bit, then place
	// the 64 mantissa bits so that exp == 32*cu - cbit.
	man <<= 11
	exp -= 11

	cu := (exp-1)/digitBits + 1
	cbit := uint(cu*digitBits - exp)

	digits := make([]uint32, cu+2)
	digits[cu+1] = uint32(man >> (cbit + digitBits))
	digits[cu] = uint32(man >> cbit)
	if cbit > 0 {
		digits[cu-1] = uint32(man) << (digitBits - cbit)
	}
	return newFromDigitsOwned(digits, neg), nil
}

func FromFloat32(f float32) (Int, error) {
	return FromFloat64(float64(f))
}

// Float64 returns the float64 nearest below |x| with the sign of x, or an
// infinity if x is out of range. Only the top 64 significant bits take part.
func (x Int) Float64() float64 {
	if x.bits == nil {
		return float64(x.sign)
	}

	n := len(x.bits)
	if n > infinityLength {
		return math.Inf(int(x.sign))
	}

	h := uint64(x.bits[n-1])
	var m, l uint64
	if n > 1 {
		m = uint64(x.bits[n-2])
	}
	if n > 2 {
		l = uint64(x.bits[n-3])
	}

	z := uint(bits.LeadingZeros32(uint32(h)))
	exp := (n-2)*digitBits - int(z)
	man := h<<(32+z) | m<<z | l>>(32-z)
	return doubleFromParts(int(x.sign), exp, man)
}

func (x Int) Float32() float32 {
	return float32(x.Float64())
}
