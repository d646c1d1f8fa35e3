package bignum

import (
	"math"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/calc"
	"github.com/shabbyrobe/go-bignum/internal/scratch"
)

func (x Int) Add(y Int) Int {
	x.assertValid()
	y.assertValid()

	if x.bits == nil && y.bits == nil {
		return FromInt64(int64(x.sign) + int64(y.sign))
	}
	if (x.sign < 0) != (y.sign < 0) {
		return subMagnitudes(x.bits, x.sign, y.bits, -y.sign)
	}
	return addMagnitudes(x.bits, x.sign, y.bits, y.sign)
}

func (x Int) Sub(y Int) Int {
	x.assertValid()
	y.assertValid()

	if x.bits == nil && y.bits == nil {
		return FromInt64(int64(x.sign) - int64(y.sign))
	}
	if (x.sign < 0) != (y.sign < 0) {
		return addMagnitudes(x.bits, x.sign, y.bits, -y.sign)
	}
	return subMagnitudes(x.bits, x.sign, y.bits, y.sign)
}

// addMagnitudes adds two values known to have the same sign. At least one
// is in array form; an inline operand is passed as a nil slice with its
// value in the sign.
func addMagnitudes(xbits []uint32, xsign int32, ybits []uint32, ysign int32) Int {
	var out []uint32
	switch {
	case xbits == nil:
		out = make([]uint32, len(ybits)+1)
		calc.AddScalar(ybits, abs32(xsign), out)
	case ybits == nil:
		out = make([]uint32, len(xbits)+1)
		calc.AddScalar(xbits, abs32(ysign), out)
	case len(xbits) < len(ybits):
		out = make([]uint32, len(ybits)+1)
		calc.Add(ybits, xbits, out)
	default:
		out = make([]uint32, len(xbits)+1)
		calc.Add(xbits, ybits, out)
	}
	return newFromDigitsOwned(out, xsign < 0)
}

// subMagnitudes subtracts two values known to have the same sign. The
// result takes its sign from whichever magnitude is larger.
func subMagnitudes(xbits []uint32, xsign int32, ybits []uint32, ysign int32) Int {
	var out []uint32
	var neg bool
	switch {
	case xbits == nil:
		// An array magnitude always exceeds an inline one.
		out = make([]uint32, len(ybits))
		calc.SubtractScalar(ybits, abs32(xsign), out)
		neg = xsign >= 0
	case ybits == nil:
		out = make([]uint32, len(xbits))
		calc.SubtractScalar(xbits, abs32(ysign), out)
		neg = xsign < 0
	case calc.Compare(xbits, ybits) < 0:
		out = make([]uint32, len(ybits))
		calc.Subtract(ybits, xbits, out)
		neg = xsign >= 0
	default:
		out = make([]uint32, len(xbits))
		calc.Subtract(xbits, ybits, out)
		neg = xsign < 0
	}
	return newFromDigitsOwned(out, neg)
}

func (x Int) Inc() Int { return x.Add(One) }
func (x Int) Dec() Int { return x.Sub(One) }

func (x Int) Mul(y Int) Int {
	x.assertValid()
	y.assertValid()

	if x.bits == nil && y.bits == nil {
		return FromInt64(int64(x.sign) * int64(y.sign))
	}

	neg := (x.sign < 0) != (y.sign < 0)
	var out []uint32
	switch {
	case x.bits == nil:
		out = make([]uint32, len(y.bits)+1)
		calc.MultiplyScalar(y.bits, abs32(x.sign), out)
	case y.bits == nil:
		out = make([]uint32, len(x.bits)+1)
		calc.MultiplyScalar(x.bits, abs32(y.sign), out)
	case sameDigits(x.bits, y.bits):
		out = make([]uint32, 2*len(x.bits))
		calc.Square(x.bits, out)
	case len(x.bits) < len(y.bits):
		out = make([]uint32, len(x.bits)+len(y.bits))
		calc.Multiply(y.bits, x.bits, out)
	default:
		out = make([]uint32, len(x.bits)+len(y.bits))
		calc.Multiply(x.bits, y.bits, out)
	}
	return newFromDigitsOwned(out, neg)
}

// sameDigits reports whether a and b share storage, i.e. x*x.
func sameDigits(a, b []uint32) bool {
	return len(a) == len(b) && &a[0] == &b[0]
}

// Quo returns x / y, truncated towards zero. Quo panics with
// ErrDivideByZero if y is zero.
func (x Int) Quo(y Int) Int {
	x.assertValid()
	y.assertValid()

	switch {
	case x.bits == nil && y.bits == nil:
		if y.sign == 0 {
			panic(ErrDivideByZero)
		}
		return FromInt64(int64(x.sign) / int64(y.sign))

	case x.bits == nil:
		// |y| > |x|
		return Zero

	case y.bits == nil:
		out := make([]uint32, len(x.bits))
		calc.DivideScalar(x.bits, abs32(y.sign), out)
		return newFromDigitsOwned(out, (x.sign < 0) != (y.sign < 0))

	case len(x.bits) < len(y.bits):
		return Zero
	}

	out := make([]uint32, len(x.bits)-len(y.bits)+1)
	calc.Divide(x.bits, y.bits, out, nil)
	return newFromDigitsOwned(out, (x.sign < 0) != (y.sign < 0))
}

// Rem returns x % y. The result is zero or has the sign of x. Rem panics
// with ErrDivideByZero if y is zero.
func (x Int) Rem(y Int) Int {
	x.assertValid()
	y.assertValid()

	switch {
	case x.bits == nil && y.bits == nil:
		if y.sign == 0 {
			panic(ErrDivideByZero)
		}
		return Int{sign: x.sign % y.sign}

	case x.bits == nil:
		return x

	case y.bits == nil:
		r := calc.RemainderScalar(x.bits, abs32(y.sign))
		if x.sign < 0 {
			return FromInt64(-int64(r))
		}
		return FromUint32(r)

	case len(x.bits) < len(y.bits):
		return x
	}

	var rb scratch.Buffer
	defer rb.Release()

	rd := rb.Get(len(x.bits))
	calc.Remainder(x.bits, y.bits, rd)
	return newFromDigits(rd, x.sign < 0)
}

// QuoRem returns the quotient and remainder of x / y as Quo and Rem would.
func (x Int) QuoRem(y Int) (q, r Int) {
	x.assertValid()
	y.assertValid()

	switch {
	case x.bits == nil && y.bits == nil:
		if y.sign == 0 {
			panic(ErrDivideByZero)
		}
		return FromInt64(int64(x.sign) / int64(y.sign)), Int{sign: x.sign % y.sign}

	case x.bits == nil:
		return Zero, x

	case y.bits == nil:
		qd := make([]uint32, len(x.bits))
		rem := calc.DivideScalar(x.bits, abs32(y.sign), qd)
		q = newFromDigitsOwned(qd, (x.sign < 0) != (y.sign < 0))
		if x.sign < 0 {
			return q, FromInt64(-int64(rem))
		}
		return q, FromUint32(rem)

	case len(x.bits) < len(y.bits):
		return Zero, x
	}

	var rb scratch.Buffer
	defer rb.Release()

	qd := make([]uint32, len(x.bits)-len(y.bits)+1)
	rd := rb.Get(len(x.bits))
	calc.Divide(x.bits, y.bits, qd, rd)
	return newFromDigitsOwned(qd, (x.sign < 0) != (y.sign < 0)),
		newFromDigits(rd, x.sign < 0)
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b Int) Int {
	a.assertValid()
	b.assertValid()

	switch {
	case a.bits == nil && b.bits == nil:
		return FromUint32(calc.Gcd32(abs32(a.sign), abs32(b.sign)))

	case a.bits == nil:
		if a.sign == 0 {
			return b.Abs()
		}
		return FromUint32(calc.GcdScalar(b.bits, abs32(a.sign)))

	case b.bits == nil:
		if b.sign == 0 {
			return a.Abs()
		}
		return FromUint32(calc.GcdScalar(a.bits, abs32(b.sign)))
	}

	if calc.Compare(a.bits, b.bits) < 0 {
		return gcdDigits(b.bits, a.bits)
	}
	return gcdDigits(a.bits, b.bits)
}

// gcdDigits requires left >= right.
func gcdDigits(left, right []uint32) Int {
	if len(right) == 1 {
		return FromUint32(calc.Gcd32(right[0], calc.RemainderScalar(left, right[0])))
	}

	var rb scratch.Buffer
	defer rb.Release()
	rd := rb.Get(len(left))

	if len(right) == 2 {
		calc.Remainder(left, right, rd)
		l := uint64(right[1])<<32 | uint64(right[0])
		r := uint64(rd[1])<<32 | uint64(rd[0])
		return FromUint64(calc.Gcd64(l, r))
	}

	calc.Gcd(left, right, rd)
	return newFromDigits(rd, false)
}

// Pow returns x ** exponent. It returns ErrOutOfRange if exponent is
// negative and ErrOverflow if the result could need more than MaxDigits
// digits.
func Pow(x Int, exponent int) (Int, error) {
	x.assertValid()

	if exponent < 0 {
		return Int{}, errors.Wrapf(ErrOutOfRange, "negative exponent %d", exponent)
	}
	if exponent == 0 {
		return One, nil
	}
	if exponent == 1 {
		return x, nil
	}

	odd := exponent&1 != 0
	if x.bits == nil {
		switch x.sign {
		case 1, 0:
			return x, nil
		case -1:
			if odd {
				return x, nil
			}
			return One, nil
		}
	}

	if uint64(exponent) > math.MaxUint32 {
		return Int{}, errors.Wrapf(ErrOverflow, "exponent %d", exponent)
	}
	power := uint32(exponent)

	size, err := calc.PowBound(power, x.digitLen())
	if err != nil {
		return Int{}, err
	}
	if size > MaxDigits {
		return Int{}, errors.Wrapf(ErrOverflow, "power needs %d digits", size)
	}

	var ob scratch.Buffer
	defer ob.Release()

	out := ob.Get(size)
	if x.bits == nil {
		calc.PowScalar(abs32(x.sign), power, out)
	} else {
		calc.Pow(x.bits, power, out)
	}
	return newFromDigits(out, x.sign < 0 && odd), nil
}

// ModPow returns x ** exponent % modulus. The sign of modulus is ignored;
// the result is negative only when x is negative and exponent is odd.
// ModPow returns ErrOutOfRange for a negative exponent and panics with
// ErrDivideByZero when modulus is zero.
func ModPow(x, exponent, modulus Int) (Int, error) {
	x.assertValid()
	exponent.assertValid()
	modulus.assertValid()

	if exponent.sign < 0 {
		return Int{}, errors.Wrapf(ErrOutOfRange, "negative exponent %s", exponent)
	}

	neg := x.sign < 0 && !exponent.IsEven()

	power := exponent.bits
	if power == nil {
		power = []uint32{uint32(exponent.sign)}
	}

	if modulus.bits == nil {
		m := abs32(modulus.sign)
		var r uint32
		if x.bits == nil {
			r = calc.PowModScalar(abs32(x.sign), power, m)
		} else {
			r = calc.PowModScalarDigits(x.bits, power, m)
		}
		if neg {
			return FromInt64(-int64(r)), nil
		}
		return FromUint32(r), nil
	}

	value := x.bits
	if value == nil && x.sign != 0 {
		value = []uint32{abs32(x.sign)}
	}

	var ob scratch.Buffer
	defer ob.Release()

	out := ob.Get(2 * len(modulus.bits))
	calc.PowMod(value, power, modulus.bits, out)
	return newFromDigits(out, neg), nil
}
