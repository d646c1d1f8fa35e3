package bignum

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/calc"
)

// Int is an arbitrary-precision signed integer.
//
// Int is a value type and is immutable; all operations return new values and
// any number of goroutines may read the same Int. The zero value is 0.
//
// Values that fit in (math.MinInt32, math.MaxInt32] are held inline in sign
// with a nil bits slice. Everything else, including math.MinInt32, keeps its
// magnitude in bits (least significant digit first, no leading zero digits)
// and its sign, +1 or -1, in sign.
type Int struct {
	sign int32
	bits []uint32
}

// newFromDigits builds an Int from a little-endian magnitude. Leading zero
// digits are trimmed and small values collapse to the inline form. digits
// is copied, so it may be scratch storage.
func newFromDigits(digits []uint32, negative bool) Int {
	if len(digits) > MaxDigits {
		panic(errors.Wrapf(ErrOverflow, "%d digits", len(digits)))
	}

	n := calc.ActualLength(digits)
	if inline, ok := collapse(digits[:n], negative); ok {
		return inline
	}

	out := make([]uint32, n)
	copy(out, digits)
	return Int{sign: signOf(negative), bits: out}
}

// ownedSlack is how many trimmed digits newFromDigitsOwned tolerates before
// it copies rather than keeping the buffer.
const ownedSlack = 1

// newFromDigitsOwned is newFromDigits for a freshly allocated buffer that
// nothing else references. The buffer becomes the Int's storage unless
// trimming leaves more than ownedSlack digits unused, in which case the
// magnitude is copied out so the Int never pins the larger array.
func newFromDigitsOwned(digits []uint32, negative bool) Int {
	if len(digits) > MaxDigits {
		panic(errors.Wrapf(ErrOverflow, "%d digits", len(digits)))
	}

	n := calc.ActualLength(digits)
	if inline, ok := collapse(digits[:n], negative); ok {
		return inline
	}
	if len(digits)-n > ownedSlack {
		out := make([]uint32, n)
		copy(out, digits)
		return Int{sign: signOf(negative), bits: out}
	}
	return Int{sign: signOf(negative), bits: digits[:n:n]}
}

func collapse(digits []uint32, negative bool) (Int, bool) {
	switch {
	case len(digits) == 0:
		return Int{}, true
	case len(digits) == 1 && digits[0] < signBit:
		v := int32(digits[0])
		if negative {
			v = -v
		}
		return Int{sign: v}, true
	case len(digits) == 1 && digits[0] == signBit && negative:
		return minInt32Int, true
	}
	return Int{}, false
}

// newFromTwosComplement builds an Int from little-endian two's-complement
// digits, taking the sign from the top bit. digits is overwritten with the
// magnitude when negative.
func newFromTwosComplement(digits []uint32) Int {
	negative := len(digits) > 0 && digits[len(digits)-1]&signBit != 0
	if negative {
		makeTwosComplement(digits)
	}
	return newFromDigits(digits, negative)
}

// makeTwosComplement negates digits in place: NOT, then add one.
func makeTwosComplement(digits []uint32) {
	i := 0
	for ; i < len(digits); i++ {
		digits[i] = ^digits[i] + 1
		if digits[i] != 0 {
			i++
			break
		}
	}
	for ; i < len(digits); i++ {
		digits[i] = ^digits[i]
	}
}

func signOf(negative bool) int32 {
	if negative {
		return -1
	}
	return 1
}

// digitLen is the number of digits magnitudeInto writes.
func (x Int) digitLen() int {
	if x.bits == nil {
		return 1
	}
	return len(x.bits)
}

// magnitudeInto writes |x| to buf, which must be at least digitLen long,
// and reports whether x is negative.
func (x Int) magnitudeInto(buf []uint32) bool {
	if x.bits == nil {
		if x.sign < 0 {
			buf[0] = uint32(-x.sign)
		} else {
			buf[0] = uint32(x.sign)
		}
	} else {
		copy(buf, x.bits)
	}
	return x.sign < 0
}

// abs32 is the magnitude of an inline value.
func abs32(v int32) uint32 {
	if v < 0 {
		return uint32(-v)
	}
	return uint32(v)
}

func (x Int) validate() error {
	if x.bits == nil {
		if x.sign == minInt32 {
			return errors.New("bignum: math.MinInt32 held inline")
		}
		return nil
	}
	switch {
	case x.sign != 1 && x.sign != -1:
		return errors.Errorf("bignum: array form with sign %d", x.sign)
	case len(x.bits) == 0:
		return errors.New("bignum: empty digits")
	case x.bits[len(x.bits)-1] == 0:
		return errors.Errorf("bignum: leading zero digit in %d digits", len(x.bits))
	case len(x.bits) == 1 && x.bits[0] < signBit:
		return errors.Errorf("bignum: %d should be inline", x.bits[0])
	case len(x.bits) > MaxDigits:
		return errors.Errorf("bignum: %d digits", len(x.bits))
	}
	return nil
}

func (x Int) assertValid() {
	if assertEnabled {
		if err := x.validate(); err != nil {
			panic(err)
		}
	}
}

func FromInt64(v int64) Int {
	if v > minInt32 && v <= maxInt32 {
		return Int{sign: int32(v)}
	}
	if v == minInt32 {
		return minInt32Int
	}

	neg := v < 0
	m := uint64(v)
	if neg {
		m = ^m + 1
	}
	if m <= maxUint32 {
		return Int{sign: signOf(neg), bits: []uint32{uint32(m)}}
	}
	return Int{sign: signOf(neg), bits: []uint32{uint32(m), uint32(m >> 32)}}
}

func FromUint64(v uint64) Int {
	if v <= maxInt32 {
		return Int{sign: int32(v)}
	}
	if v <= maxUint32 {
		return Int{sign: 1, bits: []uint32{uint32(v)}}
	}
	return Int{sign: 1, bits: []uint32{uint32(v), uint32(v >> 32)}}
}

func FromInt32(v int32) Int   { return FromInt64(int64(v)) }
func FromUint32(v uint32) Int { return FromUint64(uint64(v)) }
func FromInt(v int) Int       { return FromInt64(int64(v)) }
func FromUint(v uint) Int     { return FromUint64(uint64(v)) }

// Sign returns -1, 0 or 1.
func (x Int) Sign() int {
	if x.bits != nil {
		return int(x.sign)
	}
	switch {
	case x.sign > 0:
		return 1
	case x.sign < 0:
		return -1
	}
	return 0
}

func (x Int) IsZero() bool { return x.bits == nil && x.sign == 0 }
func (x Int) IsOne() bool  { return x.bits == nil && x.sign == 1 }

func (x Int) IsEven() bool {
	if x.bits == nil {
		return x.sign&1 == 0
	}
	return x.bits[0]&1 == 0
}

// IsPowerOfTwo reports whether x is a positive power of two.
func (x Int) IsPowerOfTwo() bool {
	if x.bits == nil {
		return x.sign > 0 && x.sign&(x.sign-1) == 0
	}
	if x.sign != 1 {
		return false
	}
	top := len(x.bits) - 1
	if bits.OnesCount32(x.bits[top]) != 1 {
		return false
	}
	for i := top - 1; i >= 0; i-- {
		if x.bits[i] != 0 {
			return false
		}
	}
	return true
}

func (x Int) Neg() Int {
	x.assertValid()
	if x.bits == nil {
		return Int{sign: -x.sign}
	}
	return Int{sign: -x.sign, bits: x.bits}
}

func (x Int) Abs() Int {
	x.assertValid()
	if x.sign >= 0 {
		return x
	}
	return x.Neg()
}

// CopySign returns x with the sign of s. Zero counts as positive for both.
func CopySign(x, s Int) Int {
	if (x.sign < 0) == (s.sign < 0) {
		return x
	}
	return x.Neg()
}
