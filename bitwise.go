package bignum

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/scratch"
)

// Bitwise operators behave as if x were held in infinite-precision two's
// complement, the same as math/big.

// twosComplementInto writes x in two's complement to buf, which must be
// digitLen+1 long, and returns the number of digits used. The result is the
// shortest form whose top bit is the sign bit.
func (x Int) twosComplementInto(buf []uint32) int {
	var ext uint32
	if x.bits == nil {
		buf = buf[:2]
		buf[0] = uint32(x.sign)
		if x.sign < 0 {
			ext = maxUint32
		}
	} else {
		copy(buf, x.bits)
		buf = buf[:len(x.bits)+1]
		if x.sign < 0 {
			makeTwosComplement(buf[:len(buf)-1])
			ext = maxUint32
		}
	}

	msd := len(buf) - 2
	for msd > 0 && buf[msd] == ext {
		msd--
	}
	if buf[msd]&signBit != ext&signBit {
		buf[msd+1] = ext
		return msd + 2
	}
	return msd + 1
}

func signExtension(x Int) uint32 {
	if x.sign < 0 {
		return maxUint32
	}
	return 0
}

type digitOp func(a, b uint32) uint32

func (x Int) bitwise(y Int, op digitOp) Int {
	var xb, yb, zb scratch.Buffer
	defer xb.Release()
	defer yb.Release()
	defer zb.Release()

	xd := xb.Get(x.digitLen() + 1)
	xd = xd[:x.twosComplementInto(xd)]
	yd := yb.Get(y.digitLen() + 1)
	yd = yd[:y.twosComplementInto(yd)]

	xext, yext := signExtension(x), signExtension(y)
	zd := zb.Get(max(len(xd), len(yd)))
	for i := range zd {
		xu, yu := xext, yext
		if i < len(xd) {
			xu = xd[i]
		}
		if i < len(yd) {
			yu = yd[i]
		}
		zd[i] = op(xu, yu)
	}
	return newFromTwosComplement(zd)
}

func (x Int) And(y Int) Int {
	x.assertValid()
	y.assertValid()
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	if x.bits == nil && y.bits == nil {
		return FromInt64(int64(x.sign & y.sign))
	}
	return x.bitwise(y, func(a, b uint32) uint32 { return a & b })
}

func (x Int) Or(y Int) Int {
	x.assertValid()
	y.assertValid()
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if x.bits == nil && y.bits == nil {
		return FromInt64(int64(x.sign | y.sign))
	}
	return x.bitwise(y, func(a, b uint32) uint32 { return a | b })
}

func (x Int) Xor(y Int) Int {
	x.assertValid()
	y.assertValid()
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if x.bits == nil && y.bits == nil {
		return FromInt64(int64(x.sign ^ y.sign))
	}
	return x.bitwise(y, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns x &^ y.
func (x Int) AndNot(y Int) Int {
	x.assertValid()
	y.assertValid()
	if x.IsZero() {
		return Zero
	}
	if y.IsZero() {
		return x
	}
	if x.bits == nil && y.bits == nil {
		return FromInt64(int64(x.sign &^ y.sign))
	}
	return x.bitwise(y, func(a, b uint32) uint32 { return a &^ b })
}

// Not returns ^x, which is -(x+1).
func (x Int) Not() Int {
	return x.Add(One).Neg()
}

// Lsh returns x << n. A negative n shifts right.
func (x Int) Lsh(n int) Int {
	x.assertValid()
	switch {
	case n == 0 || x.IsZero():
		return x
	case n == math.MinInt:
		return x.Rsh(math.MaxInt).Rsh(1)
	case n < 0:
		return x.Rsh(-n)
	}

	digitShift, smallShift := n/digitBits, uint(n%digitBits)
	xl := x.digitLen() + 1
	if digitShift > MaxDigits || xl+digitShift > MaxDigits {
		panic(errors.Wrapf(ErrOverflow, "shift by %d", n))
	}

	var xb, zb scratch.Buffer
	defer xb.Release()
	defer zb.Release()

	xd := xb.Get(xl)
	xd = xd[:x.twosComplementInto(xd)]
	ext := signExtension(x)

	zd := zb.Get(len(xd) + digitShift + 1)
	if smallShift == 0 {
		copy(zd[digitShift:], xd)
		zd[len(zd)-1] = ext
	} else {
		carryShift := digitBits - smallShift
		var carry uint32
		for i, d := range xd {
			zd[i+digitShift] = d<<smallShift | carry
			carry = d >> carryShift
		}
		zd[len(zd)-1] = ext<<smallShift | carry
	}
	return newFromTwosComplement(zd)
}

// Rsh returns x >> n, rounding towards negative infinity. A negative n
// shifts left.
func (x Int) Rsh(n int) Int {
	x.assertValid()
	switch {
	case n == 0 || x.IsZero():
		return x
	case n == math.MinInt:
		return x.Lsh(math.MaxInt).Lsh(1)
	case n < 0:
		return x.Lsh(-n)
	}

	if x.bits == nil {
		if n >= digitBits {
			if x.sign < 0 {
				return MinusOne
			}
			return Zero
		}
		return Int{sign: x.sign >> uint(n)}
	}

	digitShift, smallShift := n/digitBits, uint(n%digitBits)
	xl := len(x.bits)

	var xb, zb scratch.Buffer
	defer xb.Release()
	defer zb.Release()

	xd := xb.Get(xl)
	negx := x.magnitudeInto(xd)
	trackSignBit := false

	if negx {
		if n/digitBits >= xl {
			return MinusOne
		}
		makeTwosComplement(xd)
		if xd[xl-1] == 0 {
			// The sign bit fell off the top of xd, e.g. the magnitude
			// [0xFFFFFFFF 0xFFFFFFFF] becomes [1 0]. Shifting away the low
			// digit would then leave 0 instead of -1, so keep a digit for it.
			trackSignBit = true
		}
	} else if digitShift >= xl {
		return Zero
	}

	zl := xl - digitShift
	if trackSignBit {
		zl++
	}
	zd := zb.Get(zl)

	if smallShift == 0 {
		for i := xl - 1; i >= digitShift; i-- {
			zd[i-digitShift] = xd[i]
		}
	} else {
		carryShift := digitBits - smallShift
		var carry uint32
		for i := xl - 1; i >= digitShift; i-- {
			d := xd[i]
			if negx && i == xl-1 {
				zd[i-digitShift] = d>>smallShift | maxUint32<<carryShift
			} else {
				zd[i-digitShift] = d>>smallShift | carry
			}
			carry = d << carryShift
		}
	}

	if negx {
		if trackSignBit {
			zd[zl-1] = maxUint32
		}
		makeTwosComplement(zd)
	}
	return newFromDigits(zd, negx)
}

// signedDigitsInto writes the two's-complement digits of x to buf, which
// must be digitLen+1 long, and returns how many it used. The digits span x's
// own width, plus one all-ones digit when x is negative and its sign bit
// would otherwise fall outside that width: the magnitude 0xC0000001 becomes
// [0x3FFFFFFF 0xFFFFFFFF], not [0x3FFFFFFF].
func (x Int) signedDigitsInto(buf []uint32) (n int, neg bool) {
	xl := x.digitLen()
	neg = x.magnitudeInto(buf[:xl])
	if !neg {
		return xl, false
	}
	makeTwosComplement(buf[:xl])
	if buf[xl-1]&signBit == 0 {
		buf[xl] = maxUint32
		return xl + 1, true
	}
	return xl, true
}

// URsh returns x >>> n: a right shift of x's two's-complement digits that
// fills with zeros rather than the sign. The shift happens within the
// width of those digits, including the extra sign digit a negative x may
// need, so a negative x shifted by that width or more gives 0. A negative
// n shifts left.
func (x Int) URsh(n int) Int {
	x.assertValid()
	switch {
	case n == 0 || x.IsZero():
		return x
	case n == math.MinInt:
		return x.Lsh(math.MaxInt).Lsh(1)
	case n < 0:
		return x.Lsh(-n)
	}

	var xb, zb scratch.Buffer
	defer xb.Release()
	defer zb.Release()

	xd := xb.Get(x.digitLen() + 1)
	xl, negx := x.signedDigitsInto(xd)
	xd = xd[:xl]

	digitShift, smallShift := n/digitBits, uint(n%digitBits)
	if digitShift >= xl {
		return Zero
	}

	zl := xl - digitShift
	zd := zb.Get(zl)
	if smallShift == 0 {
		copy(zd, xd[digitShift:])
	} else {
		carryShift := digitBits - smallShift
		var carry uint32
		for i := xl - 1; i >= digitShift; i-- {
			d := xd[i]
			zd[i-digitShift] = d>>smallShift | carry
			carry = d << carryShift
		}
	}

	if negx && zd[zl-1]&signBit != 0 {
		makeTwosComplement(zd)
	} else {
		negx = false
	}
	return newFromDigits(zd, negx)
}

// rotateWidth is the width in bits that reduces a rotation amount: all of
// x's digits, or 32 for an inline value.
func (x Int) rotateWidth() int {
	return x.digitLen() * digitBits
}

// RotateLeft rotates the two's-complement digits of x left by n bits. A
// negative n rotates right.
func (x Int) RotateLeft(n int) Int {
	x.assertValid()
	n %= x.rotateWidth()
	if n == 0 {
		return x
	}
	return x.rotate(n)
}

// RotateRight rotates the two's-complement digits of x right by n bits. A
// negative n rotates left.
func (x Int) RotateRight(n int) Int {
	x.assertValid()
	n %= x.rotateWidth()
	if n == 0 {
		return x
	}
	return x.rotate(-n)
}

// rotate rotates left by n, or right by -n, within the digits written by
// signedDigitsInto. |n| is less than rotateWidth.
func (x Int) rotate(n int) Int {
	var xb, zb scratch.Buffer
	defer xb.Release()
	defer zb.Release()

	xd := xb.Get(x.digitLen() + 1)
	xl, negx := x.signedDigitsInto(xd)
	xd = xd[:xl]

	if n < 0 {
		n += xl * digitBits
	}
	digitShift, smallShift := n/digitBits, uint(n%digitBits)

	zd := zb.Get(xl)
	for i, d := range xd {
		v := d << smallShift
		if smallShift != 0 {
			prev := xd[(i+xl-1)%xl]
			v |= prev >> (digitBits - smallShift)
		}
		zd[(i+digitShift)%xl] = v
	}

	if negx && zd[xl-1]&signBit != 0 {
		makeTwosComplement(zd)
	} else {
		negx = false
	}
	return newFromDigits(zd, negx)
}

// PopCount returns the number of set bits in x's two's-complement digits.
// Inline values count within 32 bits, so PopCount(-1) is 32.
func (x Int) PopCount() int64 {
	if x.bits == nil {
		return int64(bits.OnesCount32(uint32(x.sign)))
	}

	var n int64
	if x.sign > 0 {
		for _, d := range x.bits {
			n += int64(bits.OnesCount32(d))
		}
		return n
	}

	// Negate digit by digit: ^d+1 until the carry is absorbed, then ^d.
	i := 0
	for i < len(x.bits) {
		part := ^x.bits[i] + 1
		n += int64(bits.OnesCount32(part))
		i++
		if part != 0 {
			break
		}
	}
	for ; i < len(x.bits); i++ {
		n += int64(bits.OnesCount32(^x.bits[i]))
	}
	return n
}

// TrailingZeros returns the number of trailing zero bits. Zero has 32.
func (x Int) TrailingZeros() int64 {
	if x.bits == nil {
		return int64(bits.TrailingZeros32(uint32(x.sign)))
	}
	// Negation doesn't move the lowest set bit.
	var n int64
	part := x.bits[0]
	for i := 1; part == 0 && i < len(x.bits); i++ {
		part = x.bits[i]
		n += digitBits
	}
	return n + int64(bits.TrailingZeros32(part))
}

// LeadingZeros returns the number of leading zero bits in x's top digit.
// Negative values have none, and zero has 32.
func (x Int) LeadingZeros() int64 {
	if x.bits == nil {
		return int64(bits.LeadingZeros32(uint32(x.sign)))
	}
	if x.sign < 0 {
		return 0
	}
	return int64(bits.LeadingZeros32(x.bits[len(x.bits)-1]))
}

// BitLength returns the number of bits needed to hold x in two's
// complement, excluding the sign bit. This is the bit length of |x|, except
// for negative powers of two which need one bit fewer: BitLength(-8) is 3.
// Zero and -1 both have a bit length of 0.
func (x Int) BitLength() int64 {
	var high uint32
	var n int
	if x.bits == nil {
		n, high = 1, abs32(x.sign)
	} else {
		n, high = len(x.bits), x.bits[len(x.bits)-1]
	}

	length := int64(n)*digitBits - int64(bits.LeadingZeros32(high))
	if x.sign >= 0 {
		return length
	}

	if high&(high-1) != 0 {
		return length
	}
	for i := n - 2; i >= 0; i-- {
		if x.bits[i] != 0 {
			return length
		}
	}
	return length - 1
}

// Bit returns the value of bit i of x's two's-complement form. Bit panics
// if i is negative.
func (x Int) Bit(i int) uint {
	if i < 0 {
		panic(errors.Wrapf(ErrOutOfRange, "negative bit index %d", i))
	}
	if x.bits == nil {
		if i >= digitBits {
			i = digitBits - 1
		}
		return uint(x.sign>>uint(i)) & 1
	}

	j, k := i/digitBits, uint(i%digitBits)
	if x.sign > 0 {
		if j >= len(x.bits) {
			return 0
		}
		return uint(x.bits[j]>>k) & 1
	}

	// -m == ^(m-1), so take the bit of m-1 and invert it.
	if j >= len(x.bits) {
		return 1
	}
	d := x.bits[j]
	borrow := true
	for _, lower := range x.bits[:j] {
		if lower != 0 {
			borrow = false
			break
		}
	}
	if borrow {
		d--
	}
	return uint(^d>>k) & 1
}
