package bignum

import (
	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/scratch"
)

// FromBytes creates an Int from its two's-complement bytes, or from plain
// magnitude bytes if unsigned is set. An empty slice is 0.
func FromBytes(b []byte, unsigned, bigEndian bool) (Int, error) {
	n := len(b)
	if n == 0 {
		return Zero, nil
	}

	// at returns the i'th least significant byte.
	at := func(i int) byte {
		if bigEndian {
			return b[len(b)-1-i]
		}
		return b[i]
	}

	msb := at(n - 1)
	negative := !unsigned && msb&0x80 != 0
	if msb == 0 {
		for n > 0 && at(n-1) == 0 {
			n--
		}
		if n == 0 {
			return Zero, nil
		}
	}

	dl := (n + 3) / 4
	if dl > MaxDigits {
		return Int{}, errors.Wrapf(ErrOverflow, "%d bytes", len(b))
	}

	var db scratch.Buffer
	defer db.Release()
	digits := db.Get(dl)

	if negative {
		// Pad a partial top digit with the sign.
		digits[dl-1] = maxUint32
	}
	for i := 0; i < n; i++ {
		shift := 8 * uint(i%4)
		d := &digits[i/4]
		*d = *d&^(0xFF<<shift) | uint32(at(i))<<shift
	}

	if negative {
		makeTwosComplement(digits)
	}
	return newFromDigits(digits, negative), nil
}

// Bytes returns x as two's-complement bytes, or as magnitude bytes if
// unsigned is set, using as few bytes as will read back as the same value
// with FromBytes. Zero is a single 0 byte. Bytes returns ErrOverflow if
// unsigned is set and x is negative.
func (x Int) Bytes(unsigned, bigEndian bool) ([]byte, error) {
	n, err := x.ByteCount(unsigned)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	x.putBytes(out, x.byteLayout(unsigned), bigEndian)
	return out, nil
}

// ByteCount returns the length of the slice Bytes would return.
func (x Int) ByteCount(unsigned bool) (int, error) {
	if x.IsZero() {
		return 1, nil
	}
	if unsigned && x.sign < 0 {
		return 0, errors.Wrapf(ErrOverflow, "negative value %s as unsigned bytes", x)
	}
	return x.byteLayout(unsigned).length, nil
}

// WriteBytes writes the bytes Bytes would return into the start of dst and
// returns how many there are. If dst is too short, nothing is written and
// WriteBytes returns the length needed along with ErrShortBuffer.
func (x Int) WriteBytes(dst []byte, unsigned, bigEndian bool) (int, error) {
	n, err := x.ByteCount(unsigned)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return n, ErrShortBuffer
	}
	x.putBytes(dst[:n], x.byteLayout(unsigned), bigEndian)
	return n, nil
}

type byteLayout struct {
	length int

	highByte  byte
	highDigit uint32 // top digit, already negated if x < 0
	msbIndex  int    // index of the top significant byte within highDigit
	extraByte bool   // a sign byte follows highDigit

	// Index of the lowest non-zero digit. Negating digits below and at this
	// index carries; above it, it doesn't.
	nonZero int
}

func (x Int) byteLayout(unsigned bool) (l byteLayout) {
	switch {
	case x.IsZero():
		return byteLayout{length: 1}

	case x.bits == nil:
		if x.sign < 0 {
			l.highByte = 0xFF
		}
		l.highDigit = uint32(x.sign)

	case x.sign < 0:
		l.highByte = 0xFF
		for x.bits[l.nonZero] == 0 {
			l.nonZero++
		}
		top := len(x.bits) - 1
		l.highDigit = ^x.bits[top]
		if top == l.nonZero {
			l.highDigit++
		}

	default:
		l.highDigit = x.bits[len(x.bits)-1]
	}

	var msb byte
	switch {
	case byte(l.highDigit>>24) != l.highByte:
		msb, l.msbIndex = byte(l.highDigit>>24), 3
	case byte(l.highDigit>>16) != l.highByte:
		msb, l.msbIndex = byte(l.highDigit>>16), 2
	case byte(l.highDigit>>8) != l.highByte:
		msb, l.msbIndex = byte(l.highDigit>>8), 1
	default:
		msb, l.msbIndex = byte(l.highDigit), 0
	}

	l.extraByte = !unsigned && msb&0x80 != l.highByte&0x80
	l.length = l.msbIndex + 1
	if l.extraByte {
		l.length++
	}
	if x.bits != nil {
		l.length += 4 * (len(x.bits) - 1)
	}
	return l
}

func (x Int) putBytes(dst []byte, l byteLayout, bigEndian bool) {
	if x.IsZero() {
		dst[0] = 0
		return
	}

	pos, step := 0, 1
	if bigEndian {
		pos, step = len(dst)-1, -1
	}
	put := func(v byte) {
		dst[pos] = v
		pos += step
	}

	if x.bits != nil {
		for i := 0; i < len(x.bits)-1; i++ {
			d := x.bits[i]
			if x.sign < 0 {
				d = ^d
				if i <= l.nonZero {
					d++
				}
			}
			put(byte(d))
			put(byte(d >> 8))
			put(byte(d >> 16))
			put(byte(d >> 24))
		}
	}

	for i := 0; i <= l.msbIndex; i++ {
		put(byte(l.highDigit >> (8 * uint(i))))
	}
	if l.extraByte {
		put(l.highByte)
	}
}
