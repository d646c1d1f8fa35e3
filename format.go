package bignum

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// FromBigInt creates an Int from a big.Int.
func FromBigInt(v *big.Int) Int {
	words := v.Bits()
	neg := v.Sign() < 0

	switch intSize {
	case 64:
		digits := make([]uint32, 2*len(words))
		for i, w := range words {
			digits[2*i] = uint32(w)
			digits[2*i+1] = uint32(uint64(w) >> 32)
		}
		return newFromDigitsOwned(digits, neg)

	case 32:
		digits := make([]uint32, len(words))
		for i, w := range words {
			digits[i] = uint32(w)
		}
		return newFromDigitsOwned(digits, neg)

	default:
		panic("bignum: unsupported bit size")
	}
}

// FromString creates an Int from a string of decimal digits with an
// optional sign. Only base 10 is currently supported.
func FromString(s string) (Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, errors.Errorf("bignum: string %q invalid", s)
	}
	return FromBigInt(b), nil
}

// IntoBigInt copies x into b, allowing you to retain and recycle memory.
func (x Int) IntoBigInt(b *big.Int) {
	if x.bits == nil {
		b.SetInt64(int64(x.sign))
		return
	}

	var words []big.Word
	switch intSize {
	case 64:
		words = make([]big.Word, (len(x.bits)+1)/2)
		for i, d := range x.bits {
			words[i/2] |= big.Word(d) << (32 * uint(i%2))
		}
	case 32:
		words = make([]big.Word, len(x.bits))
		for i, d := range x.bits {
			words[i] = big.Word(d)
		}
	default:
		panic("bignum: unsupported bit size")
	}

	b.SetBits(words)
	if x.sign < 0 {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies x into it.
func (x Int) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

func (x Int) String() string {
	if x.bits == nil {
		return fmt.Sprint(x.sign)
	}
	// FIXME: big.Int's conversion is good enough for now, but it allocates a
	// copy of x first.
	return x.AsBigInt().String()
}

func (x Int) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted decimal string, or a bare JSON number
// without a fraction or exponent.
func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
