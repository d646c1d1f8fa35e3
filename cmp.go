package bignum

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/calc"
)

// Cmp compares x and y and returns -1, 0 or 1.
func (x Int) Cmp(y Int) int {
	x.assertValid()
	y.assertValid()

	if (x.sign < 0) != (y.sign < 0) {
		if x.sign < 0 {
			return -1
		}
		return 1
	}

	if x.bits == nil {
		if y.bits == nil {
			switch {
			case x.sign < y.sign:
				return -1
			case x.sign > y.sign:
				return 1
			}
			return 0
		}
		// y has the larger magnitude.
		return -int(y.sign)
	}
	if y.bits == nil {
		return int(x.sign)
	}

	c := calc.Compare(x.bits, y.bits)
	if x.sign < 0 {
		return -c
	}
	return c
}

// CmpInt64 compares x with a native integer without allocating.
func (x Int) CmpInt64(y int64) int {
	if x.bits == nil {
		switch {
		case int64(x.sign) < y:
			return -1
		case int64(x.sign) > y:
			return 1
		}
		return 0
	}
	if len(x.bits) > 2 {
		return int(x.sign)
	}
	v, err := x.Int64()
	if err != nil {
		return int(x.sign)
	}
	switch {
	case v < y:
		return -1
	case v > y:
		return 1
	}
	return 0
}

func (x Int) Equal(y Int) bool            { return x.Cmp(y) == 0 }
func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }

// CompareTo compares x with an arbitrary value, which must be an Int or
// *Int. Every Int compares greater than nil.
func (x Int) CompareTo(v any) (int, error) {
	switch y := v.(type) {
	case nil:
		return 1, nil
	case Int:
		return x.Cmp(y), nil
	case *Int:
		if y == nil {
			return 1, nil
		}
		return x.Cmp(*y), nil
	}
	return 0, errors.Wrapf(ErrArgument, "cannot compare Int with %T", v)
}

// Hash returns a hash of x consistent with Equal.
func (x Int) Hash() uint32 {
	if x.bits == nil {
		return uint32(x.sign)
	}
	h := uint32(x.sign)
	for i := len(x.bits) - 1; i >= 0; i-- {
		h = bits.RotateLeft32(h, 7) ^ x.bits[i]
	}
	return h
}

func Min(x, y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

func Max(x, y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Clamp limits x to [lo, hi]. It returns ErrOutOfRange if lo > hi.
func Clamp(x, lo, hi Int) (Int, error) {
	if lo.Cmp(hi) > 0 {
		return Int{}, errors.Wrapf(ErrOutOfRange, "clamp: %s > %s", lo, hi)
	}
	if x.Cmp(lo) < 0 {
		return lo, nil
	}
	if x.Cmp(hi) > 0 {
		return hi, nil
	}
	return x, nil
}
