package bignum

import (
	"math/big"
	"unsafe"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Int64 returns x as an int64, or ErrOverflow if it doesn't fit.
func (x Int) Int64() (int64, error) {
	if x.bits == nil {
		return int64(x.sign), nil
	}
	if len(x.bits) > 2 {
		return 0, errors.Wrapf(ErrOverflow, "%s as int64", x)
	}

	u := x.low64()
	v := int64(u)
	if x.sign < 0 {
		v = -v
	}
	// Both signs agreeing rules out wrap-around, including -1<<63.
	if (v > 0 && x.sign > 0) || (v < 0 && x.sign < 0) {
		return v, nil
	}
	return 0, errors.Wrapf(ErrOverflow, "%s as int64", x)
}

// Uint64 returns x as a uint64, or ErrOverflow if it doesn't fit.
func (x Int) Uint64() (uint64, error) {
	if x.bits == nil {
		if x.sign < 0 {
			return 0, errors.Wrapf(ErrOverflow, "%s as uint64", x)
		}
		return uint64(x.sign), nil
	}
	if x.sign < 0 || len(x.bits) > 2 {
		return 0, errors.Wrapf(ErrOverflow, "%s as uint64", x)
	}
	return x.low64(), nil
}

// low64 is the low 64 bits of |x|.
func (x Int) low64() uint64 {
	if x.bits == nil {
		return uint64(abs32(x.sign))
	}
	v := uint64(x.bits[0])
	if len(x.bits) > 1 {
		v |= uint64(x.bits[1]) << 32
	}
	return v
}

func (x Int) Int32() (int32, error)   { return Checked[int32](x) }
func (x Int) Int16() (int16, error)   { return Checked[int16](x) }
func (x Int) Int8() (int8, error)     { return Checked[int8](x) }
func (x Int) Int() (int, error)       { return Checked[int](x) }
func (x Int) Uint32() (uint32, error) { return Checked[uint32](x) }
func (x Int) Uint16() (uint16, error) { return Checked[uint16](x) }
func (x Int) Uint8() (uint8, error)   { return Checked[uint8](x) }
func (x Int) Uint() (uint, error)     { return Checked[uint](x) }

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	_, err := x.Int64()
	return err == nil
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool {
	_, err := x.Uint64()
	return err == nil
}

// AsInt64 truncates x to its low 64 two's-complement bits, as a conversion
// between Go integer types would.
func (x Int) AsInt64() int64 {
	return int64(x.AsUint64())
}

// AsUint64 truncates x to its low 64 two's-complement bits.
func (x Int) AsUint64() uint64 {
	v := x.low64()
	if x.sign < 0 {
		v = ^v + 1
	}
	return v
}

// From creates an Int from any Go integer type.
func From[T constraints.Integer](v T) Int {
	if isSigned[T]() {
		return FromInt64(int64(v))
	}
	return FromUint64(uint64(v))
}

// Checked converts x to T, returning ErrOverflow if it doesn't fit.
func Checked[T constraints.Integer](x Int) (T, error) {
	if isSigned[T]() {
		v, err := x.Int64()
		if err != nil {
			return 0, err
		}
		out, err := safecast.Conv[T](v)
		if err != nil {
			return 0, errors.Wrapf(ErrOverflow, "%s as %T", x, out)
		}
		return out, nil
	}

	v, err := x.Uint64()
	if err != nil {
		return 0, err
	}
	out, err := safecast.Conv[T](v)
	if err != nil {
		return 0, errors.Wrapf(ErrOverflow, "%s as %T", x, out)
	}
	return out, nil
}

// Saturating converts x to T, clamping it to T's range.
func Saturating[T constraints.Integer](x Int) T {
	v, err := Checked[T](x)
	if err == nil {
		return v
	}
	lo, hi := limits[T]()
	if x.sign < 0 {
		return lo
	}
	return hi
}

// Truncating converts x to T, keeping only the low bits of x's two's
// complement form.
func Truncating[T constraints.Integer](x Int) T {
	return T(x.AsUint64())
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

func limits[T constraints.Integer]() (lo, hi T) {
	var zero T
	if !isSigned[T]() {
		return 0, ^zero
	}
	size := unsafe.Sizeof(zero) * 8
	hi = T(^uint64(0) >> (65 - size))
	return ^hi, hi
}

// FromAny converts any Go integer, float, *big.Int, Int or *Int to an Int.
// It returns ErrNotSupported for anything else.
func FromAny(v any) (Int, error) {
	switch v := v.(type) {
	case Int:
		return v, nil
	case *Int:
		if v == nil {
			return Int{}, errors.Wrap(ErrNotSupported, "nil *Int")
		}
		return *v, nil
	case int:
		return From(v), nil
	case int8:
		return From(v), nil
	case int16:
		return From(v), nil
	case int32:
		return From(v), nil
	case int64:
		return From(v), nil
	case uint:
		return From(v), nil
	case uint8:
		return From(v), nil
	case uint16:
		return From(v), nil
	case uint32:
		return From(v), nil
	case uint64:
		return From(v), nil
	case uintptr:
		return From(v), nil
	case float32:
		return FromFloat32(v)
	case float64:
		return FromFloat64(v)
	case *big.Int:
		if v == nil {
			return Int{}, errors.Wrap(ErrNotSupported, "nil *big.Int")
		}
		return FromBigInt(v), nil
	}
	return Int{}, errors.Wrapf(ErrNotSupported, "from %T", v)
}
