package bignum

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
	"github.com/shopspring/decimal"
)

func TestInt64Limits(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := FromBigInt(minBigInt64).Int64()
	tt.MustOK(err)
	tt.MustEqual(int64(math.MinInt64), v)

	v, err = FromBigInt(maxBigInt64).Int64()
	tt.MustOK(err)
	tt.MustEqual(int64(math.MaxInt64), v)

	_, err = FromBigInt(maxBigInt64).Inc().Int64()
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = FromBigInt(minBigInt64).Dec().Int64()
	tt.MustAssert(errors.Is(err, ErrOverflow))

	u, err := FromBigInt(maxBigUint64).Uint64()
	tt.MustOK(err)
	tt.MustEqual(uint64(math.MaxUint64), u)

	_, err = FromBigInt(maxBigUint64).Inc().Uint64()
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = MinusOne.Uint64()
	tt.MustAssert(errors.Is(err, ErrOverflow))

	tt.MustAssert(FromBigInt(minBigInt64).IsInt64())
	tt.MustAssert(!FromBigInt(minBigInt64).IsUint64())
	tt.MustAssert(FromBigInt(maxBigUint64).IsUint64())
}

func TestChecked(t *testing.T) {
	tt := assert.WrapTB(t)

	i8, err := FromInt64(-128).Int8()
	tt.MustOK(err)
	tt.MustEqual(int8(-128), i8)
	_, err = FromInt64(128).Int8()
	tt.MustAssert(errors.Is(err, ErrOverflow))

	u16, err := FromInt64(65535).Uint16()
	tt.MustOK(err)
	tt.MustEqual(uint16(65535), u16)
	_, err = FromInt64(65536).Uint16()
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = MinusOne.Uint8()
	tt.MustAssert(errors.Is(err, ErrOverflow))

	i32, err := FromInt64(math.MinInt32).Int32()
	tt.MustOK(err)
	tt.MustEqual(int32(math.MinInt32), i32)

	_, err = Checked[int32](ints("0x1_0000_0000_0000_0000_0000"))
	tt.MustAssert(errors.Is(err, ErrOverflow))
}

func TestSaturatingTruncating(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(int8(127), Saturating[int8](FromInt64(1000)))
	tt.MustEqual(int8(-128), Saturating[int8](FromInt64(-1000)))
	tt.MustEqual(int8(5), Saturating[int8](FromInt64(5)))
	tt.MustEqual(uint8(0), Saturating[uint8](FromInt64(-1)))
	tt.MustEqual(uint64(math.MaxUint64), Saturating[uint64](ints("0x1_0000_0000_0000_0000_0000")))
	tt.MustEqual(int64(math.MinInt64), Saturating[int64](ints("-0x1_0000_0000_0000_0000_0000")))

	tt.MustEqual(uint8(0xFF), Truncating[uint8](MinusOne))
	tt.MustEqual(int8(-1), Truncating[int8](FromInt64(0xFFFF)))
	tt.MustEqual(uint32(0x89ABCDEF), Truncating[uint32](ints("0x1234_5678_89AB_CDEF")))
	tt.MustEqual(int64(-1), ints("0xFFFF_FFFF_FFFF_FFFF").AsInt64())
	tt.MustEqual(uint64(1), ints("0x1_0000_0000_0000_0001").AsUint64())
	tt.MustEqual(uint64(math.MaxUint64), MinusOne.AsUint64())
}

func TestFromGeneric(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("-5", From(int8(-5)).String())
	tt.MustEqual("255", From(uint8(255)).String())
	tt.MustEqual("18446744073709551615", From(uint64(math.MaxUint64)).String())
	tt.MustEqual("-9223372036854775808", From(int64(math.MinInt64)).String())
}

func TestFromAny(t *testing.T) {
	five := FromInt64(5)
	for idx, tc := range []struct {
		in  any
		out string
		err error
	}{
		{int(-1), "-1", nil},
		{int8(-2), "-2", nil},
		{int16(-3), "-3", nil},
		{int32(-4), "-4", nil},
		{int64(-5), "-5", nil},
		{uint(1), "1", nil},
		{uint8(2), "2", nil},
		{uint16(3), "3", nil},
		{uint32(4), "4", nil},
		{uint64(math.MaxUint64), "18446744073709551615", nil},
		{uintptr(6), "6", nil},
		{float32(1.5), "1", nil},
		{float64(-2.9), "-2", nil},
		{big.NewInt(42), "42", nil},
		{five, "5", nil},
		{&five, "5", nil},
		{"5", "", ErrNotSupported},
		{(*big.Int)(nil), "", ErrNotSupported},
		{math.Inf(1), "", ErrOverflow},
	} {
		t.Run(fmt.Sprintf("%d/%T", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromAny(tc.in)
			if tc.err != nil {
				tt.MustAssert(errors.Is(err, tc.err), "expected %v, found %v", tc.err, err)
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
		})
	}
}

func TestFloat(t *testing.T) {
	for idx, tc := range []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.999, "0"},
		{-0.999, "0"},
		{1, "1"},
		{-1.5, "-1"},
		{2147483648, "2147483648"},
		{-2147483648, "-2147483648"},
		{1 << 53, "9007199254740992"},
		{1e20, "100000000000000000000"},
		{-1e20, "-100000000000000000000"},
		{math.MaxFloat64, new(big.Int).Lsh(new(big.Int).SetUint64(1<<53-1), 1024-53).String()},
		{math.SmallestNonzeroFloat64, "0"},
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := FromFloat64(tc.in)
			tt.MustOK(err)
			tt.MustOK(v.validate())
			tt.MustEqual(tc.out, v.String())

			// Whole floats survive the round trip.
			if tc.in == math.Trunc(tc.in) {
				tt.MustAssert(tc.in == v.Float64(), "expected %g, found %g", tc.in, v.Float64())
			}
		})
	}
}

func TestFloatNonFinite(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat64(f)
		tt.MustAssert(errors.Is(err, ErrOverflow))
	}
	_, err := FromFloat32(float32(math.Inf(1)))
	tt.MustAssert(errors.Is(err, ErrOverflow))
}

func TestFloat64Infinity(t *testing.T) {
	tt := assert.WrapTB(t)
	huge := One.Lsh(1100)
	tt.MustAssert(math.IsInf(huge.Float64(), 1))
	tt.MustAssert(math.IsInf(huge.Neg().Float64(), -1))
	tt.MustAssert(math.IsInf(float64(huge.Float32()), 1))
	tt.MustEqual(float32(1<<40), One.Lsh(40).Float32())
}

func TestDecimal(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := FromDecimal(decimal.RequireFromString("-123.999"))
	tt.MustOK(err)
	tt.MustEqual("-123", v.String())

	v, err = FromDecimal(decimal.New(5, 20))
	tt.MustOK(err)
	tt.MustEqual("500000000000000000000", v.String())

	v, err = FromDecimal(decimal.New(0, 40))
	tt.MustOK(err)
	tt.MustEqual("0", v.String())

	_, err = FromDecimal(decimal.New(1, 29))
	tt.MustAssert(errors.Is(err, ErrOverflow))

	max96 := new(big.Int).Sub(new(big.Int).Lsh(big1, 96), big1)
	v, err = FromDecimal(decimal.NewFromBigInt(max96, 0))
	tt.MustOK(err)
	tt.MustEqual(max96.String(), v.String())

	_, err = FromDecimal(decimal.NewFromBigInt(new(big.Int).Lsh(big1, 96), 0))
	tt.MustAssert(errors.Is(err, ErrOverflow))

	d, err := FromBigInt(max96).Neg().Decimal()
	tt.MustOK(err)
	tt.MustEqual("-"+max96.String(), d.String())

	d, err = FromInt64(-42).Decimal()
	tt.MustOK(err)
	tt.MustAssert(d.Equal(decimal.NewFromInt(-42)))

	_, err = One.Lsh(96).Decimal()
	tt.MustAssert(errors.Is(err, ErrOverflow))
}

func TestLog(t *testing.T) {
	tt := assert.WrapTB(t)

	near := func(want, got float64) {
		tt.MustAssert(math.Abs(want-got) < 1e-9, "expected %v, found %v", want, got)
	}

	near(10, Log(FromInt64(1024), 2))
	near(3, Log10(FromInt64(1000)))
	near(math.Log(12345), Ln(FromInt64(12345)))
	near(200, Log(One.Lsh(200), 2))
	near(200*math.Log10(2), Log10(One.Lsh(200)))

	tt.MustAssert(math.IsNaN(Log(MinusOne, 2)))
	tt.MustAssert(math.IsNaN(Log(FromInt64(5), 1)))
	tt.MustAssert(math.IsInf(Log(Zero, 2), -1))
	tt.MustEqual(float64(0), Log(One, math.Inf(1)))

	l, err := Log2(One.Lsh(100))
	tt.MustOK(err)
	tt.MustEqual(int64(100), l)

	l, err = Log2(FromInt64(1023))
	tt.MustOK(err)
	tt.MustEqual(int64(9), l)

	l, err = Log2(Zero)
	tt.MustOK(err)
	tt.MustEqual(int64(0), l)

	_, err = Log2(MinusOne)
	tt.MustAssert(errors.Is(err, ErrOutOfRange))
}
