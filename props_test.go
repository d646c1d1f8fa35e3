package bignum

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/sync/errgroup"
)

func TestKnownValues(t *testing.T) {
	tt := assert.WrapTB(t)

	b, err := MinusOne.Bytes(false, false)
	tt.MustOK(err)
	tt.MustEqual([]byte{0xFF}, b)

	v := FromInt64(33022)
	for _, tc := range []struct {
		unsigned, bigEndian bool
		out                 []byte
	}{
		{false, false, []byte{0xFE, 0x80, 0x00}},
		{false, true, []byte{0x00, 0x80, 0xFE}},
		{true, false, []byte{0xFE, 0x80}},
		{true, true, []byte{0x80, 0xFE}},
	} {
		b, err := v.Bytes(tc.unsigned, tc.bigEndian)
		tt.MustOK(err)
		tt.MustEqual(tc.out, b)
	}

	tt.MustEqual("0", GCD(Zero, Zero).String())
	tt.MustEqual("5", GCD(Zero, FromInt64(5)).String())

	p, err := Pow(FromInt64(2), 10)
	tt.MustOK(err)
	tt.MustEqual("1024", p.String())
	p, err = ModPow(FromInt64(2), FromInt64(10), FromInt64(1000))
	tt.MustOK(err)
	tt.MustEqual("24", p.String())

	m := FromInt64(math.MinInt32)
	tt.MustAssert(m.Neg().Neg().Equal(m))

	tt.MustEqual(int64(3), FromInt64(-8).BitLength())
}

func TestAlgebraicProperties(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 500; i++ {
		x := FromBigInt(randomBig(globalRNG, 400))
		y := FromBigInt(randomBig(globalRNG, 400))
		z := FromBigInt(randomBig(globalRNG, 400))

		tt.MustEqual(x.Add(y).String(), y.Add(x).String())
		tt.MustEqual(x.Mul(y).String(), y.Mul(x).String())
		tt.MustEqual(x.Add(y).Add(z).String(), x.Add(y.Add(z)).String())
		tt.MustEqual(x.Mul(y).Mul(z).String(), x.Mul(y.Mul(z)).String())
		tt.MustEqual(x.Mul(y.Add(z)).String(), x.Mul(y).Add(x.Mul(z)).String())
		tt.MustEqual(x.String(), x.Add(y).Sub(y).String())
		tt.MustEqual(x.String(), x.Neg().Neg().String())
		tt.MustEqual("0", x.Add(x.Neg()).String())
	}
}

func TestNativeRoundTrips(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))
	for i := 0; i < 1000; i++ {
		i64 := int64(rng.Uint64())
		v, err := FromInt64(i64).Int64()
		tt.MustOK(err)
		tt.MustEqual(i64, v)

		u64 := rng.Uint64()
		u, err := FromUint64(u64).Uint64()
		tt.MustOK(err)
		tt.MustEqual(u64, u)

		i32 := int32(rng.Uint32())
		v32, err := From(i32).Int32()
		tt.MustOK(err)
		tt.MustEqual(i32, v32)
	}
}

func TestConcurrentReaders(t *testing.T) {
	tt := assert.WrapTB(t)

	x := One.Lsh(2000).Sub(FromInt64(12345))
	y := One.Lsh(700).Add(FromInt64(987))
	want := new(big.Int).Mul(x.AsBigInt(), y.AsBigInt())
	wantQuo := new(big.Int).Quo(x.AsBigInt(), y.AsBigInt())
	before := x.String()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				if err := checkEqual(x.Mul(y), want); err != nil {
					return err
				}
				if err := checkEqual(x.Quo(y), wantQuo); err != nil {
					return err
				}
				_ = x.Neg().Xor(y).Lsh(j)
			}
			return nil
		})
	}
	tt.MustOK(g.Wait())

	// Shared operands, including Neg's shared digits, are never written.
	tt.MustEqual(before, x.String())
}
