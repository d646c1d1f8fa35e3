package bignum

import (
	"math/big"
)

const (
	// MaxDigits is the largest number of 32-bit digits an Int may hold. It
	// keeps the byte length of the magnitude inside the limit of a single
	// array allocation on 32-bit platforms.
	MaxDigits = 0x7FFFFFC7 / 4

	digitBits = 32
	signBit   = 0x80000000
	maxUint32 = 1<<32 - 1

	minInt32 = -1 << 31
	maxInt32 = 1<<31 - 1

	// Any Int longer than this is outside the exponent range of a float64.
	infinityLength = 1024 / digitBits

	// Largest magnitude, in bits, that converts to or from decimal.Decimal.
	decimalBits = 96

	intSize = 32 << (^uint(0) >> 63)
)

var (
	Zero     = Int{}
	One      = Int{sign: 1}
	MinusOne = Int{sign: -1}

	// minInt32Int is math.MinInt32, which can't be held inline because its
	// magnitude doesn't fit in the inline field.
	minInt32Int = Int{sign: -1, bits: []uint32{signBit}}

	big1 = new(big.Int).SetInt64(1)
)
