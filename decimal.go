package bignum

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FromDecimal creates an Int from the integer part of d, truncating towards
// zero. It returns ErrOverflow if the result would need more than 96 bits.
func FromDecimal(d decimal.Decimal) (Int, error) {
	// 10**29 > 2**96, so any non-zero coefficient overflows.
	if d.Exponent() >= 29 && !d.IsZero() {
		return Int{}, errors.Wrapf(ErrOverflow, "decimal %s", d)
	}
	v := d.BigInt()
	if v.BitLen() > decimalBits {
		return Int{}, errors.Wrapf(ErrOverflow, "decimal %s", d)
	}
	return FromBigInt(v), nil
}

// Decimal converts x to a decimal.Decimal. It returns ErrOverflow if |x|
// has more than 96 bits.
func (x Int) Decimal() (decimal.Decimal, error) {
	if x.bits != nil && len(x.bits) > decimalBits/digitBits {
		return decimal.Decimal{}, errors.Wrapf(ErrOverflow, "%s as decimal", x)
	}
	if x.bits == nil {
		return decimal.NewFromInt32(x.sign), nil
	}
	return decimal.NewFromBigInt(x.AsBigInt(), 0), nil
}
