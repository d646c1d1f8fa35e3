//go:build bignum_assert

package bignum

// Build with -tags bignum_assert to check the representation of every
// operand on entry to an operator.
const assertEnabled = true
