//go:build !bignum_assert

package bignum

const assertEnabled = false
