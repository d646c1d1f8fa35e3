package bignum

import (
	"io"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/calc"
)

// Errors returned (or, for arithmetic contract violations, raised by panic)
// by this package. Returned errors carry context and a stack trace; use
// errors.Is to test for the kind.
var (
	// ErrOverflow: a value does not fit the target type, a float input is
	// not finite, or a result would need more than MaxDigits digits.
	ErrOverflow = calc.ErrOverflow

	// ErrDivideByZero is the panic value for division, remainder or modular
	// exponentiation by zero.
	ErrDivideByZero = calc.ErrDivideByZero

	// ErrOutOfRange: a negative exponent passed to Pow or ModPow, or Clamp
	// called with lo > hi.
	ErrOutOfRange = errors.New("bignum: argument out of range")

	// ErrArgument: CompareTo called with something that isn't an Int.
	ErrArgument = errors.New("bignum: invalid argument")

	// ErrNotSupported: FromAny called with a type it can't convert.
	ErrNotSupported = errors.New("bignum: conversion not supported")

	// ErrShortBuffer is returned by WriteBytes when dst is too small. It is
	// never wrapped, so callers may compare it directly.
	ErrShortBuffer = io.ErrShortBuffer
)
