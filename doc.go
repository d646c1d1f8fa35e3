/*
Package bignum provides Int, an arbitrary-precision signed integer.

Int is a value type; all operations return new values, and an Int may be
shared between goroutines freely. The zero value is 0.

Simple example:

	x := bignum.FromUint64(math.MaxUint64)
	fmt.Println(x.Mul(x))
	// Output: 340282366920938463426481119284349108225

Values that fit in 32 bits are held without allocating, so everyday-sized
arithmetic stays cheap; larger values keep their magnitude in a slice of
32-bit digits.

Int can be created from a variety of sources:

	FromInt64(v int64) Int
	FromUint64(v uint64) Int
	From[T constraints.Integer](v T) Int
	FromFloat64(f float64) (Int, error)
	FromDecimal(d decimal.Decimal) (Int, error)
	FromBytes(b []byte, unsigned, bigEndian bool) (Int, error)
	FromBigInt(v *big.Int) Int
	FromString(s string) (Int, error)
	FromAny(v any) (Int, error)

Bitwise operators (And, Or, Xor, AndNot, Not, the shifts and rotations)
behave as though values were held in infinite-precision two's complement,
like math/big. URsh and the rotations are the exceptions: they work within
x's own two's-complement digits, plus a sign digit when a negative x needs
one, and URsh fills with zeros.

Division by zero panics with ErrDivideByZero, as it does for Go's integer
types. A result that would need more than MaxDigits digits panics with
ErrOverflow. Conversions and argument checks return errors instead; use
errors.Is to test them against the Err variables.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

Build with -tags bignum_assert to check the internal representation of
every operand.
*/
package bignum
