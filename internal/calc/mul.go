package calc

// Multiply writes left * right to bits. len(left) must be >= len(right) and
// len(bits) must be len(left)+len(right).
func Multiply(left, right, bits []uint32) {
	if len(left) < len(right) || len(bits) != len(left)+len(right) {
		panic("calc: multiply size mismatch")
	}

	for i := 0; i < len(right); i++ {
		var carry uint64
		r := uint64(right[i])
		for j := 0; j < len(left); j++ {
			digit := uint64(bits[i+j]) + carry + uint64(left[j])*r
			bits[i+j] = uint32(digit)
			carry = digit >> 32
		}
		bits[i+len(left)] = uint32(carry)
	}
}

// MultiplyScalar writes left * right to bits, which must be len(left)+1 long.
func MultiplyScalar(left []uint32, right uint32, bits []uint32) {
	if len(bits) != len(left)+1 {
		panic("calc: multiply size mismatch")
	}

	var carry uint64
	r := uint64(right)
	i := 0
	for ; i < len(left); i++ {
		digit := uint64(left[i])*r + carry
		bits[i] = uint32(digit)
		carry = digit >> 32
	}
	bits[i] = uint32(carry)
}

// Square writes value * value to bits, which must be 2*len(value) long.
//
// Each cross product is computed once and doubled. The doubled product plus
// the running column and carry can exceed 64 bits, so the top bit is carried
// separately.
func Square(value, bits []uint32) {
	if len(bits) != 2*len(value) {
		panic("calc: square size mismatch")
	}

	for i := 0; i < len(value); i++ {
		var carry uint64
		v := uint64(value[i])
		for j := 0; j < i; j++ {
			digit1 := uint64(bits[i+j]) + carry
			digit2 := uint64(value[j]) * v
			bits[i+j] = uint32(digit1 + (digit2 << 1))
			carry = (digit2 + (digit1 >> 1)) >> 31
		}
		digits := v*v + carry
		bits[i+i] = uint32(digits)
		bits[i+i+1] = uint32(digits >> 32)
	}
}
