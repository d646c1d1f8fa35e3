package calc

// Add writes left + right to bits. len(left) must be >= len(right) and
// len(bits) must be len(left)+1.
func Add(left, right, bits []uint32) {
	if len(left) < len(right) || len(bits) != len(left)+1 {
		panic("calc: add size mismatch")
	}

	var carry uint64
	i := 0
	for ; i < len(right); i++ {
		digit := uint64(left[i]) + carry + uint64(right[i])
		bits[i] = uint32(digit)
		carry = digit >> 32
	}
	for ; i < len(left); i++ {
		digit := uint64(left[i]) + carry
		bits[i] = uint32(digit)
		carry = digit >> 32
	}
	bits[i] = uint32(carry)
}

// AddScalar writes left + right to bits, which must be len(left)+1 long.
func AddScalar(left []uint32, right uint32, bits []uint32) {
	if len(bits) != len(left)+1 {
		panic("calc: add size mismatch")
	}

	carry := uint64(right)
	i := 0
	for ; i < len(left); i++ {
		digit := uint64(left[i]) + carry
		bits[i] = uint32(digit)
		carry = digit >> 32
	}
	bits[i] = uint32(carry)
}

// Subtract writes left - right to bits. left must be >= right and len(bits)
// must equal len(left).
func Subtract(left, right, bits []uint32) {
	if len(left) < len(right) || len(bits) != len(left) {
		panic("calc: subtract size mismatch")
	}

	var borrow int64
	i := 0
	for ; i < len(right); i++ {
		digit := int64(left[i]) + borrow - int64(right[i])
		bits[i] = uint32(digit)
		borrow = digit >> 32
	}
	for ; i < len(left); i++ {
		digit := int64(left[i]) + borrow
		bits[i] = uint32(digit)
		borrow = digit >> 32
	}
}

// SubtractScalar writes left - right to bits. left must be >= right and
// len(bits) must equal len(left).
func SubtractScalar(left []uint32, right uint32, bits []uint32) {
	if len(bits) != len(left) {
		panic("calc: subtract size mismatch")
	}

	borrow := -int64(right)
	for i := 0; i < len(left); i++ {
		digit := int64(left[i]) + borrow
		bits[i] = uint32(digit)
		borrow = digit >> 32
	}
}
