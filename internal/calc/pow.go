package calc

import (
	"math"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bignum/internal/scratch"
)

// PowBound returns the number of digits needed to hold a value of
// valueLength digits raised to power, and the buffer size Pow expects.
// The bound is computed by running square-and-multiply over the lengths
// instead of the values.
func PowBound(power uint32, valueLength int) (int, error) {
	resultLength := 1
	for power != 0 {
		if power&1 == 1 {
			resultLength += valueLength
		}
		if power != 1 {
			valueLength += valueLength
		}
		if resultLength > math.MaxInt32 || valueLength > math.MaxInt32 {
			return 0, errors.Wrapf(ErrOverflow, "calc: power %d bound", power)
		}
		power >>= 1
	}
	return resultLength, nil
}

// PowScalar writes value ** power to bits, which must be PowBound(power, 1)
// digits long.
func PowScalar(value, power uint32, bits []uint32) {
	if value == 0 {
		Pow(nil, power, bits)
		return
	}
	Pow([]uint32{value}, power, bits)
}

// Pow writes value ** power to bits, which must be
// PowBound(power, len(value)) digits long and zeroed.
func Pow(value []uint32, power uint32, bits []uint32) {
	var tb, vb scratch.Buffer
	defer tb.Release()
	defer vb.Release()

	temp := tb.Get(len(bits))
	vcopy := vb.Get(len(bits))
	copy(vcopy, value)

	result := powCore(vcopy, len(value), temp, power, bits)
	copy(bits, result)
}

func powCore(value []uint32, valueLength int, temp []uint32, power uint32, result []uint32) []uint32 {
	result[0] = 1
	resultLength := 1

	for power != 0 {
		if power&1 == 1 {
			resultLength = multiplySelf(&result, resultLength, value[:valueLength], &temp)
		}
		if power != 1 {
			valueLength = squareSelf(&value, valueLength, &temp)
		}
		power >>= 1
	}
	return result
}

// multiplySelf replaces left with left * right, swapping left and temp so
// that no copy is needed. temp is left zeroed.
func multiplySelf(left *[]uint32, leftLength int, right []uint32, temp *[]uint32) int {
	resultLength := leftLength + len(right)
	if leftLength >= len(right) {
		Multiply((*left)[:leftLength], right, (*temp)[:resultLength])
	} else {
		Multiply(right, (*left)[:leftLength], (*temp)[:resultLength])
	}
	clear(*left)
	*left, *temp = *temp, *left
	return ActualLength((*left)[:resultLength])
}

func squareSelf(value *[]uint32, valueLength int, temp *[]uint32) int {
	resultLength := valueLength + valueLength
	Square((*value)[:valueLength], (*temp)[:resultLength])
	clear(*value)
	*value, *temp = *temp, *value
	return ActualLength((*value)[:resultLength])
}

// PowModScalar returns value ** power % modulus for a multi-digit power.
// An empty power is treated as zero.
func PowModScalar(value uint32, power []uint32, modulus uint32) uint32 {
	if modulus == 0 {
		panic(ErrDivideByZero)
	}
	return powModScalarCore(uint64(value), power, modulus, 1)
}

// PowModScalarDigits is PowModScalar for a multi-digit value.
func PowModScalarDigits(value []uint32, power []uint32, modulus uint32) uint32 {
	v := RemainderScalar(value, modulus)
	return powModScalarCore(uint64(v), power, modulus, 1)
}

func powModScalarCore(value uint64, power []uint32, modulus uint32, result uint64) uint32 {
	m := uint64(modulus)
	if len(power) == 0 {
		return uint32(result % m)
	}

	for i := 0; i < len(power)-1; i++ {
		p := power[i]
		for j := 0; j < 32; j++ {
			if p&1 == 1 {
				result = (result * value) % m
			}
			value = (value * value) % m
			p >>= 1
		}
	}

	p := power[len(power)-1]
	for p != 0 {
		if p&1 == 1 {
			result = (result * value) % m
		}
		if p != 1 {
			value = (value * value) % m
		}
		p >>= 1
	}
	return uint32(result % m)
}

// PowMod writes value ** power % modulus to bits, which must be
// 2*len(modulus) digits long and zeroed. An empty value or power is treated
// as zero.
func PowMod(value, power, modulus, bits []uint32) {
	if len(modulus) == 0 || modulus[len(modulus)-1] == 0 {
		panic(ErrDivideByZero)
	}
	if len(bits) != len(modulus)*2 {
		panic("calc: pow size mismatch")
	}

	size := len(bits)
	if len(value) > size {
		size = len(value)
	}

	var vb, tb scratch.Buffer
	defer vb.Release()
	defer tb.Release()

	vcopy := vb.Get(size)
	if len(value) > len(modulus) {
		Remainder(value, modulus, vcopy[:len(value)])
	} else {
		copy(vcopy, value)
	}
	temp := tb.Get(len(bits))

	result := powModCore(vcopy, ActualLength(vcopy), power, modulus, bits, temp)
	copy(bits, result)
}

func powModCore(value []uint32, valueLength int, power, modulus, result, temp []uint32) []uint32 {
	result[0] = 1
	resultLength := 1

	if len(power) == 0 {
		return result
	}

	for i := 0; i < len(power)-1; i++ {
		p := power[i]
		for j := 0; j < 32; j++ {
			if p&1 == 1 {
				resultLength = multiplySelf(&result, resultLength, value[:valueLength], &temp)
				resultLength = reduce(result[:resultLength], modulus)
			}
			valueLength = squareSelf(&value, valueLength, &temp)
			valueLength = reduce(value[:valueLength], modulus)
			p >>= 1
		}
	}

	p := power[len(power)-1]
	for p != 0 {
		if p&1 == 1 {
			resultLength = multiplySelf(&result, resultLength, value[:valueLength], &temp)
			resultLength = reduce(result[:resultLength], modulus)
		}
		if p != 1 {
			valueLength = squareSelf(&value, valueLength, &temp)
			valueLength = reduce(value[:valueLength], modulus)
		}
		p >>= 1
	}
	return result
}

// reduce replaces bits with bits % modulus and returns the new length.
func reduce(bits, modulus []uint32) int {
	if len(bits) >= len(modulus) {
		divideInPlace(bits, modulus, nil)
		return ActualLength(bits[:len(modulus)])
	}
	return len(bits)
}
