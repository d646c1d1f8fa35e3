package bignum

type RandSource interface {
	Uint64() uint64
}

// RandInt returns a random Int of at most the given number of digits. The
// sign is random too.
func RandInt(source RandSource, digits int) Int {
	if digits <= 0 {
		return Zero
	}
	d := make([]uint32, digits)
	for i := 0; i < digits; i += 2 {
		v := source.Uint64()
		d[i] = uint32(v)
		if i+1 < digits {
			d[i+1] = uint32(v >> 32)
		}
	}
	return newFromDigitsOwned(d, source.Uint64()&1 == 1)
}

// Difference returns |a - b|.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}
