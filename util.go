package num

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random Int below 1<<bits from an external
// source.
func RandInt(source RandSource, bits uint) Int {
	n := int((bits + wordBits - 1) / wordBits)
	mag := make(nat, n)
	for idx := 0; idx < n; idx += 2 {
		v := source.Uint64()
		mag[idx] = uint32(v)
		if idx+1 < n {
			mag[idx+1] = uint32(v >> wordBits)
		}
	}
	if rem := bits % wordBits; rem != 0 {
		mag[n-1] &= 1<<rem - 1
	}
	return makeInt(false, mag)
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerInt(a, b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
