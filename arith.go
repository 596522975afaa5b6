package num

// Elementary operations on limb vectors. 64-bit intermediates capture the
// carry, borrow or high limb of every step.

// addVV sets z = x + y and returns the carry out. len(z) == len(x) == len(y).
func addVV(z, x, y []uint32) (c uint32) {
	for i := range z {
		s := uint64(x[i]) + uint64(y[i]) + uint64(c)
		z[i] = uint32(s)
		c = uint32(s >> wordBits)
	}
	return c
}

// addVW sets z = x + y and returns the carry out.
func addVW(z, x []uint32, y uint32) (c uint32) {
	c = y
	for i := range z {
		s := uint64(x[i]) + uint64(c)
		z[i] = uint32(s)
		c = uint32(s >> wordBits)
	}
	return c
}

// subVV sets z = x - y and returns the borrow out.
func subVV(z, x, y []uint32) (b uint32) {
	for i := range z {
		d := uint64(x[i]) - uint64(y[i]) - uint64(b)
		z[i] = uint32(d)
		b = uint32(d >> 63)
	}
	return b
}

// subVW sets z = x - y and returns the borrow out. A borrow taken from a zero
// limb leaves 0xFFFFFFFF behind and moves on to the next limb.
func subVW(z, x []uint32, y uint32) (b uint32) {
	b = y
	for i := range z {
		d := uint64(x[i]) - uint64(b)
		z[i] = uint32(d)
		b = uint32(d >> 63)
	}
	return b
}

// mulAddVWW sets z = x*y + r and returns the high limb.
func mulAddVWW(z, x []uint32, y, r uint32) (c uint32) {
	c = r
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(c)
		z[i] = uint32(t)
		c = uint32(t >> wordBits)
	}
	return c
}

// addMulVVW sets z += x*y and returns the high limb. The intermediate can't
// overflow: (2^32-1)^2 + 2*(2^32-1) == 2^64-1.
func addMulVVW(z, x []uint32, y uint32) (c uint32) {
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + uint64(c)
		z[i] = uint32(t)
		c = uint32(t >> wordBits)
	}
	return c
}

// shrVU sets z = x >> s for s < 32, carrying the low s bits of each limb into
// the high bits of the limb below it. z may alias x. The bits shifted out of
// x[0] are returned in the high bits of c.
func shrVU(z, x []uint32, s uint) (c uint32) {
	if len(x) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	c = x[0] << (wordBits - s)
	for i := 0; i < len(x)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(wordBits-s)
	}
	z[len(x)-1] = x[len(x)-1] >> s
	return c
}

// divWVW sets z = x / y and returns x % y, walking from the most significant
// limb down. y must not be zero.
func divWVW(z, x []uint32, y uint32) (r uint32) {
	for i := len(x) - 1; i >= 0; i-- {
		t := uint64(r)<<wordBits | uint64(x[i])
		z[i] = uint32(t / uint64(y))
		r = uint32(t % uint64(y))
	}
	return r
}

// modVW returns x % y by accumulating ((r << 32) + limb) % y from the most
// significant limb down.
func modVW(x []uint32, y uint32) uint32 {
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		r = (r<<wordBits + uint64(x[i])) % uint64(y)
	}
	return uint32(r)
}
