package num

import (
	"math/bits"
)

// nat is the magnitude of an Int: 32-bit limbs, least significant first.
//
// A normalised nat holds at least one limb, and its most significant limb is
// non-zero unless the whole value is the single-limb zero. Every nat function
// returns a normalised result and never writes to its arguments, so results
// may share limbs with their inputs.
type nat []uint32

func natFromU64(v uint64) nat {
	if v>>wordBits == 0 {
		return nat{uint32(v)}
	}
	return nat{uint32(v), uint32(v >> wordBits)}
}

// norm strips most significant zero limbs, stopping at the single-limb zero.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return z[:i]
}

func (x nat) clone() nat {
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// bitLen counts significant bits: 32 per limb below the top one, plus the
// bits in use in the top limb.
func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return wordBits*(len(x)-1) + bits.Len32(x[len(x)-1])
}

// natCmp compares two normalised nats: the longer one is larger, otherwise
// limbs decide from the most significant down.
func natCmp(x, y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func natAdd(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	z[len(x)] = addVW(z[len(y):len(x)], x[len(y):], c)
	return z.norm()
}

// natSub returns x - y. The caller guarantees x >= y.
func natSub(x, y nat) nat {
	if len(y) > len(x) {
		panic("num: magnitude underflow")
	}
	z := make(nat, len(x))
	b := subVV(z[:len(y)], x[:len(y)], y)
	if subVW(z[len(y):], x[len(y):], b) != 0 {
		panic("num: magnitude underflow")
	}
	return z.norm()
}

func natMulW(x nat, y uint32) nat {
	z := make(nat, len(x)+1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, 0)
	return z.norm()
}

// natMul is schoolbook multiplication: each limb of the shorter operand
// scales the longer one and is added in at its limb offset.
func natMul(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 1 {
		return natMulW(x, y[0])
	}
	z := make(nat, len(x)+len(y))
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
	return z.norm()
}

func natShl(x nat, n uint) nat {
	if x.isZero() {
		return nat{0}
	}
	w, s := int(n/wordBits), n%wordBits
	if s == 0 {
		z := make(nat, len(x)+w)
		copy(z[w:], x)
		return z.norm()
	}

	// Move the limbs up one position too far, then bring them back down by
	// the complementary bit count.
	z := make(nat, len(x)+w+1)
	copy(z[w+1:], x)
	shrVU(z, z, wordBits-s)
	return z.norm()
}

func natShr(x nat, n uint) nat {
	if n >= uint(x.bitLen()) {
		return nat{0}
	}
	w, s := int(n/wordBits), n%wordBits
	z := make(nat, len(x)-w)
	shrVU(z, x[w:], s)
	return z.norm()
}

// natQuoW returns x / y and x % y for a single-limb y != 0.
func natQuoW(x nat, y uint32) (q nat, r uint32) {
	q = make(nat, len(x))
	r = divWVW(q, x, y)
	return q.norm(), r
}

// natQuoRem returns x / y and x % y for y != 0. A single-limb divisor takes
// the limb-by-limb path; everything else goes through binary long division.
func natQuoRem(x, y nat) (q, r nat) {
	if len(y) == 1 {
		qw, rw := natQuoW(x, y[0])
		return qw, nat{rw}
	}
	return natQuoRemBin(x, y)
}

// natQuoRemBin is binary long division. The divisor is shifted up until its
// top bit lines up with the dividend's, then walked back down one bit at a
// time; each position where it still fits into the running remainder is
// subtracted and sets the matching quotient bit.
func natQuoRemBin(x, y nat) (q, r nat) {
	if natCmp(x, y) < 0 {
		return nat{0}, x
	}

	shift := uint(x.bitLen() - y.bitLen())
	d := natShl(y, shift)
	for natCmp(d, x) > 0 {
		d = natShr(d, 1)
		shift--
	}

	q = make(nat, shift/wordBits+1)
	r = x
	for {
		if natCmp(d, r) <= 0 {
			r = natSub(r, d)
			q[shift/wordBits] |= 1 << (shift % wordBits)
		}
		if shift == 0 {
			break
		}
		shift--
		d = natShr(d, 1)
	}

	return q.norm(), r
}
