package num

// Int is an arbitrary-precision signed integer.
//
// Int is a value type; all operations return new values and none of them
// write to the limbs of an existing Int, so an Int copied with '=' is an
// independent value. The zero value is 0.
type Int struct {
	neg bool
	mag nat
}

// makeInt is the only way arithmetic builds an Int: it normalises the
// magnitude and forces zero to be non-negative.
func makeInt(neg bool, mag nat) Int {
	mag = mag.norm()
	if mag.isZero() {
		neg = false
	}
	return Int{neg: neg, mag: mag}
}

func (i Int) abs() nat {
	if len(i.mag) == 0 {
		return nat{0}
	}
	return i.mag
}

func IntFrom64(v int64) Int {
	if v < 0 {
		return Int{neg: true, mag: natFromU64(^uint64(v) + 1)}
	}
	return Int{mag: natFromU64(uint64(v))}
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int   { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int     { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return Int{mag: natFromU64(v)} }
func IntFromU32(v uint32) Int { return Int{mag: nat{v}} }

// IntFromWords is the complement to Int.Words(); it creates an Int from the
// sign and the little-endian 32-bit limbs of the magnitude. The slice is
// copied.
func IntFromWords(neg bool, words []uint32) Int {
	return makeInt(neg, nat(words).clone())
}

// Words returns a copy of the little-endian limbs of the magnitude. Zero is
// a single zero limb.
func (i Int) Words() []uint32 { return []uint32(i.abs().clone()) }

// Clone returns a copy of i with its own limb buffer.
func (i Int) Clone() Int { return Int{neg: i.neg, mag: i.abs().clone()} }

func (i Int) IsZero() bool { return i.abs().isZero() }

// IsPositive reports whether i is non-negative; zero is positive.
func (i Int) IsPositive() bool { return !i.neg }

func (i Int) IsNegative() bool { return i.neg }

// BitLen returns the number of significant bits in the magnitude of i. The
// bit length of 0 is 0.
func (i Int) BitLen() int { return i.abs().bitLen() }

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

func (i Int) low64() uint64 {
	mag := i.abs()
	v := uint64(mag[0])
	if len(mag) > 1 {
		v |= uint64(mag[1]) << wordBits
	}
	return v
}

// AsInt64 truncates the Int to fit in an int64, keeping the low 64 bits of
// its two's complement form. See IsInt64() if you want to check before you
// convert.
func (i Int) AsInt64() int64 {
	v := i.low64()
	if i.neg {
		v = ^v + 1
	}
	return int64(v)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	n := i.BitLen()
	if n <= 63 {
		return true
	}
	return i.neg && n == 64 && i.low64() == 1<<63
}

// AsUint64 truncates the Int to fit in a uint64. Negative values wrap as
// they would in a native conversion.
func (i Int) AsUint64() uint64 {
	v := i.low64()
	if i.neg {
		v = ^v + 1
	}
	return v
}

// IsUint64 reports whether i can be represented as a uint64.
func (i Int) IsUint64() bool {
	return !i.neg && i.BitLen() <= 64
}

func (i Int) Neg() Int {
	if i.IsZero() {
		return Int{mag: i.abs()}
	}
	return Int{neg: !i.neg, mag: i.abs()}
}

func (i Int) Abs() Int {
	return Int{mag: i.abs()}
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// Differing signs decide straight away. Otherwise the magnitudes are
// compared and the result inverted for negative operands. All the other
// relational methods are derived from Cmp.
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := natCmp(i.abs(), n.abs())
	if i.neg {
		return -c
	}
	return c
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// Add returns i + n. Equal signs add the magnitudes and keep the sign;
// opposite signs subtract the smaller magnitude from the larger and take the
// sign of the larger.
func (i Int) Add(n Int) Int {
	x, y := i.abs(), n.abs()
	if i.neg == n.neg {
		return makeInt(i.neg, natAdd(x, y))
	}
	switch natCmp(x, y) {
	case 0:
		return Int{mag: nat{0}}
	case 1:
		return makeInt(i.neg, natSub(x, y))
	default:
		return makeInt(n.neg, natSub(y, x))
	}
}

// Sub returns i - n, which is i + (-n).
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

func (i Int) Inc() Int { return i.Add(IntFromU32(1)) }
func (i Int) Dec() Int { return i.Sub(IntFromU32(1)) }

// Mul returns the product of two Ints. The result is negative when exactly
// one operand is negative.
func (i Int) Mul(n Int) Int {
	return makeInt(i.neg != n.neg, natMul(i.abs(), n.abs()))
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, the
// call panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r takes the sign of x. Int does not support big.Int.DivMod()-style
// Euclidean division.
func (i Int) QuoRem(by Int) (q, r Int) {
	if by.IsZero() {
		panic(ErrDivisionByZero)
	}
	qm, rm := natQuoRem(i.abs(), by.abs())
	return makeInt(i.neg != by.neg, qm), makeInt(i.neg, rm)
}

// QuoRemErr is QuoRem, but returns ErrDivisionByZero rather than panicking.
func (i Int) QuoRemErr(by Int) (q, r Int, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	q, r = i.QuoRem(by)
	return q, r, nil
}

// Quo returns the quotient i/by for by != 0. If by == 0, the call panics
// with ErrDivisionByZero. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i Int) Quo(by Int) (q Int) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, the call panics
// with ErrDivisionByZero. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i Int) Rem(by Int) (r Int) {
	if by.IsZero() {
		panic(ErrDivisionByZero)
	}
	if y := by.abs(); len(y) == 1 {
		return makeInt(i.neg, nat{modVW(i.abs(), y[0])})
	}
	_, r = i.QuoRem(by)
	return r
}

// QuoUint32 returns i/by truncated toward zero, dividing limb by limb.
func (i Int) QuoUint32(by uint32) Int {
	if by == 0 {
		panic(ErrDivisionByZero)
	}
	q, _ := natQuoW(i.abs(), by)
	return makeInt(i.neg, q)
}

// RemUint32 returns i%by. Like Rem, the result takes the sign of i.
func (i Int) RemUint32(by uint32) int64 {
	if by == 0 {
		panic(ErrDivisionByZero)
	}
	r := int64(modVW(i.abs(), by))
	if i.neg {
		return -r
	}
	return r
}

// Lsh shifts the magnitude of i left by n bits; the sign is kept.
func (i Int) Lsh(n uint) Int {
	return makeInt(i.neg, natShl(i.abs(), n))
}

// Rsh shifts the magnitude of i right by n bits; the sign is kept unless the
// result is zero. Unlike Go's arithmetic shift this truncates toward zero,
// so IntFrom64(-1).Rsh(1) is 0, not -1.
func (i Int) Rsh(n uint) Int {
	return makeInt(i.neg, natShr(i.abs(), n))
}

// In-place forms. Each computes the result from copies of its operands and
// assigns it to the receiver only once the operation has succeeded, so
// x.AddAssign(x) is safe and a panicking QuoAssign leaves x untouched.

func (i *Int) Negate()          { *i = i.Neg() }
func (i *Int) AddAssign(n Int)  { *i = i.Add(n) }
func (i *Int) SubAssign(n Int)  { *i = i.Sub(n) }
func (i *Int) MulAssign(n Int)  { *i = i.Mul(n) }
func (i *Int) QuoAssign(by Int) { *i = i.Quo(by) }
func (i *Int) RemAssign(by Int) { *i = i.Rem(by) }
func (i *Int) LshAssign(n uint) { *i = i.Lsh(n) }
func (i *Int) RshAssign(n uint) { *i = i.Rsh(n) }
func (i *Int) IncAssign()       { *i = i.Inc() }
func (i *Int) DecAssign()       { *i = i.Dec() }
