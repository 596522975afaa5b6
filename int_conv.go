package num

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// IntFromString creates an Int from a decimal string: an optional leading
// '-' followed by decimal digits. The empty string is 0. A sign without
// digits, any other character, and any spelling of negative zero ("-0",
// "-000") fail with a *ParseError.
func IntFromString(s string) (out Int, err error) {
	digits, neg := s, false
	if len(digits) > 0 && digits[0] == '-' {
		neg, digits = true, digits[1:]
		if len(digits) == 0 {
			return out, &ParseError{Input: s, Reason: reasonEmptySign}
		}
	}

	d := make([]byte, len(digits))
	for idx := 0; idx < len(digits); idx++ {
		c := digits[idx]
		if c < '0' || c > '9' {
			return out, &ParseError{Input: s, Reason: reasonInvalidDigit}
		}
		d[idx] = c - '0'
	}

	mag := parseDecimal(d)
	if neg && mag.isZero() {
		return out, &ParseError{Input: s, Reason: reasonNegativeZero}
	}
	return makeInt(neg, mag), nil
}

// MustIntFromString is IntFromString for literals known to be valid; it
// panics on a *ParseError.
func MustIntFromString(s string) Int {
	out, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// parseDecimal converts decimal digit values, most significant first, into a
// nat. The digit string is halved until nothing is left; the remainder of
// each halving is the next binary digit, least significant first. d is
// consumed.
//
// This is quadratic in the number of digits, which is fine for literals.
func parseDecimal(d []byte) nat {
	for len(d) > 0 && d[0] == 0 {
		d = d[1:]
	}

	var z nat
	var bit uint
	for len(d) > 0 {
		var rem byte
		for idx, v := range d {
			v += rem * 10
			d[idx], rem = v/2, v%2
		}

		if bit%wordBits == 0 {
			z = append(z, 0)
		}
		z[len(z)-1] |= uint32(rem) << (bit % wordBits)
		bit++

		for len(d) > 0 && d[0] == 0 {
			d = d[1:]
		}
	}
	return z.norm()
}

func (i Int) String() string {
	if i.IsZero() {
		return "0"
	}
	var buf []byte
	if i.neg {
		buf = append(buf, '-')
	}
	return string(appendDecimal(buf, i.abs()))
}

// appendDecimal appends the decimal digits of x to buf. x is divided by
// decBase until it is exhausted; the remainders are decDigits-digit chunks,
// least significant first, and every chunk but the leading one is
// zero-padded on the way out.
func appendDecimal(buf []byte, x nat) []byte {
	if x.isZero() {
		return append(buf, '0')
	}

	chunks := make([]uint32, 0, x.bitLen()/29+1)
	for !x.isZero() {
		var r uint32
		x, r = natQuoW(x, decBase)
		chunks = append(chunks, r)
	}

	buf = strconv.AppendUint(buf, uint64(chunks[len(chunks)-1]), 10)
	for idx := len(chunks) - 2; idx >= 0; idx-- {
		var chunk [decDigits]byte
		v := chunks[idx]
		for j := decDigits - 1; j >= 0; j-- {
			chunk[j] = byte('0' + v%10)
			v /= 10
		}
		buf = append(buf, chunk[:]...)
	}
	return buf
}

// Format implements fmt.Formatter. Only the decimal verbs 'd', 's' and 'v'
// are supported, with a width and the '+', '-' and '0' flags.
func (i Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(num.Int=%s)", c, i.String())
		return
	}

	sign := ""
	if i.neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	}
	digits := appendDecimal(nil, i.abs())

	var pad int
	if w, ok := s.Width(); ok {
		pad = w - len(sign) - len(digits)
	}

	switch {
	case pad <= 0:
		io.WriteString(s, sign)
		s.Write(digits)
	case s.Flag('-'):
		io.WriteString(s, sign)
		s.Write(digits)
		writeMultiple(s, " ", pad)
	case s.Flag('0'):
		io.WriteString(s, sign)
		writeMultiple(s, "0", pad)
		s.Write(digits)
	default:
		writeMultiple(s, " ", pad)
		io.WriteString(s, sign)
		s.Write(digits)
	}
}

func writeMultiple(s fmt.State, text string, count int) {
	for ; count > 0; count-- {
		io.WriteString(s, text)
	}
}

// IntFromBigInt creates an Int from a big.Int. The conversion is exact.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()

	var mag nat
	switch intSize {
	case 64:
		mag = make(nat, 2*len(words))
		for idx, w := range words {
			mag[2*idx] = uint32(w)
			mag[2*idx+1] = uint32(uint64(w) >> wordBits)
		}

	case 32:
		mag = make(nat, len(words))
		for idx, w := range words {
			mag[idx] = uint32(w)
		}

	default:
		panic("num: unsupported bit size")
	}

	return makeInt(v.Sign() < 0, mag)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	mag := i.abs()

	n := len(mag)
	if intSize == 64 {
		n = (n + 1) / 2
	}
	words := b.Bits()
	if cap(words) < n {
		words = make([]big.Word, n)
	} else {
		words = words[:n]
		for idx := range words {
			words[idx] = 0
		}
	}

	switch intSize {
	case 64:
		for idx, w := range mag {
			words[idx/2] |= big.Word(w) << (wordBits * uint(idx%2))
		}
	case 32:
		for idx, w := range mag {
			words[idx] = big.Word(w)
		}
	default:
		panic("num: unsupported bit size")
	}

	b.SetBits(words)
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
