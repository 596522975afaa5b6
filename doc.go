/*
Package num provides an arbitrary-precision signed integer (Int) that can
stand in for a fixed-width integer wherever the result must be exact.

Int is a value type; all operations return new values. The in-place forms
(AddAssign, QuoAssign, IncAssign, ...) assign the finished result to the
receiver and nothing else.

Simple example:

	a := MustIntFromString("123490182349012384190234812903412341")
	b := MustIntFromString("340823048234902342902345123452435")
	fmt.Println(a.Add(b))
	// Output: 123831005397247286533137158026864776

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromU64(v uint64) Int
	IntFromU32(v uint32) Int
	IntFromWords(neg bool, words []uint32) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int

Division (Quo, Rem, QuoRem) truncates toward zero and the remainder takes the
sign of the dividend, like Go's native '/' and '%'. Dividing by zero panics
with ErrDivisionByZero; QuoRemErr returns it instead.

Shifts (Lsh, Rsh) move the magnitude and keep the sign.

Only decimal text is supported. Int supports the following formatting and
marshalling interfaces:

	- fmt.Formatter ('d', 's', 'v')
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Int is not safe for concurrent mutation through the in-place methods, but
separate values can be used from separate goroutines without locking.
*/
package num
