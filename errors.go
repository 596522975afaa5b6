package num

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is the panic value used by Quo, Rem, QuoRem and their
// in-place forms when the divisor is zero. QuoRemErr returns it instead.
var ErrDivisionByZero = errors.New("num: division by zero")

const (
	reasonEmptySign    = "sign without digits"
	reasonInvalidDigit = "invalid digit"
	reasonNegativeZero = "negative zero"
)

// ParseError reports a malformed decimal literal. No value is produced when
// a ParseError is returned.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("num: int string %q invalid: %s", e.Input, e.Reason)
}
