package num

import "github.com/zeebo/errs"

// Error is the class of every error this package produces.
var Error = errs.Class("num")

var (
	// ErrDivisionByZero is panicked by QuoRem, Quo, Rem and QuoRem64 when the
	// divisor is zero, and returned by DivMod.
	ErrDivisionByZero = Error.New("division or modulus by zero")

	// ErrInvalidBase is wrapped by the errors Text and U128FromStringBase
	// return for a base they do not support.
	ErrInvalidBase = Error.New("invalid base")
)
