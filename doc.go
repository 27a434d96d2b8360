/*
Package num provides a fixed-width unsigned 128-bit integer, U128, built from
two uint64 limbs. Every operation wraps modulo 2^128; the only failures are
division by zero and an unsupported base.

U128 is a value type; all operations return new values. The Set* methods are
the in-place forms and return their receiver for chaining.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

U128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromI64(v int64) U128 // and I32, I16, I8; negative values sign-extend
	U128FromBool(b bool) U128
	U128FromString(s string) (U128, error)
	U128FromStringBase(s string, base int) (U128, error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	U128FromBytes(b []byte) U128

U128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

Division by zero panics with ErrDivisionByZero; DivMod returns it instead.
Text and U128FromStringBase return an error wrapping ErrInvalidBase for a
base they do not support. Test for either with errors.Is, which keeps
working after the error has been wrapped. Marshalling failures are errors of
class Error.

The 64x64->128 multiply that Mul is built on uses math/bits.Mul64 by default.
Build with '-tags num_portable' to use a portable version made of 32-bit
partial products instead.
*/
package num
