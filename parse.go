package num

import (
	"strings"

	"github.com/go-faster/errors"
)

// asciiSpace is what C's isspace accepts in the "C" locale.
const asciiSpace = " \t\n\v\f\r"

// U128FromString parses s, picking the base from its prefix: "0x" or "0X" is
// base 16, "0o" or "0O" is base 8, "0b" or "0B" is base 2, anything else is
// base 10. See U128FromStringBase for the parsing rules.
func U128FromString(s string) (out U128, err error) {
	return U128FromStringBase(s, 0)
}

// U128FromStringBase parses s in the given base, which must be 2, 8, 10 or
// 16, or 0 to detect the base from a prefix as U128FromString does. Any other
// base returns an error wrapping ErrInvalidBase. An explicit base never
// accepts a prefix.
//
// Parsing is lenient, in the manner of C's strtoul:
//
//   - Leading ASCII whitespace is skipped. Other Unicode spaces are not.
//   - At most 32 hex, 39 decimal, 43 octal or 128 binary digits are read. If
//     s is longer, only its rightmost characters are used, which truncates the
//     value from the most significant end.
//   - Parsing stops at the first character that is not a digit in the base;
//     the value read so far is returned without an error.
//   - Decimal and octal input larger than MaxU128 wraps.
//
// Unmarshalling does not use these rules; see UnmarshalText.
func U128FromStringBase(s string, base int) (out U128, err error) {
	s = strings.TrimLeft(s, asciiSpace)

	if base == 0 {
		base, s = detectBase(s)
	}

	max := maxDigits(base)
	if max == 0 {
		return out, errors.Wrapf(ErrInvalidBase, "base %d is not one of 2, 8, 10 or 16", base)
	}

	if len(s) > max {
		s = s[len(s)-max:]
	}

	switch base {
	case 16:
		return parseShift(s, 4, 16), nil
	case 2:
		return parseShift(s, 1, 2), nil
	default:
		return parseMulAdd(s, uint64(base)), nil
	}
}

// maxDigits is the number of digits in MaxU128 written in base, or 0 if the
// base can't be parsed.
func maxDigits(base int) int {
	switch base {
	case 16:
		return maxDigitsHex
	case 10:
		return maxDigitsDec
	case 8:
		return maxDigitsOct
	case 2:
		return maxDigitsBin
	}
	return 0
}

func detectBase(s string) (base int, rest string) {
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return 16, s[2:]
		case 'o', 'O':
			return 8, s[2:]
		case 'b', 'B':
			return 2, s[2:]
		}
	}
	return 10, s
}

func digitValue(c byte) uint64 {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0')
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10
	}
	return 255
}

// parseShift places each digit directly into the value by shifting the
// previous digits up by bitsPerDigit. Bits leaving the low limb carry into the
// high limb; because of the digit limit nothing ever leaves the high limb.
func parseShift(s string, bitsPerDigit uint, base uint64) (out U128) {
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= base {
			break
		}
		out.hi = (out.hi << bitsPerDigit) | (out.lo >> (64 - bitsPerDigit))
		out.lo = (out.lo << bitsPerDigit) | d
	}
	return out
}

func parseMulAdd(s string, base uint64) (out U128) {
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= base {
			break
		}
		out = out.Mul64(base).Add(U128From64(d))
	}
	return out
}

// parseExact accepts only an optional base prefix followed by digits, all of
// which must be valid and must fit in 128 bits. It backs the unmarshalling
// methods, which must not lose information.
func parseExact(s string) (out U128, err error) {
	base, digits := detectBase(s)
	if digits == "" {
		return out, Error.New("u128 invalid number %q", s)
	}

	b := uint64(base)
	limit := MaxU128.Quo(U128From64(b))
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d >= b {
			return out, Error.New("u128 invalid number %q", s)
		}
		if out.GreaterThan(limit) {
			return zeroU128, Error.New("u128 number %q overflows", s)
		}
		next := out.Mul64(b).Add(U128From64(d))
		if next.LessThan(out) {
			return zeroU128, Error.New("u128 number %q overflows", s)
		}
		out = next
	}
	return out, nil
}
