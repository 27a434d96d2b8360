package num

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/go-faster/errors"
)

// BitLen returns the minimum number of bits needed to represent u; the
// result is 0 for 0.
func (u U128) BitLen() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}

// Text returns the representation of u in the given base, left-padded with
// '0' to at least minLength characters. Digits above 9 are lower-case
// letters.
//
// The base must be between 2 and 16 inclusive, otherwise an error wrapping
// ErrInvalidBase is returned.
func (u U128) Text(base int, minLength int) (string, error) {
	if base < 2 || base > 16 {
		return "", errors.Wrapf(ErrInvalidBase, "base %d is outside [2, 16]", base)
	}

	// 128 digits is enough for MaxU128 in base 2.
	var buf [128]byte
	i := len(buf)

	if u == zeroU128 {
		i--
		buf[i] = '0'
	} else {
		by := U128From64(uint64(base))
		q, r := u, zeroU128
		for q != zeroU128 {
			q, r = q.QuoRem(by)
			i--
			buf[i] = digits[r.lo]
		}
	}

	out := string(buf[i:])
	if pad := minLength - len(out); pad > 0 {
		out = strings.Repeat("0", pad) + out
	}
	return out, nil
}

func (u U128) String() string {
	if u.hi == 0 && u.lo < 10 {
		return digits[u.lo : u.lo+1]
	}
	s, _ := u.Text(10, 0)
	return s
}

// Format implements fmt.Formatter. The verb picks the base: %b is 2, %o and
// %O are 8, %d, %v and %s are 10, %x and %X are 16. Width, precision and the
// '-', '0' and '#' flags behave as they do for the built-in unsigned types.
func (u U128) Format(s fmt.State, c rune) {
	var base int
	switch c {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 'v', 's':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		fmt.Fprintf(s, "%%!%c(num.U128=%s)", c, u.String())
		return
	}

	width, hasWidth := s.Width()

	// An explicit precision is the minimum digit count and turns off zero
	// padding; without one, '0' pads the digits (not the prefix) to width.
	var digitsLen int
	if p, ok := s.Precision(); ok {
		if p == 0 && u == zeroU128 {
			_, _ = s.Write([]byte(strings.Repeat(" ", width)))
			return
		}
		digitsLen = p
	} else if hasWidth && s.Flag('0') && !s.Flag('-') {
		digitsLen = width
	}

	str, _ := u.Text(base, digitsLen)

	var prefix string
	if s.Flag('#') {
		switch c {
		case 'b':
			prefix = "0b"
		case 'o', 'O':
			if str[0] != '0' {
				prefix = "0"
			}
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if c == 'O' {
		prefix = "0o" + prefix
	}
	if c == 'X' {
		str = strings.ToUpper(str)
	}

	body := prefix + str
	if pad := width - len(body); pad > 0 {
		if s.Flag('-') {
			body += strings.Repeat(" ", pad)
		} else {
			body = strings.Repeat(" ", pad) + body
		}
	}
	_, _ = s.Write([]byte(body))
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText accepts what MarshalText produces, plus the 0x, 0o and 0b
// prefixes. Unlike U128FromString, it rejects anything that is not entirely
// digits or that would not fit, with an error of class Error.
func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := parseExact(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare number with the same rules as
// UnmarshalText. A JSON null leaves u unchanged.
func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
