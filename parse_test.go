package num

import (
	"math/big"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
)

func TestU128FromStringBase(t *testing.T) {
	for _, tc := range []struct {
		in   string
		base int
		out  U128
	}{
		{"ff", 16, u64(255)},
		{"FF", 16, u64(255)},
		{"fF", 16, u64(255)},
		{"377", 8, u64(255)},
		{"11111111", 2, u64(255)},
		{"255", 10, u64(255)},
		{"", 10, u64(0)},
		{"0", 10, u64(0)},
		{"0", 16, u64(0)},
		{"ffffffffffffffff", 16, u64(maxUint64)},
		{"10000000000000000", 16, U128{hi: 1}},
		{"ffffffffffffffffffffffffffffffff", 16, MaxU128},
		{"340282366920938463463374607431768211455", 10, MaxU128},
		{"3777777777777777777777777777777777777777777", 8, MaxU128},
		{strings.Repeat("1", 128), 2, MaxU128},
		{"1" + strings.Repeat("0", 127), 2, U128{hi: 1 << 63}},

		// leading whitespace is skipped:
		{"  42", 10, u64(42)},
		{"\t\n 2a", 16, u64(42)},
		{"\v\f\r7", 10, u64(7)},

		// only ASCII whitespace is skipped, as with isspace in the C locale:
		{"\u00a05", 10, u64(0)},
		{"\u00855", 10, u64(0)},
		{"\u30005", 10, u64(0)},

		// parsing stops at the first non-digit:
		{"123abc", 10, u64(123)},
		{"12 34", 10, u64(12)},
		{"129", 8, u64(10)},
		{"102", 2, u64(2)},
		{"fg", 16, u64(15)},
		{"xyz", 10, u64(0)},
		{"-1", 10, u64(0)},

		// an explicit base never takes a prefix:
		{"0xff", 16, u64(0)},
		{"0b11", 2, u64(0)},
		{"0o17", 8, u64(0)},

		// only the rightmost digits are kept:
		{"1" + strings.Repeat("0", 32), 16, u64(0)},
		{"f" + strings.Repeat("f", 32), 16, MaxU128},
		{"123" + strings.Repeat("0", 31) + "1", 16, u64(1)},
		{"1" + strings.Repeat("0", 128), 2, u64(0)},
		{"7" + strings.Repeat("0", 42) + "5", 8, u64(5)},
		{"9" + strings.Repeat("0", 38) + "7", 10, u64(7)},
	} {
		out, err := U128FromStringBase(tc.in, tc.base)
		assert.NoError(t, err)
		assert.Equal(t, out.String(), tc.out.String())
	}
}

func TestU128FromStringPrefix(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out U128
	}{
		{"255", u64(255)},
		{"0xff", u64(255)},
		{"0XFF", u64(255)},
		{"0o377", u64(255)},
		{"0O377", u64(255)},
		{"0b11111111", u64(255)},
		{"0B11111111", u64(255)},
		{"  0x10", u64(16)},
		{"0", u64(0)},
		{"0x", u64(0)},
		{"0x" + strings.Repeat("f", 32), MaxU128},

		// a leading zero without a letter is still decimal:
		{"0777", u64(777)},

		// whitespace between the prefix and digits stops parsing:
		{"0x ff", u64(0)},
	} {
		out, err := U128FromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, out.String(), tc.out.String())
	}
}

func TestU128FromStringInvalidBase(t *testing.T) {
	for _, base := range []int{-1, 1, 3, 7, 9, 11, 15, 17, 36, 62} {
		_, err := U128FromStringBase("10", base)
		assert.That(t, errors.Is(err, ErrInvalidBase))
		assert.That(t, errors.Is(errors.Wrap(err, "config"), ErrInvalidBase))
		assert.That(t, !errors.Is(err, ErrDivisionByZero))
	}
}

func TestU128FromStringDecimalWraps(t *testing.T) {
	for _, s := range []string{
		"340282366920938463463374607431768211456",
		"340282366920938463463374607431768211457",
		strings.Repeat("9", 39),
		"500000000000000000000000000000000000000",
	} {
		want, ok := new(big.Int).SetString(s, 10)
		assert.That(t, ok)

		out, err := U128FromStringBase(s, 10)
		assert.NoError(t, err)
		assert.Equal(t, out.String(), wrapBig(want).String())
	}
}

func TestU128TextRoundTrip(t *testing.T) {
	rng := mwc.Rand()

	for i := 0; i < 10000; i++ {
		u := RandU128(&rng).Rsh(uint(rng.Uint64n(128)))

		for _, base := range []int{2, 8, 10, 16} {
			s, err := u.Text(base, 0)
			assert.NoError(t, err)

			back, err := U128FromStringBase(s, base)
			assert.NoError(t, err)
			assert.Equal(t, back, u)
		}
	}
}

func TestU128FromStringMatchesBigInt(t *testing.T) {
	rng := mwc.Rand()

	for i := 0; i < 10000; i++ {
		u := RandU128(&rng)
		for _, base := range []int{2, 8, 10, 16} {
			s := u.AsBigInt().Text(base)
			out, err := U128FromStringBase(s, base)
			assert.NoError(t, err)
			assert.Equal(t, out, u)
		}
	}
}

func BenchmarkU128FromString(b *testing.B) {
	for _, s := range []string{
		"1",
		"0xffffffffffffffff",
		"0x" + strings.Repeat("f", 32),
		"340282366920938463463374607431768211455",
	} {
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = U128FromString(s)
			}
		})
	}
}
