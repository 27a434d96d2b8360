package num

import (
	"math/big"
)

// U128 is an unsigned 128-bit integer made of two 64-bit limbs. All
// arithmetic wraps modulo 2^128.
//
// U128 is comparable, so it can be used directly as a map key.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromI64 creates a U128 from a signed integer. Negative values are
// sign-extended, so the upper limb is all ones and the result is the two's
// complement of |v| modulo 2^128.
func U128FromI64(v int64) U128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return U128{hi: hi, lo: uint64(v)}
}

func U128FromI32(v int32) U128 { return U128FromI64(int64(v)) }
func U128FromI16(v int16) U128 { return U128FromI64(int64(v)) }
func U128FromI8(v int8) U128   { return U128FromI64(int64(v)) }

func U128FromBool(b bool) U128 {
	if b {
		return oneU128
	}
	return zeroU128
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'. Negative values return 0 and 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("num: unsupported bit size")
	}
}

// RandSource is satisfied by *math/rand.Rand and *github.com/zeebo/mwc.T.
type RandSource interface {
	Uint64() uint64
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Hi returns the most significant limb.
func (u U128) Hi() uint64 { return u.hi }

// Lo returns the least significant limb.
func (u U128) Lo() uint64 { return u.lo }

// AsBool reports whether u is non-zero.
func (u U128) AsBool() bool { return u.hi|u.lo != 0 }

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will overflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

func (u U128) AsUint32() uint32 { return uint32(u.lo) }
func (u U128) AsUint16() uint16 { return uint16(u.lo) }
func (u U128) AsUint8() uint8   { return uint8(u.lo) }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// Add returns u+n, wrapping at 2^128. The carry out of the low limb is
// detected by the wrapped sum being smaller than the operand.
func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

// Sub returns u-n, wrapping at 2^128.
func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// Neg returns the two's complement of u, i.e. 0-u modulo 2^128.
func (u U128) Neg() (v U128) {
	return u.Not().Inc()
}
