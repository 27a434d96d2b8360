package num

import (
	"math/bits"
)

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

// Lsh returns u<<n. Shifting by 128 or more yields 0.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

// Rsh returns u>>n. Shifting by 128 or more yields 0.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}

	return v
}

// shiftAmount reduces a 128-bit shift amount to a native one. Anything that
// does not fit below 128 is reported as out of range.
func shiftAmount(by U128) (n uint, ok bool) {
	if by.hi != 0 || by.lo >= 128 {
		return 0, false
	}
	return uint(by.lo), true
}

// LshU128 returns u<<by, where the shift amount is itself a U128. Any amount
// of 128 or more, including one with a non-zero upper limb, yields 0.
func (u U128) LshU128(by U128) U128 {
	n, ok := shiftAmount(by)
	if !ok {
		return zeroU128
	}
	return u.Lsh(n)
}

// RshU128 returns u>>by, where the shift amount is itself a U128. See LshU128.
func (u U128) RshU128(by U128) U128 {
	n, ok := shiftAmount(by)
	if !ok {
		return zeroU128
	}
	return u.Rsh(n)
}

// Lsh64 promotes v to a U128 and shifts it left by a 128-bit amount.
func Lsh64(v uint64, by U128) U128 { return U128From64(v).LshU128(by) }

// Rsh64 promotes v to a U128 and shifts it right by a 128-bit amount.
func Rsh64(v uint64, by U128) U128 { return U128From64(v).RshU128(by) }

// LshI64 sign-extends v to a U128 (see U128FromI64) and shifts it left by a
// 128-bit amount.
func LshI64(v int64, by U128) U128 { return U128FromI64(v).LshU128(by) }

// RshI64 sign-extends v to a U128 and shifts it right by a 128-bit amount.
// The shift is logical; the sign is not preserved.
func RshI64(v int64, by U128) U128 { return U128FromI64(v).RshU128(by) }

// Bit returns the value of the i'th bit of u. The bit index must be 0 <= i <
// 128, otherwise Bit panics.
func (u U128) Bit(i int) uint {
	if i < 0 || i >= 128 {
		panic("num: bit out of range")
	}
	if i >= 64 {
		return uint((u.hi >> uint(i-64)) & 1)
	}
	return uint((u.lo >> uint(i)) & 1)
}

// SetBit returns a copy of u with the i'th bit set to b (0 or 1). The bit
// index must be 0 <= i < 128, otherwise SetBit panics.
func (u U128) SetBit(i int, b uint) (out U128) {
	if i < 0 || i >= 128 {
		panic("num: bit out of range")
	}
	if b != 0 && b != 1 {
		panic("num: bit value not 0 or 1")
	}

	out = u
	if i >= 64 {
		out.hi = (out.hi &^ (1 << uint(i-64))) | (uint64(b) << uint(i-64))
	} else {
		out.lo = (out.lo &^ (1 << uint(i))) | (uint64(b) << uint(i))
	}
	return out
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}
