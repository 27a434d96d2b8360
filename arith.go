package num

import (
	"math/bits"
)

// The widening multiply used by Mul and MulFull, mul64to128, is chosen at
// build time; see arith_intrinsic.go and arith_portable.go. Every strategy in
// this file must produce the same bits.

// mul64Intrinsic lowers to a single instruction on platforms where the
// compiler treats bits.Mul64 as an intrinsic (amd64, arm64, ppc64, s390x...).
func mul64Intrinsic(u, v uint64) (hi, lo uint64) {
	return bits.Mul64(u, v)
}

func lower32(v uint64) uint64 { return v & 0xffffffff }
func upper32(v uint64) uint64 { return v >> 32 }

// mul64Halves is a grade school 2x2 long multiply on 32-bit halves. Each
// partial sum is bounded by (2^32-1)^2 + 2(2^32-1) = 2^64-1, so no 64-bit
// carry ever needs tracking.
func mul64Halves(u, v uint64) (hi, lo uint64) {
	loLo := lower32(u) * lower32(v)
	hiLo := upper32(u) * lower32(v)
	loHi := lower32(u) * upper32(v)
	hiHi := upper32(u) * upper32(v)

	cross := upper32(loLo) + lower32(hiLo) + loHi
	top := upper32(hiLo) + upper32(cross) + hiHi

	return top, (cross << 32) | lower32(loLo)
}

// mul64Warren is adapted from Warren, Hacker's Delight, 2nd ed., 8-2 (mulhu).
func mul64Warren(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

// Mul returns u*n modulo 2^128.
//
// The low limbs are widened to an exact 128-bit product, then both cross
// terms are added to the upper limb with ordinary wrapping 64-bit multiplies.
// The hi*hi term only contributes at bit 128 and above, so it is skipped.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = mul64to128(u.lo, n.lo)
	dest.hi += u.lo * n.hi
	dest.hi += u.hi * n.lo
	return dest
}

// Mul64 returns u*n modulo 2^128.
func (u U128) Mul64(n uint64) (dest U128) {
	dest.hi, dest.lo = mul64to128(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

// MulFull returns the exact 256-bit product of u and n as two U128 halves.
// lo is the same value Mul returns.
func (u U128) MulFull(n U128) (hi, lo U128) {
	hi.hi, hi.lo = mul64to128(u.hi, n.hi)
	lo.hi, lo.lo = mul64to128(u.lo, n.lo)

	var t U128

	t.hi, t.lo = mul64to128(u.hi, n.lo)
	lo.hi += t.lo
	if lo.hi < t.lo { // if lo.hi overflowed
		hi = hi.Inc()
	}
	hi.lo += t.hi
	if hi.lo < t.hi { // if hi.lo overflowed
		hi.hi++
	}

	t.hi, t.lo = mul64to128(u.lo, n.hi)
	lo.hi += t.lo
	if lo.hi < t.lo {
		hi = hi.Inc()
	}
	hi.lo += t.hi
	if hi.lo < t.hi {
		hi.hi++
	}

	return hi, lo
}
