package num

// QuoRem returns the quotient q and remainder r of u/by, such that
// u == q*by + r and r < by.
//
// If by == 0, QuoRem panics with ErrDivisionByZero. Use DivMod to get the
// error as a return value instead.
//
// Quo and Rem are both implemented in terms of QuoRem; if you need both
// halves, call QuoRem once rather than Quo and Rem separately.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by == zeroU128 {
		panic(ErrDivisionByZero)
	} else if by == oneU128 {
		return u, zeroU128
	} else if u == by {
		return oneU128, zeroU128
	} else if u == zeroU128 || u.LessThan(by) {
		return zeroU128, u // it's 100% remainder
	}

	return quorem128bin(u, by)
}

// quorem128bin is restoring binary long division: one bit of the dividend is
// brought down into the remainder per step, from the most significant set
// bit down, and the divisor subtracted whenever it fits.
func quorem128bin(u, by U128) (q, r U128) {
	for bit := u.BitLen() - 1; bit >= 0; bit-- {
		// {{{ q, r = q<<1, r<<1
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		r.hi = (r.hi << 1) | (r.lo >> 63)
		r.lo = r.lo << 1
		// }}}

		r.lo |= uint64(u.Bit(bit))

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(r.hi < by.hi || (r.hi == by.hi && r.lo < by.lo)) {
			r = r.Sub(by)
			q.lo |= 1
		}
	}
	return q, r
}

// Quo returns the quotient u/by. If by == 0, Quo panics; see QuoRem.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder u%by. If by == 0, Rem panics; see QuoRem.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem64 is QuoRem with a native divisor.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	q, rr := u.QuoRem(U128From64(by))
	return q, rr.lo
}

// DivMod is QuoRem, but returns ErrDivisionByZero instead of panicking.
func (u U128) DivMod(by U128) (q, r U128, err error) {
	if by == zeroU128 {
		return q, r, ErrDivisionByZero
	}
	q, r = u.QuoRem(by)
	return q, r, nil
}
