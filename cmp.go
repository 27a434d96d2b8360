package num

// Cmp compares u and n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	if u.hi == n.hi {
		return u.lo > n.lo
	}
	return u.hi > n.hi
}

func (u U128) LessThan(n U128) bool {
	if u.hi == n.hi {
		return u.lo < n.lo
	}
	return u.hi < n.hi
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.GreaterThan(n) || u.Equal(n)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.LessThan(n) || u.Equal(n)
}

// Min returns the smaller of u and n.
func (u U128) Min(n U128) U128 {
	if n.LessThan(u) {
		return n
	}
	return u
}

// Max returns the larger of u and n.
func (u U128) Max(n U128) U128 {
	if u.LessThan(n) {
		return n
	}
	return u
}

// AbsDiff returns |u - n|. Unlike Sub it never wraps.
func (u U128) AbsDiff(n U128) U128 {
	if u.LessThan(n) {
		return n.Sub(u)
	}
	return u.Sub(n)
}
