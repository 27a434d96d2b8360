package num

// The Set* methods are the compound assignment forms of the value methods:
// each stores its result in the receiver and returns the receiver, so calls
// can be chained:
//
//	var acc num.U128
//	acc.SetAdd(x).SetMul(y).SetRsh(3)

func (u *U128) Set(v U128) *U128 { *u = v; return u }

func (u *U128) SetAdd(n U128) *U128 { *u = u.Add(n); return u }
func (u *U128) SetSub(n U128) *U128 { *u = u.Sub(n); return u }
func (u *U128) SetMul(n U128) *U128 { *u = u.Mul(n); return u }

// SetQuo panics if n == 0; see QuoRem.
func (u *U128) SetQuo(n U128) *U128 { *u = u.Quo(n); return u }

// SetRem panics if n == 0; see QuoRem.
func (u *U128) SetRem(n U128) *U128 { *u = u.Rem(n); return u }

func (u *U128) SetAnd(n U128) *U128 { *u = u.And(n); return u }
func (u *U128) SetOr(n U128) *U128  { *u = u.Or(n); return u }
func (u *U128) SetXor(n U128) *U128 { *u = u.Xor(n); return u }

func (u *U128) SetLsh(n uint) *U128 { *u = u.Lsh(n); return u }
func (u *U128) SetRsh(n uint) *U128 { *u = u.Rsh(n); return u }

func (u *U128) SetLshU128(by U128) *U128 { *u = u.LshU128(by); return u }
func (u *U128) SetRshU128(by U128) *U128 { *u = u.RshU128(by); return u }

// SetInc is the prefix ++: it increments u and returns it. For postfix
// behaviour, copy the value first.
func (u *U128) SetInc() *U128 { *u = u.Inc(); return u }

// SetDec is the prefix --.
func (u *U128) SetDec() *U128 { *u = u.Dec(); return u }
