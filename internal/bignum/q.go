package bignum

import (
	"hash/fnv"
	"math/big"
)

// Q is an exact rational number, always kept in lowest terms with a
// strictly positive denominator by math/big.Rat's own invariant — we only
// add the structural-hash and domain-error-bearing operations §4.1 asks
// for on top of it.
type Q struct {
	v *big.Rat
}

func (a Q) ensure() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}
	return a.v
}

var qZero = Q{new(big.Rat)}
var qOne = Q{new(big.Rat).SetInt64(1)}

func QZero() Q { return qZero }
func QOne() Q  { return qOne }

func QFromInt64(n int64) Q { return Q{new(big.Rat).SetInt64(n)} }

func QFromZ(z Z) Q { return Q{new(big.Rat).SetInt(z.ensure())} }

// QFromFrac builds num/den, failing (ok=false) when den is zero — the
// div_by_zero DomainError case named in §4.1.
func QFromFrac(num, den Z) (q Q, ok bool) {
	if den.IsZero() {
		return Q{}, false
	}
	r := new(big.Rat).SetFrac(num.ensure(), den.ensure())
	return Q{r}, true
}

func (a Q) Add(b Q) Q { return Q{new(big.Rat).Add(a.ensure(), b.ensure())} }
func (a Q) Sub(b Q) Q { return Q{new(big.Rat).Sub(a.ensure(), b.ensure())} }
func (a Q) Mul(b Q) Q { return Q{new(big.Rat).Mul(a.ensure(), b.ensure())} }
func (a Q) Neg() Q    { return Q{new(big.Rat).Neg(a.ensure())} }
func (a Q) Abs() Q    { return Q{new(big.Rat).Abs(a.ensure())} }

// Div divides a by b, failing on division by zero.
func (a Q) Div(b Q) (Q, bool) {
	if b.IsZero() {
		return Q{}, false
	}
	return Q{new(big.Rat).Quo(a.ensure(), b.ensure())}, true
}

// Inv returns 1/a, failing when a is zero.
func (a Q) Inv() (Q, bool) {
	if a.IsZero() {
		return Q{}, false
	}
	return Q{new(big.Rat).Inv(a.ensure())}, true
}

// Pow raises a to an integer power (possibly negative, failing on 0^negative).
func (a Q) Pow(exp int64) (Q, bool) {
	if exp == 0 {
		return qOne, true
	}
	if exp < 0 {
		if a.IsZero() {
			return Q{}, false
		}
		inv, _ := a.Inv()
		return inv.Pow(-exp)
	}
	result := qOne
	base := a
	n := exp
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result, true
}

func (a Q) Sign() int   { return a.ensure().Sign() }
func (a Q) IsZero() bool { return a.Sign() == 0 }
func (a Q) IsOne() bool  { return a.ensure().Cmp(qOne.ensure()) == 0 }
func (a Q) Cmp(b Q) int  { return a.ensure().Cmp(b.ensure()) }

// IsInteger reports whether the denominator is 1.
func (a Q) IsInteger() bool { return a.ensure().IsInt() }

// Num and Denom return the (already-reduced) numerator and denominator.
func (a Q) Num() Z   { return Z{new(big.Int).Set(a.ensure().Num())} }
func (a Q) Denom() Z { return Z{new(big.Int).Set(a.ensure().Denom())} }

// ToZ converts an integer-valued Q to Z, failing if it has a fractional part.
func (a Q) ToZ() (Z, bool) {
	if !a.IsInteger() {
		return Z{}, false
	}
	return a.Num(), true
}

func (a Q) String() string {
	if a.IsInteger() {
		return a.Num().String()
	}
	return a.ensure().RatString()
}

// Hash combines the structural hashes of the (already-reduced) numerator
// and denominator, so equal rationals always hash identically regardless
// of the arithmetic path that produced them (§4.1).
func (a Q) Hash() uint64 {
	h := fnv.New64a()
	nb := a.Num().Hash()
	db := a.Denom().Hash()
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(nb >> (8 * i))
		buf[8+i] = byte(db >> (8 * i))
	}
	h.Write(buf[:])
	return h.Sum64()
}
