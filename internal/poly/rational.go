package poly

import "qseries/internal/bignum"

// RationalFunction is a reduced num/den pair over Q[x]; every field
// operation re-reduces by the GCD afterward so num and den never drift
// out of lowest terms, per §4.10.
type RationalFunction struct {
	Num Poly
	Den Poly
}

// NewRationalFunction builds num/den in lowest terms, failing when den is
// the zero polynomial.
func NewRationalFunction(num, den Poly) (RationalFunction, bool) {
	if den.IsZero() {
		return RationalFunction{}, false
	}
	return RationalFunction{Num: num, Den: den}.reduce(), true
}

func (r RationalFunction) reduce() RationalFunction {
	if r.Num.IsZero() {
		return RationalFunction{Num: Zero(), Den: Constant(bignum.QOne())}
	}
	g := Gcd(r.Num, r.Den)
	if g.IsZero() || g.Degree() == 0 {
		return r.normalizeSign()
	}
	num, _, ok1 := r.Num.DivMod(g)
	den, _, ok2 := r.Den.DivMod(g)
	if !ok1 || !ok2 {
		return r.normalizeSign()
	}
	return RationalFunction{Num: num, Den: den}.normalizeSign()
}

// normalizeSign scales num and den so the denominator's leading
// coefficient is 1, keeping the reduced form canonical.
func (r RationalFunction) normalizeSign() RationalFunction {
	lead := r.Den.Lead()
	if lead.IsZero() || lead.IsOne() {
		return r
	}
	inv, ok := lead.Inv()
	if !ok {
		return r
	}
	return RationalFunction{Num: r.Num.ScalarMul(inv), Den: r.Den.ScalarMul(inv)}
}

// Add returns r+s.
func (r RationalFunction) Add(s RationalFunction) RationalFunction {
	num := r.Num.Mul(s.Den).Add(s.Num.Mul(r.Den))
	den := r.Den.Mul(s.Den)
	out, _ := NewRationalFunction(num, den)
	return out
}

// Sub returns r-s.
func (r RationalFunction) Sub(s RationalFunction) RationalFunction {
	return r.Add(RationalFunction{Num: s.Num.Neg(), Den: s.Den})
}

// Mul returns r*s.
func (r RationalFunction) Mul(s RationalFunction) RationalFunction {
	out, _ := NewRationalFunction(r.Num.Mul(s.Num), r.Den.Mul(s.Den))
	return out
}

// Div returns r/s, failing if s's numerator is zero.
func (r RationalFunction) Div(s RationalFunction) (RationalFunction, bool) {
	if s.Num.IsZero() {
		return RationalFunction{}, false
	}
	return NewRationalFunction(r.Num.Mul(s.Den), r.Den.Mul(s.Num))
}

// QShift returns r(q*x), the rational-function extension of Poly.QShift.
func (r RationalFunction) QShift(q bignum.Q) RationalFunction {
	out, _ := NewRationalFunction(r.Num.QShift(q), r.Den.QShift(q))
	return out
}

// Eval evaluates r at x, failing if the denominator vanishes there.
func (r RationalFunction) Eval(x bignum.Q) (bignum.Q, bool) {
	d := r.Den.Eval(x)
	if d.IsZero() {
		return bignum.Q{}, false
	}
	n := r.Num.Eval(x)
	return n.Div(d)
}

func (r RationalFunction) String() string {
	if r.Den.Degree() == 0 && r.Den.Lead().IsOne() {
		return r.Num.String()
	}
	return "(" + r.Num.String() + ")/(" + r.Den.String() + ")"
}
