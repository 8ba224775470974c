// Package poly implements the dense Q[x] polynomial kernel of §4.10:
// arithmetic, pseudo-division, subresultant PRS GCD, resultant,
// content/primitive part, q-shift, and a reduced rational-function type.
package poly

import (
	"fmt"
	"strings"

	"qseries/internal/bignum"
)

// Poly is a dense univariate polynomial over Q, coefficients ascending
// by degree (Coeffs[i] is the coefficient of x^i). The zero polynomial is
// represented by an empty (or all-zero) slice; Normalize enforces that no
// nonzero polynomial carries a zero leading coefficient.
type Poly struct {
	Coeffs []bignum.Q
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// FromCoeffs builds a polynomial from ascending coefficients, trimming
// any trailing zero coefficients.
func FromCoeffs(cs []bignum.Q) Poly {
	p := Poly{Coeffs: append([]bignum.Q(nil), cs...)}
	return p.normalize()
}

// Constant returns the degree-0 polynomial c.
func Constant(c bignum.Q) Poly { return FromCoeffs([]bignum.Q{c}) }

// Monomial returns c*x^deg.
func Monomial(c bignum.Q, deg int) Poly {
	if c.IsZero() {
		return Zero()
	}
	cs := make([]bignum.Q, deg+1)
	for i := range cs {
		cs[i] = bignum.QZero()
	}
	cs[deg] = c
	return Poly{Coeffs: cs}
}

func (p Poly) normalize() Poly {
	n := len(p.Coeffs)
	for n > 0 && p.Coeffs[n-1].IsZero() {
		n--
	}
	return Poly{Coeffs: p.Coeffs[:n]}
}

// Degree returns the polynomial degree, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.Coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.Coeffs) == 0 }

// Lead returns the leading coefficient, or zero for the zero polynomial.
func (p Poly) Lead() bignum.Q {
	if p.IsZero() {
		return bignum.QZero()
	}
	return p.Coeffs[p.Degree()]
}

// Coeff returns the coefficient of x^i, zero if i is out of range.
func (p Poly) Coeff(i int) bignum.Q {
	if i < 0 || i >= len(p.Coeffs) {
		return bignum.QZero()
	}
	return p.Coeffs[i]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Add returns p+q.
func (p Poly) Add(q Poly) Poly {
	n := maxInt(len(p.Coeffs), len(q.Coeffs))
	cs := make([]bignum.Q, n)
	for i := 0; i < n; i++ {
		cs[i] = p.Coeff(i).Add(q.Coeff(i))
	}
	return FromCoeffs(cs)
}

// Sub returns p-q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Neg returns -p.
func (p Poly) Neg() Poly {
	cs := make([]bignum.Q, len(p.Coeffs))
	for i, c := range p.Coeffs {
		cs[i] = c.Neg()
	}
	return Poly{Coeffs: cs}
}

// ScalarMul returns c*p.
func (p Poly) ScalarMul(c bignum.Q) Poly {
	if c.IsZero() {
		return Zero()
	}
	cs := make([]bignum.Q, len(p.Coeffs))
	for i, v := range p.Coeffs {
		cs[i] = v.Mul(c)
	}
	return FromCoeffs(cs)
}

// Mul returns p*q via the schoolbook convolution (dense polynomials in
// this kernel are expected to stay small — relation-discovery and
// summation degree bounds are modest per §4.11/§4.12).
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	cs := make([]bignum.Q, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range cs {
		cs[i] = bignum.QZero()
	}
	for i, a := range p.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			cs[i+j] = cs[i+j].Add(a.Mul(b))
		}
	}
	return FromCoeffs(cs)
}

// DivMod performs exact field division: p = quo*divisor + rem with
// deg(rem) < deg(divisor). ok is false when dividing by the zero
// polynomial.
func (p Poly) DivMod(divisor Poly) (quo, rem Poly, ok bool) {
	if divisor.IsZero() {
		return Poly{}, Poly{}, false
	}
	rem = p
	quoCoeffs := make([]bignum.Q, maxInt(0, p.Degree()-divisor.Degree()+1))
	for i := range quoCoeffs {
		quoCoeffs[i] = bignum.QZero()
	}
	dLead := divisor.Lead()
	dLeadInv, _ := dLead.Inv()
	for !rem.IsZero() && rem.Degree() >= divisor.Degree() {
		shift := rem.Degree() - divisor.Degree()
		coeff := rem.Lead().Mul(dLeadInv)
		quoCoeffs[shift] = coeff
		rem = rem.Sub(divisor.Shift(shift).ScalarMul(coeff))
	}
	return FromCoeffs(quoCoeffs), rem, true
}

// Shift returns x^k * p (k >= 0).
func (p Poly) Shift(k int) Poly {
	if p.IsZero() || k == 0 {
		return p
	}
	cs := make([]bignum.Q, len(p.Coeffs)+k)
	for i := range cs {
		cs[i] = bignum.QZero()
	}
	copy(cs[k:], p.Coeffs)
	return Poly{Coeffs: cs}
}

// PseudoDiv computes the pseudo-quotient and pseudo-remainder of a by b
// (deg a >= deg b, b nonzero): lc(b)^(deg(a)-deg(b)+1) * a = q*b + r. Used
// by the subresultant PRS so intermediate coefficients stay integral when
// the inputs do.
func (a Poly) PseudoDiv(b Poly) (quo, rem Poly, ok bool) {
	if b.IsZero() || a.Degree() < b.Degree() {
		return Poly{}, a, b.IsZero()
	}
	delta := a.Degree() - b.Degree() + 1
	lc, _ := b.Lead().Pow(int64(delta))
	scaled := a.ScalarMul(lc)
	quo, rem, ok = scaled.DivMod(b)
	return
}

// Gcd computes the monic GCD of a and b via the subresultant
// pseudo-remainder sequence (chosen over plain Euclidean division, per
// §4.10, to keep intermediate pseudo-remainder coefficients from growing
// uncontrollably — the classical motivation for subresultant PRS over a
// naive Euclidean algorithm in exact rational/integer arithmetic).
func Gcd(a, b Poly) Poly {
	if a.IsZero() {
		return b.monic()
	}
	if b.IsZero() {
		return a.monic()
	}
	r0, r1 := a, b
	if r0.Degree() < r1.Degree() {
		r0, r1 = r1, r0
	}
	g, h := bignum.QOne(), bignum.QOne()
	for !r1.IsZero() {
		delta := r0.Degree() - r1.Degree()
		_, rem, ok := r0.PseudoDiv(r1)
		if !ok {
			break
		}
		r0, r1 = r1, rem
		hd, _ := h.Pow(int64(delta))
		beta, _ := g.Mul(hd).Inv()
		r1 = r1.ScalarMul(beta)
		g = r0.Lead()
		gd, _ := g.Pow(int64(delta))
		h1, _ := h.Pow(int64(1 - delta))
		h = h1.Mul(gd)
	}
	return r0.monic()
}

func (p Poly) monic() Poly {
	if p.IsZero() {
		return p
	}
	lead := p.Lead()
	inv, ok := lead.Inv()
	if !ok {
		return p
	}
	return p.ScalarMul(inv)
}

// Resultant computes Res(a,b) by a Euclidean-style recursion on
// pseudo-remainders (the PseudoDiv step Gcd also uses), accumulating the
// sign and leading-coefficient corrections each step introduces.
func Resultant(a, b Poly) bignum.Q {
	if a.IsZero() || b.IsZero() {
		return bignum.QZero()
	}
	r0, r1 := a, b
	sign := bignum.QOne()
	if r0.Degree() < r1.Degree() {
		r0, r1 = r1, r0
		if r0.Degree()%2 == 1 && r1.Degree()%2 == 1 {
			sign = sign.Neg()
		}
	}
	acc := bignum.QOne()
	for !r1.IsZero() {
		if r1.Degree() == 0 {
			pow, _ := r1.Lead().Pow(int64(r0.Degree()))
			return sign.Mul(acc).Mul(pow)
		}
		m, n := r0.Degree(), r1.Degree()
		_, rem, ok := r0.PseudoDiv(r1)
		if !ok || rem.IsZero() {
			return bignum.QZero()
		}
		if m%2 == 1 && n%2 == 1 {
			sign = sign.Neg()
		}
		// Res(r0,r1) = (-1)^{mn} lc(r1)^{m-deg rem} Res(r1,rem) / lc(r1)^{(m-n+1)n}
		num, _ := r1.Lead().Pow(int64(m - rem.Degree()))
		den, _ := r1.Lead().Pow(int64((m - n + 1) * n))
		acc = div2(acc.Mul(num), den)
		r0, r1 = r1, rem
	}
	return bignum.QZero()
}

// Div2 divides a by b, returning zero on division failure — a small
// unexported convenience used only by Resultant's accumulator, where a
// zero denominator can only arise from a degenerate (already-excluded)
// input.
func div2(a, b bignum.Q) bignum.Q {
	r, ok := a.Div(b)
	if !ok {
		return bignum.QZero()
	}
	return r
}

// Content returns the Z-content (gcd of the numerators' absolute values,
// scaled by the lcm of denominators) and the corresponding primitive
// part, following the standard "clear denominators, then take integer
// content" recipe.
func (p Poly) Content() (bignum.Q, Poly) {
	if p.IsZero() {
		return bignum.QOne(), p
	}
	lcmDen := bignum.ZOne()
	for _, c := range p.Coeffs {
		lcmDen = lcmOfZ(lcmDen, c.Denom())
	}
	scaled := p.ScalarMul(bignum.QFromZ(lcmDen))
	g := bignum.ZZero()
	for _, c := range scaled.Coeffs {
		n := c.Num()
		g = g.Gcd(n)
	}
	if g.IsZero() {
		g = bignum.ZOne()
	}
	contentQ, _ := bignum.QFromZ(lcmDen).Inv()
	contentQ = contentQ.Mul(bignum.QFromZ(g))
	invG, _ := bignum.QFromZ(g).Inv()
	primitive := scaled.ScalarMul(invG)
	return contentQ, primitive
}

func lcmOfZ(a, b bignum.Z) bignum.Z {
	if a.IsZero() || b.IsZero() {
		return bignum.ZOne()
	}
	g := a.Gcd(b)
	prod := a.Mul(b)
	q, _ := prod.DivMod(g)
	return q.Abs()
}

// QShift returns p(q*x): the q-shift operation of §4.10, coefficient i
// scaled by q^i.
func (p Poly) QShift(q bignum.Q) Poly {
	cs := make([]bignum.Q, len(p.Coeffs))
	qi := bignum.QOne()
	for i, c := range p.Coeffs {
		cs[i] = c.Mul(qi)
		qi = qi.Mul(q)
	}
	return FromCoeffs(cs)
}

// Eval evaluates p at x via Horner's method.
func (p Poly) Eval(x bignum.Q) bignum.Q {
	acc := bignum.QZero()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.Coeffs[i])
	}
	return acc
}

// String renders p in descending-degree form for diagnostics.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coeffs[i]
		if c.IsZero() {
			continue
		}
		if !first {
			if c.Sign() < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		} else if c.Sign() < 0 {
			sb.WriteString("-")
		}
		abs := c.Abs()
		switch {
		case i == 0:
			sb.WriteString(abs.String())
		case i == 1:
			if !abs.IsOne() {
				sb.WriteString(abs.String())
			}
			sb.WriteString("x")
		default:
			if !abs.IsOne() {
				sb.WriteString(abs.String())
			}
			fmt.Fprintf(&sb, "x^%d", i)
		}
		first = false
	}
	return sb.String()
}
