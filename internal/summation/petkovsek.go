package summation

import (
	"qseries/internal/bignum"
	"qseries/internal/poly"
)

// PetkovsekResult is q_petkovsek's outcome: a geometric hypergeometric
// closed-form solution T(n) = Ratio^n to a linear q-recurrence with
// polynomial coefficients, when one exists.
//
// Full q-Petkovsek also finds solutions built from q-Pochhammer factors
// with polynomial multipliers (the general Pochhammer-closed-form
// search named in §4.12); this implementation is scoped to the pure
// geometric case (an Open Question resolution — see DESIGN.md), which
// already covers the common case of a recurrence whose solution space
// is one-dimensional and exponential in q^n.
type PetkovsekResult struct {
	Found bool
	Ratio bignum.Q
}

// QPetkovsek searches for T(n) = r^n solving sum_j coeffs[j](q^n) *
// T(n+j) = 0, where coeffs[j] is the polynomial coefficient of T(n+j) as
// a polynomial in x = q^n. Substituting T(n+j) = r^{n+j} = r^n r^j turns
// the recurrence into sum_j coeffs[j](x) r^j = 0 identically in x: for
// every x-degree d, the coefficient of x^d (itself a polynomial in r of
// degree <= len(coeffs)-1) must vanish. QPetkovsek collects one such
// r-polynomial per x-degree and takes their GCD; a rational root of the
// resulting (ideally linear) GCD polynomial is the geometric ratio.
func QPetkovsek(coeffs []poly.Poly) PetkovsekResult {
	if len(coeffs) == 0 {
		return PetkovsekResult{Found: false}
	}
	maxXDeg := 0
	for _, c := range coeffs {
		if c.Degree() > maxXDeg {
			maxXDeg = c.Degree()
		}
	}
	var rPolys []poly.Poly
	for d := 0; d <= maxXDeg; d++ {
		rCoeffs := make([]bignum.Q, len(coeffs))
		for j, c := range coeffs {
			rCoeffs[j] = c.Coeff(d)
		}
		rp := poly.FromCoeffs(rCoeffs)
		if !rp.IsZero() {
			rPolys = append(rPolys, rp)
		}
	}
	if len(rPolys) == 0 {
		return PetkovsekResult{Found: false}
	}
	g := rPolys[0]
	for _, rp := range rPolys[1:] {
		g = poly.Gcd(g, rp)
		if g.IsZero() || g.Degree() == 0 {
			return PetkovsekResult{Found: false}
		}
	}
	if g.Degree() != 1 {
		return PetkovsekResult{Found: false}
	}
	// g = c1*r + c0 -> r = -c0/c1
	c0, c1 := g.Coeff(0), g.Coeff(1)
	ratio, ok := c0.Neg().Div(c1)
	if !ok {
		return PetkovsekResult{Found: false}
	}
	return PetkovsekResult{Found: true, Ratio: ratio}
}
