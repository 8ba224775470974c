// Package analysis implements the analysis layer of §4.9: reconstructing
// infinite-product representations from power series (prodmake/qfactor and
// their specializations), subseries extraction (sift), degree queries, and
// the multiplicative/product-niceness classifiers.
package analysis

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
)

// ProductForm is the result of prodmake/qfactor: f = q^Valuation * Scalar *
// prod_n (1-q^n)^{Exponents[n]}. Exact is false when any exponent has a
// nonzero fractional part; Qfactor carries that flag into its
// Factorization rather than failing.
type ProductForm struct {
	Valuation int
	Scalar    bignum.Q
	Exponents map[int]bignum.Q
	Exact     bool
}

// mobius returns the Mobius function mu(n) for n >= 1 via trial-division
// factorization (n stays small here: it never exceeds the caller's FPS
// truncation).
func mobius(n int) int {
	if n == 1 {
		return 1
	}
	result := 1
	m := n
	for p := 2; p*p <= m; p++ {
		if m%p == 0 {
			count := 0
			for m%p == 0 {
				m /= p
				count++
			}
			if count > 1 {
				return 0
			}
			result = -result
		}
	}
	if m > 1 {
		result = -result
	}
	return result
}

func divisors(n int) []int {
	var ds []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			ds = append(ds, d)
		}
	}
	return ds
}

// qDerivativeTimesQ returns q*g'(q): the coefficient of q^k is k*g_k.
func qDerivativeTimesQ(g fps.Series) fps.Series {
	coeffs := make(map[int]bignum.Q, len(g.Coeffs))
	for k, c := range g.Coeffs {
		if k == 0 {
			continue
		}
		coeffs[k] = c.Mul(bignum.QFromInt64(int64(k)))
	}
	return fps.FromCoeffs(g.Var, coeffs, g.T)
}

// Prodmake implements Andrews' product-reconstruction algorithm (§4.9):
// normalize the leading term, take the logarithmic derivative q*g'/g of
// the normalized series g = f / (c*q^a), then Mobius-invert the resulting
// Lambert-series coefficients to read off each factor's exponent.
func Prodmake(f fps.Series) (ProductForm, bool) {
	a, aOk := LQDegree(f)
	if !aOk {
		return ProductForm{}, false
	}
	c, err := f.Coeff(a)
	if err != nil || c.IsZero() {
		return ProductForm{}, false
	}

	g := f.Shift(-a).ScalarMul(mustInv(c))

	gInv, ok := g.Invert()
	if !ok {
		return ProductForm{}, false
	}
	qgPrime := qDerivativeTimesQ(g)
	logDeriv, err := qgPrime.Mul(gInv)
	if err != nil {
		return ProductForm{}, false
	}

	exponents := map[int]bignum.Q{}
	exact := true
	for m := 1; m < f.T-a; m++ {
		if _, err := logDeriv.Coeff(m); err != nil {
			break
		}
		ds := divisors(m)
		acc := bignum.QZero()
		for _, e := range ds {
			mu := mobius(m / e)
			if mu == 0 {
				continue
			}
			se, err := logDeriv.Coeff(e)
			if err != nil {
				continue
			}
			se = se.Neg()
			term := se.Mul(bignum.QFromInt64(int64(mu)))
			acc = acc.Add(term)
		}
		alphaM := acc.Mul(mustInv(bignum.QFromInt64(int64(m))))
		if !alphaM.IsZero() {
			exponents[m] = alphaM
			if !alphaM.IsInteger() {
				exact = false
			}
		}
	}

	return ProductForm{Valuation: a, Scalar: c, Exponents: exponents, Exact: exact}, true
}

func mustInv(q bignum.Q) bignum.Q {
	inv, ok := q.Inv()
	if !ok {
		return bignum.QZero()
	}
	return inv
}

// Factorization is qfactor's result: f = Scalar * prod_n (1-q^n)^{Mult[n]}
// with strictly integer multiplicities when Exact is true.
type Factorization struct {
	Mult   map[int]int
	Scalar bignum.Q
	Exact  bool
}

// Qfactor runs Prodmake and keeps its integer exponents as
// multiplicities, dropping any exponent with a fractional part and
// reporting Exact=false (rather than failing) when one is dropped.
// Negative multiplicities are allowed, so 1+q comes back exact as
// (1-q^2)/(1-q), i.e. Mult {1: -1, 2: 1}.
func Qfactor(f fps.Series) (Factorization, bool) {
	pf, ok := Prodmake(f)
	if !ok {
		return Factorization{}, false
	}
	mult := map[int]int{}
	exact := pf.Exact
	for n, e := range pf.Exponents {
		z, integral := e.ToZ()
		if !integral {
			exact = false
			continue
		}
		v, fits := z.Int64()
		if !fits {
			exact = false
			continue
		}
		mult[n] = int(v)
	}
	return Factorization{Mult: mult, Scalar: pf.Scalar, Exact: exact}, true
}

// EtaMake expresses f as an eta-quotient: since the Dedekind eta function
// is q^{1/24}(q;q)_infty, an eta-quotient representation is exactly a
// cyclotomic factorization (Qfactor) read off with eta-quotient notation
// rather than raw (1-q^n) factors. Both specializations share the same
// underlying factoring core per Andrews' algorithm; this wrapper exists
// so callers can ask for the eta-specific framing directly.
func EtaMake(f fps.Series) (Factorization, bool) { return Qfactor(f) }

// JacprodMake expresses f as a Jacobi-product form. In the absence of a
// general Jacobi-product recognizer, this specialization is scoped to
// reporting the same cyclotomic factorization Qfactor finds; callers
// needing genuine (a,b,t)-style Jacobi triple product grouping must
// currently post-process Factorization.Mult themselves (an Open
// Question — see DESIGN.md).
func JacprodMake(f fps.Series) (Factorization, bool) { return Qfactor(f) }

// MprodMake is the mixed-product specialization named in §4.9; scoped
// identically to JacprodMake for the same reason.
func MprodMake(f fps.Series) (Factorization, bool) { return Qfactor(f) }

// QetaMake is the q-eta-quotient specialization named in §4.9; scoped
// identically to EtaMake.
func QetaMake(f fps.Series) (Factorization, bool) { return EtaMake(f) }
