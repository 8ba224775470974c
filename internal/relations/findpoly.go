package relations

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/linalg"
)

// findPolyTopshift is §4.11's fixed topshift for findpoly.
const findPolyTopshift = 10

// BivariateRelation is findpoly's result: a nontrivial
// sum_{i<=dx,j<=dy} Coeffs[i][j] * x^i * y^j = 0 relation, when found.
type BivariateRelation struct {
	Found  bool
	Coeffs map[[2]int]bignum.Q
}

// FindPoly searches for a bivariate polynomial relation between the
// series x and y with degree bounds dx, dy (§4.11), using the fixed
// topshift=10 truncation the spec names explicitly. check, when
// non-nil, is called with a found relation and may reject a spurious
// coincidental match (e.g. by re-testing at a higher truncation
// supplied by the caller) — findpoly itself only ever reasons about the
// fixed topshift.
func FindPoly(x, y fps.Series, dx, dy int, check func(BivariateRelation) bool) BivariateRelation {
	type term struct {
		i, j   int
		series fps.Series
	}
	var terms []term
	for i := 0; i <= dx; i++ {
		for j := 0; j <= dy; j++ {
			s := fps.Monomial(x.Var, bignum.QOne(), 0, findPolyTopshift)
			for k := 0; k < i; k++ {
				s, _ = s.Mul(x)
			}
			for k := 0; k < j; k++ {
				s, _ = s.Mul(y)
			}
			terms = append(terms, term{i: i, j: j, series: s})
		}
	}
	if len(terms) == 0 {
		return BivariateRelation{Found: false}
	}
	a := linalg.NewMatrix(findPolyTopshift, len(terms))
	for col, t := range terms {
		for row := 0; row < findPolyTopshift; row++ {
			c, err := t.series.Coeff(row)
			if err != nil {
				c = bignum.QZero()
			}
			a.Data[row][col] = c
		}
	}
	b := make([]bignum.Q, findPolyTopshift)
	for i := range b {
		b[i] = bignum.QZero()
	}
	sol := linalg.Solve(a, b)
	if !sol.Found || len(sol.NullSpace) == 0 {
		return BivariateRelation{Found: false}
	}
	coeffs := map[[2]int]bignum.Q{}
	for idx, t := range terms {
		c := sol.NullSpace[0][idx]
		if !c.IsZero() {
			coeffs[[2]int{t.i, t.j}] = c
		}
	}
	result := BivariateRelation{Found: true, Coeffs: coeffs}
	if check != nil && !check(result) {
		return BivariateRelation{Found: false}
	}
	return result
}
