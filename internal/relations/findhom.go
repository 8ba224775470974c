package relations

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/linalg"
)

// FindHomCombo is findlincombo specialized to an auto-generated
// degree-n homogeneous monomial basis built from gens (§4.11): same
// search, but the caller supplies building blocks instead of an
// explicit, pre-labeled list.
func FindHomCombo(f fps.Series, gens []fps.Series, n, topshift int) (LinComboResult, error) {
	basis := homogeneousMonomials(gens, n)
	return findComboOverBasis(f, basis, topshift)
}

// FindNonHomCombo is the bounded-degree (0..n) variant of FindHomCombo.
func FindNonHomCombo(f fps.Series, gens []fps.Series, n, topshift int) (LinComboResult, error) {
	basis := boundedMonomials(gens, n)
	return findComboOverBasis(f, basis, topshift)
}

func findComboOverBasis(f fps.Series, basis []monomial, topshift int) (LinComboResult, error) {
	series := make([]fps.Series, len(basis))
	labels := make([]string, len(basis))
	for i, m := range basis {
		series[i] = m.series
		labels[i] = m.label
	}
	return FindLinCombo(f, series, labels, topshift)
}

// HomRelationResult is findhom/findnonhom's structured outcome: a
// polynomial relation among the elements of L, expressed as coefficients
// over the monomial basis actually used.
type HomRelationResult struct {
	Found  bool
	Labels []string
	Coeffs []bignum.Q
}

// FindHom searches for a nontrivial homogeneous-degree-n polynomial
// relation among the series in l (§4.11): builds the degree-n monomial
// basis and looks for a nonzero vector in the null space of the
// resulting coefficient matrix (a true relation, not a match against a
// separate target).
func FindHom(l []fps.Series, n, topshift int) HomRelationResult {
	basis := homogeneousMonomials(l, n)
	return nullSpaceRelation(basis, topshift)
}

// FindNonHom is FindHom's bounded-degree (0..n) counterpart.
func FindNonHom(l []fps.Series, n, topshift int) HomRelationResult {
	basis := boundedMonomials(l, n)
	return nullSpaceRelation(basis, topshift)
}

func nullSpaceRelation(basis []monomial, topshift int) HomRelationResult {
	if len(basis) == 0 {
		return HomRelationResult{Found: false}
	}
	a := linalg.NewMatrix(topshift, len(basis))
	for j, m := range basis {
		for i := 0; i < topshift; i++ {
			c, err := m.series.Coeff(i)
			if err != nil {
				return HomRelationResult{Found: false}
			}
			a.Data[i][j] = c
		}
	}
	b := make([]bignum.Q, topshift)
	for i := range b {
		b[i] = bignum.QZero()
	}
	sol := linalg.Solve(a, b)
	if !sol.Found || len(sol.NullSpace) == 0 {
		return HomRelationResult{Found: false}
	}
	labels := make([]string, len(basis))
	for i, m := range basis {
		labels[i] = m.label
	}
	return HomRelationResult{Found: true, Labels: labels, Coeffs: sol.NullSpace[0]}
}
