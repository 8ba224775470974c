package relations

import (
	"fmt"

	"qseries/internal/bignum"
	"qseries/internal/fps"
)

// monomial pairs a generated basis element with an auto-label and the
// multi-index (exponents over the generator list) that produced it.
type monomial struct {
	series fps.Series
	label  string
	degree []int
}

// compositions yields every way to write n as an ordered sum of k
// nonnegative integers (multi-indices of total degree exactly n).
func compositions(n, k int) [][]int {
	if k == 1 {
		return [][]int{{n}}
	}
	var out [][]int
	for first := 0; first <= n; first++ {
		for _, rest := range compositions(n-first, k-1) {
			out = append(out, append([]int{first}, rest...))
		}
	}
	return out
}

// homogeneousMonomials builds every degree-n monomial in the generator
// list gens, labeling each auto-generated element X[e1 e2 ...] per
// §4.11's "auto-labels X[i]" convention.
func homogeneousMonomials(gens []fps.Series, n int) []monomial {
	if len(gens) == 0 {
		return nil
	}
	var out []monomial
	for _, exps := range compositions(n, len(gens)) {
		s := monomialSeries(gens, exps)
		out = append(out, monomial{series: s, label: labelFor(exps), degree: exps})
	}
	return out
}

// boundedMonomials builds every monomial of total degree 0..n inclusive
// (findnonhomcombo/findnonhom's bounded-degree basis).
func boundedMonomials(gens []fps.Series, n int) []monomial {
	var out []monomial
	for d := 0; d <= n; d++ {
		out = append(out, homogeneousMonomials(gens, d)...)
	}
	return out
}

func monomialSeries(gens []fps.Series, exps []int) fps.Series {
	if len(gens) == 0 {
		return fps.Series{}
	}
	out := fps.Monomial(gens[0].Var, bignum.QOne(), 0, gens[0].T)
	for i, e := range exps {
		for k := 0; k < e; k++ {
			out, _ = out.Mul(gens[i])
		}
	}
	return out
}

func labelFor(exps []int) string {
	return fmt.Sprintf("X%v", exps)
}
