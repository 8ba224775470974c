// Package summation implements the creative-telescoping and
// transformation-search engine of §4.12: q-Gosper indefinite summation,
// q-Zeilberger definite summation with WZ verification, q-Petkovsek
// recurrence solving, nonterminating-identity proof by specialization,
// and BFS transformation-chain search.
package summation

import (
	"qseries/internal/bignum"
	"qseries/internal/linalg"
	"qseries/internal/poly"
	"qseries/internal/qerr"
)

// GosperResult is q_gosper's outcome: either a polynomial certificate f
// with S(n) = f(q^n)*a(n) satisfying a(n) = S(n+1)-S(n), or
// found=false with a NotGosperSummable reason (§7: a search-level
// negative outcome, never an error).
type GosperResult struct {
	Found  bool
	Reason string
	F      poly.Poly
}

// QGosper solves the reduced q-Gosper key equation
//
//	f(q*x) * A(x) - f(x) * B(x) = B(x)
//
// for a polynomial f of degree 0..maxDegree, where x stands for q^n and
// A/B is the (already qGFF-normalized) term ratio a(n+1)/a(n) = A(x)/B(x).
// This is the dispersion-zero case of Gosper's algorithm: the full
// algorithm first splits the ratio via qGFF into A/B times C(qx)/C(x) so
// that A and B share no q-shifted common factor; that splitting step is
// not implemented here (an Open Question — see DESIGN.md), so QGosper
// only succeeds directly on ratios already in that normalized form. The
// key-equation degree bound and coefficient-matching step — the actual
// summation decision — are fully implemented.
func QGosper(a, b poly.Poly, q bignum.Q, maxDegree int) (GosperResult, error) {
	if maxDegree < 0 {
		return GosperResult{}, qerr.Domain("q_gosper", "maxDegree", "degree bound must be non-negative")
	}
	for d := 0; d <= maxDegree; d++ {
		f, ok := tryDegree(a, b, q, d)
		if ok {
			return GosperResult{Found: true, F: f}, nil
		}
	}
	return GosperResult{Found: false, Reason: qerr.ReasonNotGosperSummable}, nil
}

// tryDegree attempts to solve the key equation with f restricted to
// degree at most d, via undetermined coefficients and exact linear
// solve.
func tryDegree(a, b poly.Poly, q bignum.Q, d int) (poly.Poly, bool) {
	// f(x) = sum_{i=0}^{d} u_i x^i (unknowns u_i).
	// f(qx) = sum_i u_i q^i x^i.
	// LHS - RHS, as a polynomial in x, must vanish identically.
	// Coefficient of x^m in f(qx)*A(x): sum_i u_i q^i A.Coeff(m-i).
	// Coefficient of x^m in f(x)*B(x):  sum_i u_i B.Coeff(m-i).
	// Target: B.Coeff(m) (moved to the LHS as -B.Coeff(m) = 0 contribution).
	maxDeg := d + maxInt(a.Degree(), b.Degree())
	rows := maxDeg + 1
	m := linalg.NewMatrix(rows, d+1)
	rhs := make([]bignum.Q, rows)
	qi := bignum.QOne()
	qPowers := make([]bignum.Q, d+1)
	for i := 0; i <= d; i++ {
		qPowers[i] = qi
		qi = qi.Mul(q)
	}
	for row := 0; row < rows; row++ {
		for i := 0; i <= d; i++ {
			coeff := a.Coeff(row - i).Mul(qPowers[i]).Sub(b.Coeff(row - i))
			m.Data[row][i] = coeff
		}
		rhs[row] = b.Coeff(row)
	}
	sol := linalg.Solve(m, rhs)
	if !sol.Found {
		return poly.Poly{}, false
	}
	return poly.FromCoeffs(sol.X), true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
