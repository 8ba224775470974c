package generators

import (
	"qseries/internal/bignum"
	"qseries/internal/fps"
	"qseries/internal/symbol"
)

// Theta3 is the classical theta function theta_3(q) = sum_{n=-inf}^{inf}
// q^{n^2} = 1 + 2*sum_{n>=1} q^{n^2}, an integer-exponent series (no
// prefactor needed, unlike theta2).
func Theta3(v symbol.Id, T int) fps.Series {
	coeffs := map[int]bignum.Q{0: bignum.QOne()}
	two := bignum.QFromInt64(2)
	for n := 1; n*n < T; n++ {
		coeffs[n*n] = two
	}
	return fps.FromCoeffs(v, coeffs, T)
}

// Theta4 is theta_4(q) = sum_n (-1)^n q^{n^2} = 1 + 2*sum_{n>=1} (-1)^n q^{n^2}.
func Theta4(v symbol.Id, T int) fps.Series {
	coeffs := map[int]bignum.Q{0: bignum.QOne()}
	two := bignum.QFromInt64(2)
	for n := 1; n*n < T; n++ {
		c := two
		if n%2 != 0 {
			c = c.Neg()
		}
		coeffs[n*n] = c
	}
	return fps.FromCoeffs(v, coeffs, T)
}

// Theta2Core is the integer-exponent core of theta_2(q) = 2*q^{1/4} *
// sum_{n>=0} q^{n(n+1)}; the q^{1/4} prefactor is tracked symbolically by
// the caller (internal/arena's JacobiTheta node), following the same
// convention used for DedekindEta (DESIGN.md).
func Theta2Core(v symbol.Id, T int) fps.Series {
	coeffs := map[int]bignum.Q{}
	two := bignum.QFromInt64(2)
	for n := 0; n*(n+1) < T; n++ {
		coeffs[n*(n+1)] = two
	}
	return fps.FromCoeffs(v, coeffs, T)
}

// JacobiTripleProductTheta3 computes prod_{n>=1} (1-q^{2n})(1+q^{2n-1})^2
// directly from its product factors — used to cross-check the classical
// identity against Theta3 (spec.md scenario S3) rather than assuming it.
func JacobiTripleProductTheta3(v symbol.Id, T int) fps.Series {
	out := fps.Monomial(v, bignum.QOne(), 0, T)
	for n := 1; 2*n < T; n++ {
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), 2 * n: bignum.QOne().Neg()}, T)
		out, _ = out.Mul(factor)
	}
	for n := 1; 2*n-1 < T; n++ {
		exp := 2*n - 1
		factor := fps.FromCoeffs(v, map[int]bignum.Q{0: bignum.QOne(), exp: bignum.QOne()}, T)
		out, _ = out.Mul(factor)
		out, _ = out.Mul(factor)
	}
	return out
}
